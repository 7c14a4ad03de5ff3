package detect

import (
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// ClusterStrategy partitions posts into topic clusters. Implementations
// keep clusters disjoint and rank them by descending size, ties in
// discovery order.
type ClusterStrategy interface {
	Name() string
	// CanCluster reports whether the strategy can produce meaningful
	// clusters from the given corpus.
	CanCluster(posts []domain.Post) bool
	Cluster(posts []domain.Post) []domain.Cluster
}

// DensityStrategy clusters posts by TF-IDF cosine similarity with DBSCAN.
// No fixed cluster count: topic counts are unknown up front and noise has
// to be discarded.
type DensityStrategy struct {
	minSize   int
	epsilon   float64
	stopwords map[string]struct{}
}

// NewDensityStrategy creates the primary clustering strategy.
func NewDensityStrategy(minSize int, epsilon float64, stopwords []string) *DensityStrategy {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &DensityStrategy{minSize: minSize, epsilon: epsilon, stopwords: stops}
}

// Name implements ClusterStrategy.
func (s *DensityStrategy) Name() string { return "density" }

// CanCluster requires at least minSize posts whose feature text survives
// tokenization, anything less is a degenerate corpus.
func (s *DensityStrategy) CanCluster(posts []domain.Post) bool {
	if len(posts) < s.minSize {
		return false
	}
	usable := 0
	for i := range posts {
		if len(tokenize(featureText(&posts[i]), s.stopwords)) > 0 {
			usable++
			if usable >= s.minSize {
				return true
			}
		}
	}
	return false
}

// Cluster implements ClusterStrategy.
func (s *DensityStrategy) Cluster(posts []domain.Post) []domain.Cluster {
	if len(posts) < s.minSize {
		return nil
	}

	docs := make([][]string, len(posts))
	for i := range posts {
		docs[i] = tokenize(featureText(&posts[i]), s.stopwords)
	}
	vectors := vectorize(docs)

	dist := func(i, j int) float64 {
		if vectors[i] == nil || vectors[j] == nil {
			return 1 // token-less documents are far from everything, themselves included
		}
		return cosineDistance(vectors[i], vectors[j])
	}

	groups := dbscan(len(posts), s.minSize, s.epsilon, dist)

	clusters := make([]domain.Cluster, 0, len(groups))
	for _, members := range groups {
		c := domain.Cluster{Posts: make([]domain.Post, 0, len(members))}
		for _, idx := range members {
			c.Posts = append(c.Posts, posts[idx])
		}
		clusters = append(clusters, c)
	}
	rankBySize(clusters)
	return clusters
}

// KeywordStrategy buckets posts by their first keyword. Less precise than
// density clustering but always available.
type KeywordStrategy struct {
	minSize int
}

// NewKeywordStrategy creates the fallback strategy.
func NewKeywordStrategy(minSize int) *KeywordStrategy {
	return &KeywordStrategy{minSize: minSize}
}

// Name implements ClusterStrategy.
func (s *KeywordStrategy) Name() string { return "keywords" }

// CanCluster requires at least minSize posts carrying keywords.
func (s *KeywordStrategy) CanCluster(posts []domain.Post) bool {
	tagged := 0
	for i := range posts {
		if len(posts[i].EffectiveKeywords()) > 0 {
			tagged++
			if tagged >= s.minSize {
				return true
			}
		}
	}
	return false
}

// Cluster implements ClusterStrategy.
func (s *KeywordStrategy) Cluster(posts []domain.Post) []domain.Cluster {
	buckets := make(map[string][]domain.Post)
	var order []string
	for i := range posts {
		keywords := posts[i].EffectiveKeywords()
		if len(keywords) == 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(keywords[0]))
		if key == "" {
			continue
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], posts[i])
	}

	clusters := make([]domain.Cluster, 0, len(order))
	for _, key := range order {
		if len(buckets[key]) < s.minSize {
			continue
		}
		clusters = append(clusters, domain.Cluster{Posts: buckets[key]})
	}
	rankBySize(clusters)
	return clusters
}

// rankBySize orders clusters by descending size, stable so ties keep
// discovery order.
func rankBySize(clusters []domain.Cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Size() > clusters[j].Size()
	})
}

// Clusterer picks a strategy per corpus: the configured one, or density
// with a keyword-bucket fallback in auto mode.
type Clusterer struct {
	strategy string
	density  *DensityStrategy
	keywords *KeywordStrategy
}

// NewClusterer builds a clusterer from cluster settings and a stopword list.
func NewClusterer(cfg config.ClusterConfig, stopwords []string) *Clusterer {
	return &Clusterer{
		strategy: cfg.Strategy,
		density:  NewDensityStrategy(cfg.MinClusterSize, cfg.Epsilon, stopwords),
		keywords: NewKeywordStrategy(cfg.MinClusterSize),
	}
}

// Cluster partitions posts with the selected strategy. A corpus the density
// strategy cannot handle degrades to keyword buckets in auto mode, with a
// logged warning.
func (c *Clusterer) Cluster(posts []domain.Post) []domain.Cluster {
	strategy := c.pick(posts)
	if strategy == nil {
		return nil
	}
	return strategy.Cluster(posts)
}

func (c *Clusterer) pick(posts []domain.Post) ClusterStrategy {
	switch c.strategy {
	case "density":
		return c.density
	case "keywords":
		return c.keywords
	default: // auto
		if c.density.CanCluster(posts) {
			return c.density
		}
		if c.keywords.CanCluster(posts) {
			lgr.Printf("[WARN] density clustering infeasible for %d posts, falling back to keyword buckets", len(posts))
			return c.keywords
		}
		lgr.Printf("[DEBUG] no clustering strategy can handle %d posts", len(posts))
		return nil
	}
}
