// Package detect implements the opportunity detection engine: recency
// filtering, similarity clustering, pain / growth / confidence scoring and
// opportunity synthesis over batches of scraped posts.
package detect

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

//go:generate moq -out mocks/post_store.go -pkg mocks -skip-ensure -fmt goimports . PostStore
//go:generate moq -out mocks/opportunity_store.go -pkg mocks -skip-ensure -fmt goimports . OpportunityStore
//go:generate moq -out mocks/run_store.go -pkg mocks -skip-ensure -fmt goimports . RunStore
//go:generate moq -out mocks/volume_provider.go -pkg mocks -skip-ensure -fmt goimports . VolumeProvider

// PostStore provides the unprocessed post queue.
type PostStore interface {
	GetUnprocessed(ctx context.Context, limit, offset int) ([]domain.Post, error)
	MarkProcessed(ctx context.Context, ids []int64) error
	CountUnprocessed(ctx context.Context) (int, error)
}

// OpportunityStore persists synthesized opportunities.
type OpportunityStore interface {
	CreateOpportunity(ctx context.Context, opp *domain.Opportunity) error
}

// RunStore records detection run audit entries.
type RunStore interface {
	StartRun(ctx context.Context, run *domain.DetectionRun) error
	FinishRun(ctx context.Context, run *domain.DetectionRun) error
}

// VolumeProvider supplies external search volume for a keyword.
type VolumeProvider interface {
	SearchVolume(ctx context.Context, keyword string) (int, error)
}

// Detector runs the scoring pipeline over one batch of unprocessed posts:
// recency filter, clustering, pain, growth, confidence, synthesis. Each
// stage only attaches data to the clusters, the pipeline itself is
// single-threaded and deterministic for a given input.
type Detector struct {
	posts      PostStore
	opps       OpportunityStore
	runs       RunStore
	volume     VolumeProvider
	clusterer  *Clusterer
	pain       *PainScorer
	growth     *GrowthClassifier
	confidence *ConfidenceScorer
	synth      *Synthesizer

	batchSize  int
	windowDays int
	now        func() time.Time // injectable for tests
}

// NewDetector wires the pipeline from configuration. volume may be nil,
// the search-volume signal then never fires.
func NewDetector(cfg config.DetectConfig, posts PostStore, opps OpportunityStore, runs RunStore, volume VolumeProvider) *Detector {
	return &Detector{
		posts:      posts,
		opps:       opps,
		runs:       runs,
		volume:     volume,
		clusterer:  NewClusterer(cfg.Cluster, cfg.Lexicon.Stopwords),
		pain:       NewPainScorer(cfg.Lexicon),
		growth:     NewGrowthClassifier(cfg.LookbackDays),
		confidence: NewConfidenceScorer(cfg.ConfidenceThreshold, cfg.Lexicon),
		synth:      NewSynthesizer(cfg.Lexicon),
		batchSize:  cfg.BatchSize,
		windowDays: cfg.WindowDays,
		now:        time.Now,
	}
}

// Run executes one detection pass and returns its audit record.
func (d *Detector) Run(ctx context.Context) (*domain.DetectionRun, error) {
	now := d.now()
	run := &domain.DetectionRun{
		ID:        uuid.New().String(),
		StartedAt: now,
		Status:    "running",
	}
	if err := d.runs.StartRun(ctx, run); err != nil {
		return nil, fmt.Errorf("start detection run: %w", err)
	}

	if err := d.detect(ctx, run, now); err != nil {
		run.Status = "failed"
		run.Error = err.Error()
		finished := d.now()
		run.FinishedAt = &finished
		if ferr := d.runs.FinishRun(ctx, run); ferr != nil {
			lgr.Printf("[WARN] failed to record failed run %s: %v", run.ID, ferr)
		}
		return run, err
	}

	run.Status = "completed"
	finished := d.now()
	run.FinishedAt = &finished
	if err := d.runs.FinishRun(ctx, run); err != nil {
		return run, fmt.Errorf("finish detection run: %w", err)
	}
	lgr.Printf("[INFO] detection run %s: %d posts scanned, %d clusters, %d opportunities",
		run.ID, run.PostsScanned, run.ClustersFound, run.Created)
	return run, nil
}

func (d *Detector) detect(ctx context.Context, run *domain.DetectionRun, now time.Time) error {
	posts, err := d.posts.GetUnprocessed(ctx, d.batchSize, 0)
	if err != nil {
		return fmt.Errorf("get unprocessed posts: %w", err)
	}
	run.PostsScanned = len(posts)
	if len(posts) == 0 {
		lgr.Printf("[DEBUG] nothing to detect, no unprocessed posts")
		return nil
	}

	recent := FilterRecent(posts, d.windowDays, now)
	lgr.Printf("[DEBUG] %d of %d posts within the %d-day window", len(recent), len(posts), d.windowDays)

	clusters := d.clusterer.Cluster(recent)
	run.ClustersFound = len(clusters)

	for i := range clusters {
		cluster := &clusters[i]
		cluster.Pain = d.pain.Score(cluster)
		cluster.Growth = d.growth.Classify(cluster.Posts, now)
		cluster.Confidence = d.confidence.Score(cluster, d.searchVolume(ctx, cluster))

		if !cluster.Confidence.Passed {
			lgr.Printf("[DEBUG] cluster of %d posts below threshold, confidence %d", cluster.Size(), cluster.Confidence.Score)
			continue
		}

		opp := d.synth.Synthesize(cluster, run.ID, now)
		if err := d.opps.CreateOpportunity(ctx, &opp); err != nil {
			lgr.Printf("[WARN] failed to persist opportunity %q: %v", opp.Title, err)
			continue
		}
		run.Created++
		lgr.Printf("[INFO] opportunity %q: confidence %d, pain %.2f, %s growth, %d mentions",
			opp.Title, opp.Confidence, opp.PainSeverity, opp.GrowthPattern, opp.MentionCount)
	}

	// the whole batch is done, including noise and out-of-window posts,
	// so the next pass starts on fresh input
	ids := make([]int64, 0, len(posts))
	for i := range posts {
		if posts[i].ID != 0 {
			ids = append(ids, posts[i].ID)
		}
	}
	if len(ids) > 0 {
		if err := d.posts.MarkProcessed(ctx, ids); err != nil {
			return fmt.Errorf("mark posts processed: %w", err)
		}
	}
	return nil
}

// searchVolume looks up external volume for the cluster's top keyword,
// zero when no provider is configured or the lookup fails.
func (d *Detector) searchVolume(ctx context.Context, cluster *domain.Cluster) int {
	if d.volume == nil {
		return 0
	}
	keyword := topKeyword(cluster)
	if keyword == "" {
		return 0
	}
	vol, err := d.volume.SearchVolume(ctx, keyword)
	if err != nil {
		lgr.Printf("[DEBUG] search volume lookup for %q failed: %v", keyword, err)
		return 0
	}
	return vol
}

// topKeyword is the most frequent keyword across the cluster, ties resolve
// lexicographically.
func topKeyword(cluster *domain.Cluster) string {
	best, bestCount := "", 0
	for kw, count := range cluster.KeywordCounts() {
		if count > bestCount || (count == bestCount && bestCount > 0 && kw < best) {
			best = kw
			bestCount = count
		}
	}
	return best
}
