// Package scheduler drives the pipeline passes over the shared datastore:
// periodic source scrapes, post annotation and opportunity detection. Each
// pass kind is single-flight, a scrape pass fans out over the sources with
// bounded concurrency.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/rydeebs/product-browser/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/post_store.go -pkg mocks -skip-ensure -fmt goimports . PostStore
//go:generate moq -out mocks/annotation_store.go -pkg mocks -skip-ensure -fmt goimports . AnnotationStore
//go:generate moq -out mocks/state_store.go -pkg mocks -skip-ensure -fmt goimports . StateStore
//go:generate moq -out mocks/annotator.go -pkg mocks -skip-ensure -fmt goimports . Annotator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . Detector

// Source produces posts from one platform in a single bounded pass
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Post, error)
}

// PostStore persists scraped posts and hands out annotation work
type PostStore interface {
	UpsertPosts(ctx context.Context, posts []domain.Post) (int, error)
	GetUnannotated(ctx context.Context, limit int) ([]domain.Post, error)
	MarkAnnotated(ctx context.Context, ids []int64) error
}

// AnnotationStore persists usable annotations
type AnnotationStore interface {
	SaveAnnotations(ctx context.Context, annotations []domain.Annotation) error
}

// StateStore records per-source scrape outcomes
type StateStore interface {
	SaveSourceSuccess(ctx context.Context, name string, fetched int) error
	SaveSourceError(ctx context.Context, name, errMsg string) error
}

// Annotator produces structured annotations for a batch of posts
type Annotator interface {
	Annotate(ctx context.Context, posts []domain.Post) ([]domain.Annotation, error)
}

// Extractor pulls readable text from a linked page
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// Detector runs one full opportunity detection pass
type Detector interface {
	Run(ctx context.Context) (*domain.DetectionRun, error)
}

// one annotate pass is bounded to this many LLM requests
const annotateMaxBatches = 10

// Params holds scheduler dependencies and intervals
type Params struct {
	Sources     []Source
	Posts       PostStore
	Annotations AnnotationStore
	States      StateStore
	Annotator   Annotator
	Extractor   Extractor // optional, nil disables link-post enrichment
	Detector    Detector

	ScrapeInterval    time.Duration
	AnnotateInterval  time.Duration
	DetectInterval    time.Duration
	SourceConcurrency int
	AnnotateBatch     int // posts per LLM request
}

// Scheduler manages the periodic scrape, annotate and detect passes
type Scheduler struct {
	sources     []Source
	posts       PostStore
	annotations AnnotationStore
	states      StateStore
	annotator   Annotator
	extractor   Extractor
	detector    Detector

	scrapeInterval   time.Duration
	annotateInterval time.Duration
	detectInterval   time.Duration
	concurrency      int
	annotateBatch    int

	// single-flight guards, one per pass kind
	scrapeMu   sync.Mutex
	annotateMu sync.Mutex
	detectMu   sync.Mutex

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler from the given dependencies
func NewScheduler(p Params) *Scheduler {
	if p.ScrapeInterval == 0 {
		p.ScrapeInterval = time.Hour
	}
	if p.AnnotateInterval == 0 {
		p.AnnotateInterval = 10 * time.Minute
	}
	if p.DetectInterval == 0 {
		p.DetectInterval = 30 * time.Minute
	}
	if p.SourceConcurrency == 0 {
		p.SourceConcurrency = 4
	}
	if p.AnnotateBatch == 0 {
		p.AnnotateBatch = 10
	}

	return &Scheduler{
		sources:          p.Sources,
		posts:            p.Posts,
		annotations:      p.Annotations,
		states:           p.States,
		annotator:        p.Annotator,
		extractor:        p.Extractor,
		detector:         p.Detector,
		scrapeInterval:   p.ScrapeInterval,
		annotateInterval: p.AnnotateInterval,
		detectInterval:   p.DetectInterval,
		concurrency:      p.SourceConcurrency,
		annotateBatch:    p.AnnotateBatch,
	}
}

// Start begins the periodic passes. The scrape worker runs once right away,
// annotation and detection wait for their first tick.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.baseCtx = ctx

	s.wg.Add(3)
	go s.runLoop(ctx, s.scrapeInterval, true, s.scrapePass)
	go s.runLoop(ctx, s.annotateInterval, false, s.annotatePass)
	go s.runLoop(ctx, s.detectInterval, false, s.detectPass)

	lgr.Printf("[INFO] scheduler started: scrape every %v, annotate every %v, detect every %v",
		s.scrapeInterval, s.annotateInterval, s.detectInterval)
}

// Stop gracefully stops the scheduler, waiting for passes in flight
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runLoop(ctx context.Context, interval time.Duration, immediate bool, pass func(context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if immediate {
		pass(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pass(ctx)
		}
	}
}

// TriggerScrape starts a scrape pass in the background. A pass already in
// flight makes the trigger a no-op.
func (s *Scheduler) TriggerScrape() {
	if s.baseCtx == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.scrapePass(s.baseCtx)
	}()
}

// TriggerDetect starts a detection pass in the background. A pass already
// in flight makes the trigger a no-op.
func (s *Scheduler) TriggerDetect() {
	if s.baseCtx == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.detectPass(s.baseCtx)
	}()
}

// scrapePass fetches every source once, concurrently up to the configured
// limit. Each source records its own outcome, one failing source never
// blocks the others.
func (s *Scheduler) scrapePass(ctx context.Context) {
	if !s.scrapeMu.TryLock() {
		lgr.Printf("[DEBUG] scrape pass already running, skipped")
		return
	}
	defer s.scrapeMu.Unlock()

	if len(s.sources) == 0 {
		return
	}

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, src := range s.sources {
		g.Go(func() error {
			s.scrapeSource(gctx, src)
			return nil
		})
	}
	_ = g.Wait() // outcomes recorded per source, nothing escalates

	lgr.Printf("[INFO] scrape pass completed in %s", time.Since(started).Round(time.Millisecond))
}

func (s *Scheduler) scrapeSource(ctx context.Context, src Source) {
	name := src.Name()
	lgr.Printf("[DEBUG] scraping %s", name)

	posts, err := src.Fetch(ctx)
	if err != nil {
		lgr.Printf("[WARN] scrape %s failed: %v", name, err)
		if serr := s.states.SaveSourceError(ctx, name, err.Error()); serr != nil {
			lgr.Printf("[WARN] save %s source state: %v", name, serr)
		}
		return
	}

	s.enrich(ctx, posts)

	inserted, err := s.posts.UpsertPosts(ctx, posts)
	if err != nil {
		lgr.Printf("[ERROR] store %s posts: %v", name, err)
		if serr := s.states.SaveSourceError(ctx, name, err.Error()); serr != nil {
			lgr.Printf("[WARN] save %s source state: %v", name, serr)
		}
		return
	}

	lgr.Printf("[INFO] scraped %s: %d posts, %d new", name, len(posts), inserted)
	if serr := s.states.SaveSourceSuccess(ctx, name, len(posts)); serr != nil {
		lgr.Printf("[WARN] save %s source state: %v", name, serr)
	}
}

// enrich fills empty post bodies from their linked pages before storage.
// Extraction failures leave the post with whatever text the platform gave.
func (s *Scheduler) enrich(ctx context.Context, posts []domain.Post) {
	if s.extractor == nil {
		return
	}
	for i := range posts {
		if posts[i].Content != "" || posts[i].URL == "" {
			continue
		}
		text, err := s.extractor.Extract(ctx, posts[i].URL)
		if err != nil {
			lgr.Printf("[DEBUG] extract %s: %v", posts[i].URL, err)
			continue
		}
		posts[i].Content = text
	}
}

// annotatePass feeds unannotated posts to the LLM in batches. Posts from a
// batch that never produced a parseable reply stay unannotated for the next
// pass, batches that parsed are flagged whole even when some records were
// discarded as unusable.
func (s *Scheduler) annotatePass(ctx context.Context) {
	if !s.annotateMu.TryLock() {
		lgr.Printf("[DEBUG] annotate pass already running, skipped")
		return
	}
	defer s.annotateMu.Unlock()

	posts, err := s.posts.GetUnannotated(ctx, s.annotateBatch*annotateMaxBatches)
	if err != nil {
		lgr.Printf("[ERROR] get unannotated posts: %v", err)
		return
	}
	if len(posts) == 0 {
		return
	}

	lgr.Printf("[INFO] annotating %d posts", len(posts))
	saved := 0
	for start := 0; start < len(posts); start += s.annotateBatch {
		end := start + s.annotateBatch
		if end > len(posts) {
			end = len(posts)
		}
		saved += s.annotateChunk(ctx, posts[start:end])
	}
	lgr.Printf("[INFO] annotate pass completed: %d usable annotations", saved)
}

func (s *Scheduler) annotateChunk(ctx context.Context, chunk []domain.Post) int {
	annotations, err := s.annotator.Annotate(ctx, chunk)
	if err != nil {
		lgr.Printf("[WARN] annotate batch of %d failed: %v", len(chunk), err)
		return 0
	}

	if len(annotations) > 0 {
		if err := s.annotations.SaveAnnotations(ctx, annotations); err != nil {
			// posts stay unannotated, the save is idempotent on retry
			lgr.Printf("[ERROR] save annotations: %v", err)
			return 0
		}
	}

	ids := make([]int64, len(chunk))
	for i, p := range chunk {
		ids[i] = p.ID
	}
	if err := s.posts.MarkAnnotated(ctx, ids); err != nil {
		lgr.Printf("[ERROR] mark posts annotated: %v", err)
	}
	return len(annotations)
}

// detectPass runs the opportunity detection engine once
func (s *Scheduler) detectPass(ctx context.Context) {
	if !s.detectMu.TryLock() {
		lgr.Printf("[DEBUG] detect pass already running, skipped")
		return
	}
	defer s.detectMu.Unlock()

	run, err := s.detector.Run(ctx)
	if err != nil {
		lgr.Printf("[ERROR] detection pass failed: %v", err)
		return
	}
	lgr.Printf("[INFO] detection run %s: %d posts scanned, %d clusters, %d opportunities",
		run.ID, run.PostsScanned, run.ClustersFound, run.Created)
}
