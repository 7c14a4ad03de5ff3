package domain

import "time"

// OpportunityStatus tracks the lifecycle of a persisted opportunity.
// The engine only ever creates active records, downstream consumers may
// archive or dismiss them.
type OpportunityStatus string

const (
	StatusActive    OpportunityStatus = "active"
	StatusArchived  OpportunityStatus = "archived"
	StatusDismissed OpportunityStatus = "dismissed"
)

// Opportunity is a persisted, validated product gap synthesized from one
// cluster. Append-only, never mutated by the engine after creation.
type Opportunity struct {
	ID              int64
	RunID           string // detection run that produced it
	Title           string // <= 100 chars
	Summary         string // <= 1000 chars
	Category        Category
	Keywords        []string // top keywords, <= 20
	PainSeverity    float64  // 1..10
	GrowthPattern   GrowthPattern
	GrowthRate      float64 // averaged week-over-week percent
	Confidence      int     // 0..100
	MentionCount    int     // cluster size
	TotalEngagement int
	DetectedAt      time.Time
	Status          OpportunityStatus

	Evidence []Evidence // populated on detail reads
}

// Evidence links an opportunity to one of its top source posts.
type Evidence struct {
	ID            int64
	OpportunityID int64
	PostID        int64
	SignalType    string  // "pain_point"
	Weight        float64 // 0..1, from pain severity and engagement rank
	Rank          int     // 1-based engagement rank

	// denormalized post fields for detail reads
	PostTitle string
	PostURL   string
	Platform  string
}

// OpportunityFilter narrows opportunity listings.
type OpportunityFilter struct {
	MinConfidence int
	Status        OpportunityStatus // empty matches any
	Limit         int
}

// DetectionRun is the audit record of one engine pass.
type DetectionRun struct {
	ID            string // uuid
	StartedAt     time.Time
	FinishedAt    *time.Time
	PostsScanned  int
	ClustersFound int
	Created       int // opportunities persisted
	Status        string // "running", "completed", "failed"
	Error         string
}

// SourceState is per-source scrape bookkeeping.
type SourceState struct {
	Name       string
	LastRunAt  *time.Time
	LastFetch  int // posts fetched on the last successful run
	ErrorCount int
	LastError  string
}
