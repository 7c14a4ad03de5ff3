package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// OpportunityRepository handles opportunity and evidence storage
type OpportunityRepository struct {
	db *sqlx.DB
}

// opportunitySQL represents an opportunity for SQL operations
type opportunitySQL struct {
	ID              int64      `db:"id"`
	RunID           string     `db:"run_id"`
	Title           string     `db:"title"`
	Summary         string     `db:"summary"`
	Category        string     `db:"category"`
	Keywords        stringsSQL `db:"keywords"`
	PainSeverity    float64    `db:"pain_severity"`
	GrowthPattern   string     `db:"growth_pattern"`
	GrowthRate      float64    `db:"growth_rate"`
	Confidence      int        `db:"confidence"`
	MentionCount    int        `db:"mention_count"`
	TotalEngagement int        `db:"total_engagement"`
	DetectedAt      time.Time  `db:"detected_at"`
	Status          string     `db:"status"`
}

// evidenceSQL represents an evidence row joined with its post
type evidenceSQL struct {
	ID            int64   `db:"id"`
	OpportunityID int64   `db:"opportunity_id"`
	PostID        int64   `db:"post_id"`
	SignalType    string  `db:"signal_type"`
	Weight        float64 `db:"weight"`
	Rank          int     `db:"rank"`

	// joined post data (not stored in evidence, populated by queries)
	PostTitle string `db:"post_title"`
	PostURL   string `db:"post_url"`
	Platform  string `db:"post_platform"`
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(database *sqlx.DB) *OpportunityRepository {
	return &OpportunityRepository{db: database}
}

// CreateOpportunity inserts an opportunity with its evidence links in one
// transaction and sets the generated id on the passed record
func (r *OpportunityRepository) CreateOpportunity(ctx context.Context, opp *domain.Opportunity) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin opportunity transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		query := `
			INSERT INTO opportunities (
				run_id, title, summary, category, keywords, pain_severity,
				growth_pattern, growth_rate, confidence, mention_count,
				total_engagement, detected_at, status
			) VALUES (
				:run_id, :title, :summary, :category, :keywords, :pain_severity,
				:growth_pattern, :growth_rate, :confidence, :mention_count,
				:total_engagement, :detected_at, :status
			)
		`
		result, err := tx.NamedExecContext(ctx, query, fromDomainOpportunity(opp))
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("create opportunity: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get opportunity id: %w", err)}
		}

		evQuery := `
			INSERT INTO evidence (opportunity_id, post_id, signal_type, weight, rank)
			VALUES (:opportunity_id, :post_id, :signal_type, :weight, :rank)
		`
		for i := range opp.Evidence {
			ev := &evidenceSQL{
				OpportunityID: id,
				PostID:        opp.Evidence[i].PostID,
				SignalType:    opp.Evidence[i].SignalType,
				Weight:        opp.Evidence[i].Weight,
				Rank:          opp.Evidence[i].Rank,
			}
			if _, err := tx.NamedExecContext(ctx, evQuery, ev); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("create evidence for post %d: %w", ev.PostID, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit opportunity: %w", err)}
		}

		opp.ID = id
		for i := range opp.Evidence {
			opp.Evidence[i].OpportunityID = id
		}
		return nil
	})
}

// GetOpportunity retrieves one opportunity with its evidence, post fields
// denormalized for detail views
func (r *OpportunityRepository) GetOpportunity(ctx context.Context, id int64) (*domain.Opportunity, error) {
	var sqlOpp opportunitySQL
	if err := r.db.GetContext(ctx, &sqlOpp, "SELECT * FROM opportunities WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get opportunity %d: %w", id, err)
	}

	evQuery := `
		SELECT e.*, p.title AS post_title, p.url AS post_url, p.platform AS post_platform
		FROM evidence e
		JOIN posts p ON p.id = e.post_id
		WHERE e.opportunity_id = ?
		ORDER BY e.rank
	`
	var sqlEvidence []evidenceSQL
	if err := r.db.SelectContext(ctx, &sqlEvidence, evQuery, id); err != nil {
		return nil, fmt.Errorf("get evidence for opportunity %d: %w", id, err)
	}

	opp := toDomainOpportunity(&sqlOpp)
	opp.Evidence = make([]domain.Evidence, len(sqlEvidence))
	for i := range sqlEvidence {
		opp.Evidence[i] = toDomainEvidence(&sqlEvidence[i])
	}
	return &opp, nil
}

// GetOpportunities lists opportunities matching the filter, ranked by
// confidence with recency breaking ties. Evidence is not attached on list
// reads.
func (r *OpportunityRepository) GetOpportunities(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := "SELECT * FROM opportunities WHERE confidence >= ?"
	args := []interface{}{filter.MinConfidence}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY confidence DESC, detected_at DESC LIMIT ?"
	args = append(args, limit)

	var sqlOpps []opportunitySQL
	if err := r.db.SelectContext(ctx, &sqlOpps, query, args...); err != nil {
		return nil, fmt.Errorf("get opportunities: %w", err)
	}

	opps := make([]domain.Opportunity, len(sqlOpps))
	for i := range sqlOpps {
		opps[i] = toDomainOpportunity(&sqlOpps[i])
	}
	return opps, nil
}

// CountOpportunities returns the total number of stored opportunities
func (r *OpportunityRepository) CountOpportunities(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM opportunities"); err != nil {
		return 0, fmt.Errorf("count opportunities: %w", err)
	}
	return count, nil
}

func fromDomainOpportunity(opp *domain.Opportunity) *opportunitySQL {
	return &opportunitySQL{
		RunID:           opp.RunID,
		Title:           opp.Title,
		Summary:         opp.Summary,
		Category:        string(opp.Category),
		Keywords:        stringsSQL(opp.Keywords),
		PainSeverity:    opp.PainSeverity,
		GrowthPattern:   string(opp.GrowthPattern),
		GrowthRate:      opp.GrowthRate,
		Confidence:      opp.Confidence,
		MentionCount:    opp.MentionCount,
		TotalEngagement: opp.TotalEngagement,
		DetectedAt:      opp.DetectedAt,
		Status:          string(opp.Status),
	}
}

func toDomainOpportunity(sqlOpp *opportunitySQL) domain.Opportunity {
	return domain.Opportunity{
		ID:              sqlOpp.ID,
		RunID:           sqlOpp.RunID,
		Title:           sqlOpp.Title,
		Summary:         sqlOpp.Summary,
		Category:        domain.ParseCategory(sqlOpp.Category),
		Keywords:        sqlOpp.Keywords,
		PainSeverity:    sqlOpp.PainSeverity,
		GrowthPattern:   domain.GrowthPattern(sqlOpp.GrowthPattern),
		GrowthRate:      sqlOpp.GrowthRate,
		Confidence:      sqlOpp.Confidence,
		MentionCount:    sqlOpp.MentionCount,
		TotalEngagement: sqlOpp.TotalEngagement,
		DetectedAt:      sqlOpp.DetectedAt,
		Status:          domain.OpportunityStatus(sqlOpp.Status),
	}
}

func toDomainEvidence(sqlEv *evidenceSQL) domain.Evidence {
	return domain.Evidence{
		ID:            sqlEv.ID,
		OpportunityID: sqlEv.OpportunityID,
		PostID:        sqlEv.PostID,
		SignalType:    sqlEv.SignalType,
		Weight:        sqlEv.Weight,
		Rank:          sqlEv.Rank,
		PostTitle:     sqlEv.PostTitle,
		PostURL:       sqlEv.PostURL,
		Platform:      sqlEv.Platform,
	}
}
