package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// AnnotationRepository handles annotator output storage
type AnnotationRepository struct {
	db *sqlx.DB
}

// annotationSQL represents an annotation for SQL operations
type annotationSQL struct {
	ID         int64      `db:"id"`
	PostID     int64      `db:"post_id"`
	Summary    string     `db:"summary"`
	Severity   float64    `db:"pain_severity"`
	Category   string     `db:"category"`
	Keywords   stringsSQL `db:"keywords"`
	WTP        bool       `db:"willingness_to_pay"`
	Confidence int        `db:"confidence"`
	Model      string     `db:"model"`
	CreatedAt  time.Time  `db:"created_at"`
}

// NewAnnotationRepository creates a new annotation repository
func NewAnnotationRepository(database *sqlx.DB) *AnnotationRepository {
	return &AnnotationRepository{db: database}
}

// SaveAnnotations upserts a batch of annotations keyed by post id, so a
// re-annotated post replaces its previous record
func (r *AnnotationRepository) SaveAnnotations(ctx context.Context, annotations []domain.Annotation) error {
	if len(annotations) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin annotations transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		query := `
			INSERT INTO annotations (
				post_id, summary, pain_severity, category, keywords,
				willingness_to_pay, confidence, model, created_at
			) VALUES (
				:post_id, :summary, :pain_severity, :category, :keywords,
				:willingness_to_pay, :confidence, :model, :created_at
			)
			ON CONFLICT(post_id) DO UPDATE SET
				summary = excluded.summary,
				pain_severity = excluded.pain_severity,
				category = excluded.category,
				keywords = excluded.keywords,
				willingness_to_pay = excluded.willingness_to_pay,
				confidence = excluded.confidence,
				model = excluded.model,
				created_at = excluded.created_at
		`
		for i := range annotations {
			if _, err := tx.NamedExecContext(ctx, query, fromDomainAnnotation(&annotations[i])); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("save annotation for post %d: %w", annotations[i].PostID, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit annotations: %w", err)}
		}
		return nil
	})
}

// GetForPosts retrieves annotations for the given post ids
func (r *AnnotationRepository) GetForPosts(ctx context.Context, postIDs []int64) ([]domain.Annotation, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM annotations WHERE post_id IN (?) ORDER BY post_id", postIDs)
	if err != nil {
		return nil, fmt.Errorf("build annotations query: %w", err)
	}

	var sqlAnnotations []annotationSQL
	if err := r.db.SelectContext(ctx, &sqlAnnotations, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get annotations: %w", err)
	}

	annotations := make([]domain.Annotation, len(sqlAnnotations))
	for i := range sqlAnnotations {
		annotations[i] = toDomainAnnotation(&sqlAnnotations[i])
	}
	return annotations, nil
}

// CountAnnotations returns the total number of stored annotations
func (r *AnnotationRepository) CountAnnotations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM annotations"); err != nil {
		return 0, fmt.Errorf("count annotations: %w", err)
	}
	return count, nil
}

func fromDomainAnnotation(ann *domain.Annotation) *annotationSQL {
	created := ann.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return &annotationSQL{
		PostID:     ann.PostID,
		Summary:    ann.Summary,
		Severity:   ann.PainSeverity,
		Category:   string(ann.Category),
		Keywords:   stringsSQL(ann.Keywords),
		WTP:        ann.WillingnessToPay,
		Confidence: ann.Confidence,
		Model:      ann.Model,
		CreatedAt:  created,
	}
}

func toDomainAnnotation(sqlAnn *annotationSQL) domain.Annotation {
	return domain.Annotation{
		PostID:           sqlAnn.PostID,
		Summary:          sqlAnn.Summary,
		PainSeverity:     sqlAnn.Severity,
		Category:         domain.ParseCategory(sqlAnn.Category),
		Keywords:         sqlAnn.Keywords,
		WillingnessToPay: sqlAnn.WTP,
		Confidence:       sqlAnn.Confidence,
		Model:            sqlAnn.Model,
		CreatedAt:        sqlAnn.CreatedAt,
	}
}
