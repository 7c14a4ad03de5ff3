package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// PostRepository handles post-related database operations
type PostRepository struct {
	db *sqlx.DB
}

// postSQL represents a post for SQL operations
type postSQL struct {
	ID          int64      `db:"id"`
	UID         string     `db:"uid"`
	Platform    string     `db:"platform"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	Author      string     `db:"author"`
	URL         string     `db:"url"`
	Upvotes     int        `db:"upvotes"`
	Comments    int        `db:"comments"`
	CreatedAt   *time.Time `db:"created_at"` // nil when the platform supplied no timestamp
	ScrapedAt   time.Time  `db:"scraped_at"`
	ContentHash string     `db:"content_hash"`
	Keywords    stringsSQL `db:"keywords"`
	Signals     stringsSQL `db:"signals"`
	Annotated   bool       `db:"annotated"`
	Processed   bool       `db:"processed"`

	// joined annotation data (not stored in posts, populated by queries)
	AnnPostID     *int64     `db:"ann_post_id"`
	AnnSummary    *string    `db:"ann_summary"`
	AnnSeverity   *float64   `db:"ann_pain_severity"`
	AnnCategory   *string    `db:"ann_category"`
	AnnKeywords   stringsSQL `db:"ann_keywords"`
	AnnWTP        *bool      `db:"ann_willingness_to_pay"`
	AnnConfidence *int       `db:"ann_confidence"`
	AnnModel      *string    `db:"ann_model"`
	AnnCreatedAt  *time.Time `db:"ann_created_at"`
}

// annotationColumns selects annotation fields with ann_ aliases for the
// LEFT JOIN reads that hydrate Post.Annotation
const annotationColumns = `
	a.post_id            AS ann_post_id,
	a.summary            AS ann_summary,
	a.pain_severity      AS ann_pain_severity,
	a.category           AS ann_category,
	a.keywords           AS ann_keywords,
	a.willingness_to_pay AS ann_willingness_to_pay,
	a.confidence         AS ann_confidence,
	a.model              AS ann_model,
	a.created_at         AS ann_created_at`

// NewPostRepository creates a new post repository
func NewPostRepository(database *sqlx.DB) *PostRepository {
	return &PostRepository{db: database}
}

// UpsertPosts inserts posts in one transaction, silently skipping ones whose
// content hash is already stored. Returns the number of new rows.
func (r *PostRepository) UpsertPosts(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	inserted := 0
	err := retrier.Do(ctx, func() error {
		inserted = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin upsert transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		query := `
			INSERT INTO posts (
				uid, platform, title, content, author, url, upvotes, comments,
				created_at, scraped_at, content_hash, keywords, signals
			) VALUES (
				:uid, :platform, :title, :content, :author, :url, :upvotes, :comments,
				:created_at, :scraped_at, :content_hash, :keywords, :signals
			)
			ON CONFLICT(content_hash) DO NOTHING
		`
		for i := range posts {
			result, err := tx.NamedExecContext(ctx, query, fromDomainPost(&posts[i]))
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("upsert post %s: %w", posts[i].UID, err)}
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("upsert rows affected: %w", err)}
			}
			inserted += int(affected)
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit upsert: %w", err)}
		}
		return nil
	})
	return inserted, err
}

// GetUnprocessed retrieves posts the detection engine has not consumed yet,
// oldest first, with annotations attached where present.
func (r *PostRepository) GetUnprocessed(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	query := `
		SELECT p.*,` + annotationColumns + `
		FROM posts p
		LEFT JOIN annotations a ON a.post_id = p.id
		WHERE p.processed = 0
		ORDER BY COALESCE(p.created_at, p.scraped_at)
		LIMIT ? OFFSET ?
	`
	var sqlPosts []postSQL
	if err := r.db.SelectContext(ctx, &sqlPosts, query, limit, offset); err != nil {
		return nil, fmt.Errorf("get unprocessed posts: %w", err)
	}
	return toDomainPosts(sqlPosts), nil
}

// GetUnannotated retrieves posts awaiting annotation, oldest first
func (r *PostRepository) GetUnannotated(ctx context.Context, limit int) ([]domain.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE annotated = 0 AND processed = 0
		ORDER BY COALESCE(created_at, scraped_at)
		LIMIT ?
	`
	var sqlPosts []postSQL
	if err := r.db.SelectContext(ctx, &sqlPosts, query, limit); err != nil {
		return nil, fmt.Errorf("get unannotated posts: %w", err)
	}
	return toDomainPosts(sqlPosts), nil
}

// MarkProcessed flags posts as consumed by a detection pass
func (r *PostRepository) MarkProcessed(ctx context.Context, ids []int64) error {
	return r.markFlag(ctx, "processed", ids)
}

// MarkAnnotated flags posts as handled by the annotator
func (r *PostRepository) MarkAnnotated(ctx context.Context, ids []int64) error {
	return r.markFlag(ctx, "annotated", ids)
}

// markFlag sets a boolean post column for a batch of ids, retrying on lock
// contention with the annotator and scraper writers
func (r *PostRepository) markFlag(ctx context.Context, column string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In("UPDATE posts SET "+column+" = 1 WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("build mark %s query: %w", column, err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("mark posts %s: %w", column, err)}
		}
		return nil
	})
}

// CountUnprocessed returns the size of the detection backlog
func (r *PostRepository) CountUnprocessed(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts WHERE processed = 0"); err != nil {
		return 0, fmt.Errorf("count unprocessed posts: %w", err)
	}
	return count, nil
}

// CountUnannotated returns the size of the annotation backlog
func (r *PostRepository) CountUnannotated(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts WHERE annotated = 0 AND processed = 0"); err != nil {
		return 0, fmt.Errorf("count unannotated posts: %w", err)
	}
	return count, nil
}

// CountPosts returns the total number of stored posts
func (r *PostRepository) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts"); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// fromDomainPost converts domain.Post to its SQL shape
func fromDomainPost(post *domain.Post) *postSQL {
	sqlPost := &postSQL{
		ID:          post.ID,
		UID:         post.UID,
		Platform:    post.Platform,
		Title:       post.Title,
		Content:     post.Content,
		Author:      post.Author,
		URL:         post.URL,
		Upvotes:     post.Upvotes,
		Comments:    post.Comments,
		ScrapedAt:   post.ScrapedAt,
		ContentHash: post.ContentHash,
		Keywords:    stringsSQL(post.Keywords),
		Signals:     stringsSQL(post.Signals),
		Annotated:   post.Annotated,
		Processed:   post.Processed,
	}
	if !post.CreatedAt.IsZero() {
		created := post.CreatedAt
		sqlPost.CreatedAt = &created
	}
	return sqlPost
}

// toDomainPost converts postSQL to domain.Post
func toDomainPost(sqlPost *postSQL) domain.Post {
	post := domain.Post{
		ID:          sqlPost.ID,
		UID:         sqlPost.UID,
		Platform:    sqlPost.Platform,
		Title:       sqlPost.Title,
		Content:     sqlPost.Content,
		Author:      sqlPost.Author,
		URL:         sqlPost.URL,
		Upvotes:     sqlPost.Upvotes,
		Comments:    sqlPost.Comments,
		ScrapedAt:   sqlPost.ScrapedAt,
		ContentHash: sqlPost.ContentHash,
		Keywords:    sqlPost.Keywords,
		Signals:     sqlPost.Signals,
		Annotated:   sqlPost.Annotated,
		Processed:   sqlPost.Processed,
	}
	if sqlPost.CreatedAt != nil {
		post.CreatedAt = *sqlPost.CreatedAt
	}
	if sqlPost.AnnPostID != nil {
		ann := &domain.Annotation{PostID: *sqlPost.AnnPostID, Keywords: sqlPost.AnnKeywords}
		if sqlPost.AnnSummary != nil {
			ann.Summary = *sqlPost.AnnSummary
		}
		if sqlPost.AnnSeverity != nil {
			ann.PainSeverity = *sqlPost.AnnSeverity
		}
		if sqlPost.AnnCategory != nil {
			ann.Category = domain.ParseCategory(*sqlPost.AnnCategory)
		}
		if sqlPost.AnnWTP != nil {
			ann.WillingnessToPay = *sqlPost.AnnWTP
		}
		if sqlPost.AnnConfidence != nil {
			ann.Confidence = *sqlPost.AnnConfidence
		}
		if sqlPost.AnnModel != nil {
			ann.Model = *sqlPost.AnnModel
		}
		if sqlPost.AnnCreatedAt != nil {
			ann.CreatedAt = *sqlPost.AnnCreatedAt
		}
		post.Annotation = ann
	}
	return post
}

func toDomainPosts(sqlPosts []postSQL) []domain.Post {
	posts := make([]domain.Post, len(sqlPosts))
	for i := range sqlPosts {
		posts[i] = toDomainPost(&sqlPosts[i])
	}
	return posts
}
