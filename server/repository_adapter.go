package server

import (
	"context"

	"github.com/rydeebs/product-browser/pkg/domain"
	"github.com/rydeebs/product-browser/pkg/repository"
)

// RepositoryAdapter adapts repositories to the server Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CountPosts returns the total number of stored posts
func (r *RepositoryAdapter) CountPosts(ctx context.Context) (int, error) {
	return r.repos.Post.CountPosts(ctx)
}

// CountUnprocessed returns the number of posts no detection pass has consumed
func (r *RepositoryAdapter) CountUnprocessed(ctx context.Context) (int, error) {
	return r.repos.Post.CountUnprocessed(ctx)
}

// CountAnnotations returns the number of stored annotations
func (r *RepositoryAdapter) CountAnnotations(ctx context.Context) (int, error) {
	return r.repos.Annotation.CountAnnotations(ctx)
}

// CountOpportunities returns the total number of stored opportunities
func (r *RepositoryAdapter) CountOpportunities(ctx context.Context) (int, error) {
	return r.repos.Opportunity.CountOpportunities(ctx)
}

// GetOpportunities lists opportunities matching the filter
func (r *RepositoryAdapter) GetOpportunities(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	return r.repos.Opportunity.GetOpportunities(ctx, filter)
}

// GetOpportunity returns one opportunity with its evidence
func (r *RepositoryAdapter) GetOpportunity(ctx context.Context, id int64) (*domain.Opportunity, error) {
	return r.repos.Opportunity.GetOpportunity(ctx, id)
}

// GetLatestRun returns the most recent detection run, nil when none exist
func (r *RepositoryAdapter) GetLatestRun(ctx context.Context) (*domain.DetectionRun, error) {
	return r.repos.Run.GetLatestRun(ctx)
}

// GetSourceStates returns per-source scrape bookkeeping
func (r *RepositoryAdapter) GetSourceStates(ctx context.Context) ([]domain.SourceState, error) {
	return r.repos.Run.GetSourceStates(ctx)
}
