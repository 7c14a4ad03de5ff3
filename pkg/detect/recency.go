package detect

import (
	"time"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// FilterRecent keeps posts whose best-available timestamp falls inside the
// trailing window of maxAgeDays before now. Posts without any usable
// timestamp are kept rather than dropped, malformed input must not silently
// lose data.
func FilterRecent(posts []domain.Post, maxAgeDays int, now time.Time) []domain.Post {
	cutoff := now.AddDate(0, 0, -maxAgeDays)
	recent := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		t, ok := p.BestTime()
		if !ok || !t.Before(cutoff) {
			recent = append(recent, p)
		}
	}
	return recent
}
