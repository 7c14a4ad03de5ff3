package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// defaultRSSLimit bounds the number of items in the RSS export
const defaultRSSLimit = 50

// rssHandler serves recent active opportunities as an RSS 2.0 feed.
// Accepts ?min_confidence= to raise the floor above the stored set.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minConfidence := 0
	if v := r.URL.Query().Get("min_confidence"); v != "" {
		conf, err := strconv.Atoi(v)
		if err != nil || conf < 0 || conf > 100 {
			renderError(w, r, fmt.Errorf("invalid min_confidence"), http.StatusBadRequest)
			return
		}
		minConfidence = conf
	}

	opps, err := s.db.GetOpportunities(ctx, domain.OpportunityFilter{
		MinConfidence: minConfidence,
		Status:        domain.StatusActive,
		Limit:         defaultRSSLimit,
	})
	if err != nil {
		lgr.Printf("[ERROR] get opportunities for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.generator.GenerateRSS(opps, minConfidence)
	if err != nil {
		lgr.Printf("[ERROR] generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] write RSS response: %v", err)
	}
}
