package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// defaultListLimit bounds opportunity listings when the client asks for
// nothing specific, maxListLimit is the hard ceiling
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// statusResponse is the GET /api/v1/status payload
type statusResponse struct {
	Status        string                `json:"status"`
	Version       string                `json:"version"`
	Time          time.Time             `json:"time"`
	Posts         int                   `json:"posts"`
	Unprocessed   int                   `json:"unprocessed"`
	Annotated     int                   `json:"annotated"`
	Opportunities int                   `json:"opportunities"`
	LastRun       *runResponse          `json:"last_run,omitempty"`
	Sources       []sourceStateResponse `json:"sources"`
}

type runResponse struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	PostsScanned  int        `json:"posts_scanned"`
	ClustersFound int        `json:"clusters_found"`
	Created       int        `json:"created"`
	Status        string     `json:"status"`
	Error         string     `json:"error,omitempty"`
}

type sourceStateResponse struct {
	Name       string     `json:"name"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	LastFetch  int        `json:"last_fetch"`
	ErrorCount int        `json:"error_count"`
	LastError  string     `json:"last_error,omitempty"`
}

// opportunityResponse is the JSON shape of one opportunity
type opportunityResponse struct {
	ID              int64              `json:"id"`
	RunID           string             `json:"run_id"`
	Title           string             `json:"title"`
	Summary         string             `json:"summary"`
	Category        string             `json:"category"`
	Keywords        []string           `json:"keywords"`
	PainSeverity    float64            `json:"pain_severity"`
	GrowthPattern   string             `json:"growth_pattern"`
	GrowthRate      float64            `json:"growth_rate"`
	Confidence      int                `json:"confidence"`
	MentionCount    int                `json:"mention_count"`
	TotalEngagement int                `json:"total_engagement"`
	DetectedAt      time.Time          `json:"detected_at"`
	Status          string             `json:"status"`
	Evidence        []evidenceResponse `json:"evidence,omitempty"`
}

type evidenceResponse struct {
	PostID     int64   `json:"post_id"`
	PostTitle  string  `json:"post_title"`
	PostURL    string  `json:"post_url"`
	Platform   string  `json:"platform"`
	SignalType string  `json:"signal_type"`
	Weight     float64 `json:"weight"`
	Rank       int     `json:"rank"`
}

type opportunitiesResponse struct {
	Count         int                   `json:"count"`
	Opportunities []opportunityResponse `json:"opportunities"`
}

// statusHandler returns pipeline counters, the latest detection run and
// per-source scrape state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := statusResponse{Status: "ok", Version: s.cfg.Version, Time: time.Now().UTC()}

	var err error
	if resp.Posts, err = s.db.CountPosts(ctx); err != nil {
		lgr.Printf("[ERROR] count posts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if resp.Unprocessed, err = s.db.CountUnprocessed(ctx); err != nil {
		lgr.Printf("[ERROR] count unprocessed posts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if resp.Annotated, err = s.db.CountAnnotations(ctx); err != nil {
		lgr.Printf("[ERROR] count annotations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if resp.Opportunities, err = s.db.CountOpportunities(ctx); err != nil {
		lgr.Printf("[ERROR] count opportunities: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	run, err := s.db.GetLatestRun(ctx)
	if err != nil {
		lgr.Printf("[ERROR] get latest run: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if run != nil {
		resp.LastRun = &runResponse{
			ID:            run.ID,
			StartedAt:     run.StartedAt,
			FinishedAt:    run.FinishedAt,
			PostsScanned:  run.PostsScanned,
			ClustersFound: run.ClustersFound,
			Created:       run.Created,
			Status:        run.Status,
			Error:         run.Error,
		}
	}

	states, err := s.db.GetSourceStates(ctx)
	if err != nil {
		lgr.Printf("[ERROR] get source states: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	resp.Sources = make([]sourceStateResponse, 0, len(states))
	for _, st := range states {
		resp.Sources = append(resp.Sources, sourceStateResponse{
			Name:       st.Name,
			LastRunAt:  st.LastRunAt,
			LastFetch:  st.LastFetch,
			ErrorCount: st.ErrorCount,
			LastError:  st.LastError,
		})
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// listOpportunitiesHandler returns stored opportunities ranked by confidence
func (s *Server) listOpportunitiesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := domain.OpportunityFilter{Limit: defaultListLimit}

	if v := r.URL.Query().Get("min_confidence"); v != "" {
		conf, err := strconv.Atoi(v)
		if err != nil || conf < 0 || conf > 100 {
			renderError(w, r, fmt.Errorf("invalid min_confidence"), http.StatusBadRequest)
			return
		}
		filter.MinConfidence = conf
	}

	if v := r.URL.Query().Get("status"); v != "" {
		switch status := domain.OpportunityStatus(v); status {
		case domain.StatusActive, domain.StatusArchived, domain.StatusDismissed:
			filter.Status = status
		default:
			renderError(w, r, fmt.Errorf("invalid status"), http.StatusBadRequest)
			return
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		filter.Limit = limit
	}

	opps, err := s.db.GetOpportunities(ctx, filter)
	if err != nil {
		lgr.Printf("[ERROR] get opportunities: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := opportunitiesResponse{
		Count:         len(opps),
		Opportunities: make([]opportunityResponse, 0, len(opps)),
	}
	for _, opp := range opps {
		resp.Opportunities = append(resp.Opportunities, toOpportunityResponse(opp))
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// getOpportunityHandler returns one opportunity with its evidence
func (s *Server) getOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid opportunity ID"), http.StatusBadRequest)
		return
	}

	opp, err := s.db.GetOpportunity(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("opportunity %d not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] get opportunity %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, toOpportunityResponse(*opp))
}

// scrapeHandler starts a scrape pass in the background
func (s *Server) scrapeHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.TriggerScrape()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"result": "scrape started"})
}

// detectHandler starts a detection pass in the background
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.TriggerDetect()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"result": "detection started"})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

func toOpportunityResponse(opp domain.Opportunity) opportunityResponse {
	resp := opportunityResponse{
		ID:              opp.ID,
		RunID:           opp.RunID,
		Title:           opp.Title,
		Summary:         opp.Summary,
		Category:        string(opp.Category),
		Keywords:        opp.Keywords,
		PainSeverity:    opp.PainSeverity,
		GrowthPattern:   string(opp.GrowthPattern),
		GrowthRate:      opp.GrowthRate,
		Confidence:      opp.Confidence,
		MentionCount:    opp.MentionCount,
		TotalEngagement: opp.TotalEngagement,
		DetectedAt:      opp.DetectedAt,
		Status:          string(opp.Status),
	}

	for _, ev := range opp.Evidence {
		resp.Evidence = append(resp.Evidence, evidenceResponse{
			PostID:     ev.PostID,
			PostTitle:  ev.PostTitle,
			PostURL:    ev.PostURL,
			Platform:   ev.Platform,
			SignalType: ev.SignalType,
			Weight:     ev.Weight,
			Rank:       ev.Rank,
		})
	}

	return resp
}
