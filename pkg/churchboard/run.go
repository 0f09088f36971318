package churchboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Router builds the HTTP routing table. Split out of Run so tests can mount
// the full API on an httptest server.
//
// All domain routes live under /api and require the X-User-ID identity
// header. Several endpoints are aliases kept for frontend compatibility
// (item-request/requests/item-requests, job-posting/job-posts); they share
// handlers rather than diverging.
func (a *App) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.requestID, a.logRequests)

	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", a.handleHealth).Methods("GET")

	// The debug dump predates the identity middleware and stays open.
	api.HandleFunc("/debug-requests", a.handleDebugRequests).Methods("GET")

	sec := api.NewRoute().Subrouter()
	sec.Use(a.authenticate)

	// Church events
	sec.HandleFunc("/church-events", a.handleListChurchEvents).Methods("GET")
	sec.HandleFunc("/church-events", a.handleCreateChurchEvent).Methods("POST")
	sec.HandleFunc("/church-events/{id}", a.handleGetChurchEvent).Methods("GET")
	sec.HandleFunc("/church-events/{id}", a.handleUpdateChurchEvent).Methods("PUT")
	sec.HandleFunc("/church-events/{id}", a.handleDeleteChurchEvent).Methods("DELETE")

	// Church news
	sec.HandleFunc("/church-news", a.handleListChurchNews).Methods("GET")
	sec.HandleFunc("/church-news", a.handleCreateChurchNews).Methods("POST")
	sec.HandleFunc("/church-news/{id}", a.handleGetChurchNews).Methods("GET")
	sec.HandleFunc("/church-news/{id}", a.handleUpdateChurchNews).Methods("PUT")
	sec.HandleFunc("/church-news/{id}", a.handleDeleteChurchNews).Methods("DELETE")
	sec.HandleFunc("/church-news/{id}/like", a.handleLikeChurchNews).Methods("POST")

	// Community requests and aliases
	sec.HandleFunc("/item-request", a.handleListCommunityRequests).Methods("GET")
	sec.HandleFunc("/requests", a.handleListCommunityRequests).Methods("GET")
	sec.HandleFunc("/item-requests", a.handleListCommunityRequests).Methods("GET")
	sec.HandleFunc("/requests", a.handleCreateCommunityRequest).Methods("POST")
	sec.HandleFunc("/item-requests", a.handleCreateCommunityRequest).Methods("POST")
	sec.HandleFunc("/requests/{id}", a.handleGetCommunityRequest).Methods("GET")
	sec.HandleFunc("/requests/{id}", a.handleUpdateCommunityRequest).Methods("PUT")
	sec.HandleFunc("/requests/{id}/status", a.handleUpdateCommunityRequestStatus).Methods("PATCH")
	sec.HandleFunc("/requests/{id}", a.handleDeleteCommunityRequest).Methods("DELETE")

	// Job posts and seekers
	sec.HandleFunc("/job-posting", a.handleListJobPostings).Methods("GET")
	sec.HandleFunc("/job-posting", a.handleCreateJobPost).Methods("POST")
	sec.HandleFunc("/job-posts", a.handleSampleJobPosts).Methods("GET")
	sec.HandleFunc("/job-posts", a.handleCreateJobPost).Methods("POST")
	sec.HandleFunc("/job-posts/{id}", a.handleGetJobPost).Methods("GET")
	sec.HandleFunc("/job-posts/{id}", a.handleUpdateJobPost).Methods("PUT")
	sec.HandleFunc("/job-posts/{id}", a.handleDeleteJobPost).Methods("DELETE")
	sec.HandleFunc("/job-seeking", a.handleListJobSeekers).Methods("GET")
	sec.HandleFunc("/job-seekers", a.handleListJobSeekers).Methods("GET")
	sec.HandleFunc("/job-seekers", a.handleCreateJobSeeker).Methods("POST")
	sec.HandleFunc("/job-seekers/{id}", a.handleGetJobSeeker).Methods("GET")
	sec.HandleFunc("/job-seekers/{id}", a.handleDeleteJobSeeker).Methods("DELETE")

	// Music team recruitments
	sec.HandleFunc("/music-team-recruitments", a.handleListMusicTeamRecruitments).Methods("GET")
	sec.HandleFunc("/music-team-recruitments", a.handleCreateMusicTeamRecruitment).Methods("POST")
	sec.HandleFunc("/music-team-recruitments/{id}", a.handleGetMusicTeamRecruitment).Methods("GET")
	sec.HandleFunc("/music-team-recruitments/{id}", a.handleUpdateMusicTeamRecruitment).Methods("PUT")
	sec.HandleFunc("/music-team-recruitments/{id}", a.handleDeleteMusicTeamRecruitment).Methods("DELETE")
	sec.HandleFunc("/music-team-recruitments/{id}/apply", a.handleApplyMusicTeamRecruitment).Methods("POST")

	// Music team seekers
	sec.HandleFunc("/music-team-seekers", a.handleListMusicTeamSeekers).Methods("GET")
	sec.HandleFunc("/music-team-seekers", a.handleCreateMusicTeamSeeker).Methods("POST")
	sec.HandleFunc("/music-team-seekers/{id}", a.handleGetMusicTeamSeeker).Methods("GET")
	sec.HandleFunc("/music-team-seekers/{id}", a.handleUpdateMusicTeamSeeker).Methods("PUT")
	sec.HandleFunc("/music-team-seekers/{id}", a.handleDeleteMusicTeamSeeker).Methods("DELETE")

	return router
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails. On cancellation, in-flight requests get up to 5 seconds
// to complete.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.logger.Info().Str("addr", addr).Msg("starting churchboard server")

	server := &http.Server{
		Addr:    addr,
		Handler: a.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// handleHealth reports service health.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   isoTime(time.Now()),
	})
}

// parseRecordID parses the {id} path segment; invalid values are a
// transport-level 400.
func parseRecordID(r *http.Request, w http.ResponseWriter) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid record ID")
		return 0, false
	}
	return id, true
}

// parsePageLimit extracts and clamps the page/limit list parameters.
func parsePageLimit(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v >= 1 {
		limit = v
		if limit > 100 {
			limit = 100
		}
	}
	return page, limit
}
