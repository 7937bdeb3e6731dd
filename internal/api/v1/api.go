// Package v1 implements the console's native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avdex/avdex/internal/filter"
	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/lookup"
	"github.com/avdex/avdex/internal/search"
)

// Config holds API server configuration.
type Config struct {
	// AuthSecret enables bearer-token validation when non-empty.
	AuthSecret string
}

// Server is the v1 API server.
type Server struct {
	gw      gateway.Gateway
	session *search.Session
	fetcher *search.Fetcher
	lookups *lookup.Loader
	log     *slog.Logger
	cfg     Config
}

// New creates a new v1 API server.
func New(gw gateway.Gateway, session *search.Session, fetcher *search.Fetcher, lookups *lookup.Loader, log *slog.Logger, cfg Config) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		gw:      gw,
		session: session,
		fetcher: fetcher,
		lookups: lookups,
		log:     log.With("component", "api"),
		cfg:     cfg,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	auth := s.requireAuth

	// Search
	mux.HandleFunc("POST /api/v1/search", auth(s.search))

	// Details
	mux.HandleFunc("GET /api/v1/videos/{id}", auth(s.getVideo))
	mux.HandleFunc("GET /api/v1/actresses/{id}", auth(s.getActress))

	// Lookups
	mux.HandleFunc("GET /api/v1/lookups/{kind}", auth(s.listLookup))
	mux.HandleFunc("POST /api/v1/lookups/{kind}/refresh", auth(s.refreshLookup))

	// Writes
	mux.HandleFunc("POST /api/v1/videos", auth(s.addVideo))
	mux.HandleFunc("PUT /api/v1/videos/{id}", auth(s.updateVideo))
	mux.HandleFunc("POST /api/v1/actresses", auth(s.addActress))
	mux.HandleFunc("PUT /api/v1/actresses/{id}", auth(s.updateActress))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeStoreError maps gateway sentinel errors to HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, gateway.ErrDuplicate):
		writeError(w, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, gateway.ErrConstraint):
		writeError(w, http.StatusBadRequest, "CONSTRAINT", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
	}
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if req.Criteria != nil {
		var applyErr error
		s.session.Criteria(func(c *filter.Criteria) {
			applyErr = req.Criteria.apply(c)
		})
		if applyErr != nil {
			writeError(w, http.StatusBadRequest, "INVALID_CRITERIA", applyErr.Error())
			return
		}
	}

	snap := s.session.Search(r.Context(), req.Query)
	if snap.Err != "" {
		writeError(w, http.StatusBadGateway, "SEARCH_FAILED", snap.Err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) getVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	detail, err := s.fetcher.Video(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) getActress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	a, err := s.fetcher.Actress(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) listLookup(w http.ResponseWriter, r *http.Request) {
	rel, err := gateway.ParseRelation(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}

	opts, err := s.lookups.Options(r.Context(), rel)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

func (s *Server) refreshLookup(w http.ResponseWriter, r *http.Request) {
	rel, err := gateway.ParseRelation(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}

	opts, err := s.lookups.Refresh(r.Context(), rel)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

func (s *Server) addVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	v := req.toVideo(0)
	if err := s.gw.InsertVideo(r.Context(), v); err != nil {
		writeStoreError(w, err)
		return
	}
	if err := s.replaceVideoLinks(r, v.ID, &req); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) updateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	v := req.toVideo(id)
	if err := s.gw.UpdateVideo(r.Context(), v); err != nil {
		writeStoreError(w, err)
		return
	}
	if err := s.replaceVideoLinks(r, id, &req); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// replaceVideoLinks swaps the video's join-table rows for every set the
// request carries. Absent sets are left untouched.
func (s *Server) replaceVideoLinks(r *http.Request, videoID int64, req *videoRequest) error {
	ctx := r.Context()
	if req.LinkIDs != nil {
		sets := map[gateway.Relation][]int64{
			gateway.RelActressType: req.LinkIDs.ActressTypeIDs,
			gateway.RelCostume:     req.LinkIDs.CostumeIDs,
			gateway.RelScene:       req.LinkIDs.SceneIDs,
			gateway.RelTag:         req.LinkIDs.TagIDs,
		}
		for _, rel := range gateway.LinkRelations {
			if err := s.gw.ReplaceLinks(ctx, rel, videoID, sets[rel]); err != nil {
				return err
			}
		}
	}
	if req.CastIDs != nil {
		if err := s.gw.ReplaceLinks(ctx, gateway.RelActress, videoID, req.CastIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) addActress(w http.ResponseWriter, r *http.Request) {
	var req actressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	a := req.toActress(0)
	if err := s.gw.InsertActress(r.Context(), a); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) updateActress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req actressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	a := req.toActress(id)
	if err := s.gw.UpdateActress(r.Context(), a); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
