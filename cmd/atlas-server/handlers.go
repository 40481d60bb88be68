package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/GannaSameh/atlas/pkg/atlas"
	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
	"github.com/GannaSameh/atlas/pkg/atlas/source"
)

// maxBodyBytes caps the size of an analyze request body.
const maxBodyBytes = 10 << 20

// analyzeRequest carries either inline text or a page URL. An empty text
// is valid and yields an empty report.
type analyzeRequest struct {
	Text *string `json:"text"`
	URL  *string `json:"url"`
}

type configResponse struct {
	Keywords      []string `json:"keywords"`
	KeywordVocab  []string `json:"keyword_vocab"`
	LocationVocab []string `json:"location_vocab"`
	TopLocations  int      `json:"top_locations"`
	HistogramBins int      `json:"histogram_bins"`
	TopWords      int      `json:"top_words"`
	TopTags       int      `json:"top_tags"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type atlasHandlers struct {
	engine  *atlas.Atlas
	fetcher *source.Fetcher
	logger  log.FieldLogger
}

func (h *atlasHandlers) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if (req.Text == nil) == (req.URL == nil) {
		writeError(w, http.StatusBadRequest, `exactly one of "text" or "url" is required`)
		return
	}

	if req.Text != nil {
		rep, err := h.engine.Analyze(*req.Text)
		if err != nil {
			h.fail(w, err)
			return
		}
		rep.Source = "inline"
		writeJSON(w, http.StatusOK, rep)
		return
	}

	url := strings.TrimSpace(*req.URL)
	if url == "" {
		writeError(w, http.StatusBadRequest, `"url" must not be empty`)
		return
	}
	doc, err := h.fetcher.Fetch(r.Context(), url)
	if err != nil {
		h.fail(w, err)
		return
	}
	rep, err := h.engine.AnalyzeDocument(doc)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *atlasHandlers) config(w http.ResponseWriter, r *http.Request) {
	opts := h.engine.Options()
	writeJSON(w, http.StatusOK, configResponse{
		Keywords:      opts.Keywords,
		KeywordVocab:  opts.KeywordVocab,
		LocationVocab: opts.LocationVocab,
		TopLocations:  opts.TopLocations,
		HistogramBins: opts.HistogramBins,
		TopWords:      opts.TopWords,
		TopTags:       opts.TopTags,
	})
}

func (h *atlasHandlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *atlasHandlers) goodToGo(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// fail maps pipeline errors to HTTP status codes.
func (h *atlasHandlers) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, internalerr.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, internalerr.ErrNotFound):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, internalerr.ErrFetch):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.Errorf("analyze failed: %v", err)
	} else {
		h.logger.Warnf("analyze rejected: %v", err)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func router(h *atlasHandlers, registry metrics.Registry, origins []string) http.Handler {
	serviceRouter := mux.NewRouter()
	serviceRouter.HandleFunc("/__health", h.health).Methods("GET")
	serviceRouter.HandleFunc("/__gtg", h.goodToGo).Methods("GET")
	serviceRouter.HandleFunc("/api/analyze", h.analyze).Methods("POST")
	serviceRouter.HandleFunc("/api/config", h.config).Methods("GET")

	var handler http.Handler = serviceRouter
	handler = requestLogging(h.logger, handler)
	handler = requestMetrics(registry, handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)

	return handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogging(logger log.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}

// requestMetrics times every request and counts responses per status class.
func requestMetrics(registry metrics.Registry, next http.Handler) http.Handler {
	timer := metrics.GetOrRegisterTimer("http.requests", registry)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		timer.Time(func() { next.ServeHTTP(rec, r) })
		metrics.GetOrRegisterCounter(statusClass(rec.status), registry).Inc(1)
	})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "http.responses.5xx"
	case status >= 400:
		return "http.responses.4xx"
	default:
		return "http.responses.2xx"
	}
}
