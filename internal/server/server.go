// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
	marketapp "github.com/goblinomics/craftprofit/business/market/app"
	profitapp "github.com/goblinomics/craftprofit/business/profit/app"
	"github.com/goblinomics/craftprofit/internal/apperror"
	"github.com/goblinomics/craftprofit/internal/logger"
)

// Server serves the analysis API.
type Server struct {
	analyzer *profitapp.Analyzer
	market   *marketapp.MarketService
	region   string
	logger   logger.LoggerInterface
	httpSrv  *http.Server
}

// New creates a Server listening on port.
func New(port int, region string, analyzer *profitapp.Analyzer, market *marketapp.MarketService, log logger.LoggerInterface) *Server {
	s := &Server{
		analyzer: analyzer,
		market:   market,
		region:   region,
		logger:   log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /v1/history", s.handleHistory)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           otelhttp.NewHandler(mux, "craftprofit-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "api server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

type analyzeRequest struct {
	// Item is an id or a display name; Realm an id or a slug.
	Item        string          `json:"item"`
	Realm       string          `json:"realm"`
	Quantity    int64           `json:"quantity"`
	Professions []string        `json:"professions"`
	Inventory   map[int64]int64 `json:"inventory"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperror.Validation(apperror.CodeInvalidInput, "request body"))
		return
	}
	if req.Item == "" || req.Realm == "" {
		s.writeError(w, r, apperror.Validation(apperror.CodeInvalidInput, "item and realm are required"))
		return
	}

	result, err := s.analyzer.Run(r.Context(), profitapp.RunParams{
		Region:      s.region,
		Realm:       catalog.ParseRealmRef(req.Realm),
		Professions: req.Professions,
		Item:        catalog.ParseItemRef(req.Item),
		Quantity:    req.Quantity,
		Inventory:   req.Inventory,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	realmID, err1 := strconv.ParseInt(r.URL.Query().Get("realm_id"), 10, 64)
	itemID, err2 := strconv.ParseInt(r.URL.Query().Get("item_id"), 10, 64)
	if err1 != nil || err2 != nil {
		s.writeError(w, r, apperror.Validation(apperror.CodeInvalidInput, "realm_id and item_id must be numeric"))
		return
	}

	to := time.Now().UTC()
	from := to.Add(-7 * 24 * time.Hour)
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			s.writeError(w, r, apperror.Validation(apperror.CodeInvalidInput, "from must be RFC3339"))
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			s.writeError(w, r, apperror.Validation(apperror.CodeInvalidInput, "to must be RFC3339"))
			return
		}
		to = t
	}

	obs, err := s.market.History(r.Context(), realmID, itemID, from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"realm_id":     realmID,
		"item_id":      itemID,
		"observations": obs,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(context.Background(), "response encoding failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.Wrap(err, apperror.CodeInternalError, "")
	s.logger.Warn(r.Context(), "request failed",
		"path", r.URL.Path,
		"code", appErr.Code,
		"error", err,
	)
	s.writeJSON(w, appErr.StatusCode, appErr.ToResponse())
}
