package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
	"github.com/dayanaadylkhanova/sales-stats/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	log     *zap.Logger
	addr    string
	sales   service.SalesPort
	maxDays int
	httpSrv *http.Server
}

func NewServer(log *zap.Logger, addr string, sales service.SalesPort, maxDays int) *Server {
	s := &Server{log: log, addr: addr, sales: sales, maxDays: maxDays}
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Routes()}
	return s
}

// Routes builds the router. Exposed for httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Post("/api/sales", s.handleCreateSale())
	r.Get("/api/sales", s.handleStatistics())
	return r
}

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleCreateSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req entity.CreateSaleRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: "invalid JSON"})
			return
		}

		sale, err := s.sales.CreateSale(r.Context(), req)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sale)
	}
}

func (s *Server) handleStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		start, err := parseISO(q.Get("start"))
		if err != nil {
			writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: "invalid start"})
			return
		}
		var end *time.Time
		if raw := q.Get("end"); raw != "" {
			t, err := parseISO(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: "invalid end"})
				return
			}
			end = &t
		}

		if s.maxDays > 0 {
			to := time.Now()
			if end != nil {
				to = *end
			}
			if service.InclusiveDays(start, to) > int64(s.maxDays) {
				writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: "range too large"})
				return
			}
		}

		stats, err := s.sales.SellerStatistics(r.Context(), start, end)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, entity.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, entity.ErrorResponse{Error: err.Error()})
	default:
		s.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, entity.ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body entity.ErrorResponse) {
	writeJSON(w, status, body)
}

func parseISO(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New("bad time")
}
