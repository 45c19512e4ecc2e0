// Package http exposes the assessment API plus health, readiness, and
// metrics endpoints.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/service"
	"github.com/diyakohli02/rwh-assessment-service/internal/store"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ReadinessFunc adapts a plain function to ReadinessChecker.
type ReadinessFunc func(ctx context.Context) error

func (f ReadinessFunc) CheckReadiness(ctx context.Context) error { return f(ctx) }

// Server exposes the assessment API over HTTP.
type Server struct {
	httpServer  *http.Server
	assessments *service.AssessmentService
	reports     *service.ReportService
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewServer creates the HTTP server and mounts all routes.
func NewServer(addr string, assessments *service.AssessmentService, reports *service.ReportService, ready ReadinessChecker, logger *slog.Logger) *Server {
	s := &Server{
		assessments: assessments,
		reports:     reports,
		validate:    validator.New(),
		logger:      logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/assessment", s.handleSubmitAssessment)
		r.Get("/users", s.handleListUsers)
		r.Get("/report/{assessmentID}", s.handleReport)
	})

	router.Get("/healthz", s.handleHealth)
	router.Get("/readyz", handleReady(ready))
	router.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// assessmentForm is the submitted site questionnaire. Field names mirror the
// public form, not the storage schema.
type assessmentForm struct {
	Phone    string `json:"phone" validate:"required"`
	FullName string `json:"fullName"`

	Location     string  `json:"location" validate:"required"`
	RoofArea     float64 `json:"roofArea" validate:"required,gt=0"`
	RoofType     string  `json:"roofType" validate:"required,oneof=rcc metal tile asbestos other"`
	ExistingWell string  `json:"existingWell" validate:"required,oneof=none borewell openwell both"`
	Purpose      string  `json:"purpose" validate:"required,oneof=storage recharge both consultation"`

	BuildingType     string  `json:"buildingType"`
	Occupants        int     `json:"occupants" validate:"gte=0"`
	OpenSpace        float64 `json:"openSpace" validate:"gte=0"`
	SoilType         string  `json:"soilType"`
	WaterUsage       float64 `json:"waterUsage" validate:"gte=0"`
	GroundwaterDepth float64 `json:"groundwaterDepth" validate:"gte=0"`
	BudgetRange      string  `json:"budget"`
}

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var form assessmentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.assessments.Submit(r.Context(), service.SubmitInput{
		Phone:    form.Phone,
		FullName: form.FullName,
		Site: domain.SiteInput{
			Location:     form.Location,
			RoofAreaSqM:  form.RoofArea,
			RoofType:     domain.RoofType(form.RoofType),
			ExistingWell: domain.WellType(form.ExistingWell),
			Purpose:      domain.Purpose(form.Purpose),

			DailyUsageLiters:       form.WaterUsage,
			GroundwaterDepthMeters: form.GroundwaterDepth,
			SoilType:               form.SoilType,

			BuildingType: form.BuildingType,
			Occupants:    form.Occupants,
			OpenSpaceSqM: form.OpenSpace,
			BudgetRange:  form.BudgetRange,
		},
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid phone number"})
			return
		}
		s.logger.Error("assessment submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error processing form submission"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Assessment submitted successfully!",
		"assessmentId": result.AssessmentID,
		"reportId":     result.ReportID,
		"result":       result.Result,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, created, err := s.assessments.Register(r.Context(), body.Phone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid phone number"})
			return
		}
		s.logger.Error("registration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "registration failed"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"id":       user.ID,
		"phone":    user.PhoneNumber,
		"fullName": user.FullName,
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.assessments.ListUsers(r.Context())
	if err != nil {
		s.logger.Error("listing users failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error fetching user data"})
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := uuid.Parse(chi.URLParam(r, "assessmentID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid assessment id"})
		return
	}

	data, err := s.reports.Build(r.Context(), assessmentID, r.URL.Query().Get("lang"))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "assessment or report not found"})
			return
		}
		s.logger.Error("report build failed", "assessment_id", assessmentID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error generating report"})
		return
	}

	// Render to a buffer first so a template failure can still produce an
	// error response instead of a half-written document.
	var buf bytes.Buffer
	if err := s.reports.Render(&buf, data); err != nil {
		s.logger.Error("report render failed", "assessment_id", assessmentID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error generating report"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck // client disconnects are not actionable
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
