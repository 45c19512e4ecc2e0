// Package service implements the application flows on top of the domain
// engine, the rainfall resolver, and the store: assessment submission,
// user registration, and report preparation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/observability"
	"github.com/diyakohli02/rwh-assessment-service/internal/store"
	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

// ErrInvalidPhone rejects phone numbers that are not 10-digit Indian mobile
// numbers starting with 6-9.
var ErrInvalidPhone = errors.New("invalid phone number")

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// RainfallResolver resolves a location to an annual rainfall estimate.
// Implementations never fail; they degrade to a tagged fallback estimate.
type RainfallResolver interface {
	Resolve(ctx context.Context, location string) domain.RainfallEstimate
}

// EventPublisher publishes completed assessments to an event stream.
type EventPublisher interface {
	PublishAssessment(ctx context.Context, event domain.AssessmentEvent) error
}

// SubmitInput is one validated assessment form.
type SubmitInput struct {
	Phone    string
	FullName string

	Site domain.SiteInput
}

// SubmitResult identifies the stored assessment and its computed outcome.
type SubmitResult struct {
	AssessmentID uuid.UUID
	ReportID     uuid.UUID
	Result       domain.FeasibilityResult
}

// AssessmentService runs the submission flow end to end.
type AssessmentService struct {
	store     store.Store
	resolver  RainfallResolver
	engine    *domain.Engine
	publisher EventPublisher
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewAssessmentService wires the submission flow. publisher may be nil when
// event streaming is disabled.
func NewAssessmentService(s store.Store, resolver RainfallResolver, engine *domain.Engine, publisher EventPublisher, metrics *observability.Metrics, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		store:     s,
		resolver:  resolver,
		engine:    engine,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Submit validates the phone number, finds or creates the user, resolves
// rainfall for the location, runs the feasibility engine, and persists the
// assessment and its report. Event publishing is best effort: a broker
// failure is logged and counted but never fails the submission.
func (s *AssessmentService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if !phonePattern.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}

	user, err := s.findOrCreateUser(ctx, in.Phone, in.FullName)
	if err != nil {
		s.metrics.AssessmentErrors.Inc()
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	start := time.Now()
	rainfall := s.resolver.Resolve(ctx, in.Site.Location)
	s.metrics.RainfallLookupDuration.Observe(time.Since(start).Seconds())

	result := s.engine.Assess(in.Site, rainfall)

	assessment, err := s.store.Assessment().Create(ctx, model.Assessment{
		UserID:       user.ID,
		Location:     in.Site.Location,
		RoofAreaSqM:  in.Site.RoofAreaSqM,
		RoofType:     string(in.Site.RoofType),
		ExistingWell: string(in.Site.ExistingWell),
		Purpose:      string(in.Site.Purpose),

		BuildingType:           in.Site.BuildingType,
		Occupants:              in.Site.Occupants,
		OpenSpaceSqM:           in.Site.OpenSpaceSqM,
		SoilType:               in.Site.SoilType,
		DailyUsageLiters:       in.Site.DailyUsageLiters,
		GroundwaterDepthMeters: in.Site.GroundwaterDepthMeters,
		BudgetRange:            in.Site.BudgetRange,
	})
	if err != nil {
		s.metrics.AssessmentErrors.Inc()
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	report, err := s.store.Report().Create(ctx, model.NewReport(assessment.ID, result))
	if err != nil {
		s.metrics.AssessmentErrors.Inc()
		return nil, fmt.Errorf("store report: %w", err)
	}

	s.metrics.AssessmentsTotal.Inc()
	s.logger.Info("assessment completed",
		"assessment_id", assessment.ID,
		"user_id", user.ID,
		"tier", result.FeasibilityTier,
		"structure", result.RecommendedStructure,
		"rainfall_source", result.RainfallSource)

	s.publishEvent(ctx, assessment.ID, user.ID, in.Site.Location, result)

	return &SubmitResult{
		AssessmentID: assessment.ID,
		ReportID:     report.ID,
		Result:       result,
	}, nil
}

// Register finds or creates a user by phone number alone. Returns the user
// and whether an account was created by this call.
func (s *AssessmentService) Register(ctx context.Context, phone string) (*model.User, bool, error) {
	if !phonePattern.MatchString(phone) {
		return nil, false, ErrInvalidPhone
	}

	user, err := s.store.User().GetByPhone(ctx, phone)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("lookup user: %w", err)
	}

	user, err = s.store.User().Create(ctx, model.User{PhoneNumber: phone, FullName: "Assessment User"})
	if err != nil {
		// Lost a create race: the other writer's row is the user.
		if errors.Is(err, store.ErrDuplicateKey) {
			user, err = s.store.User().GetByPhone(ctx, phone)
			return user, false, err
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	s.metrics.UsersRegistered.Inc()
	return user, true, nil
}

// ListUsers returns all registered users, newest first.
func (s *AssessmentService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.User().List(ctx)
}

func (s *AssessmentService) findOrCreateUser(ctx context.Context, phone, fullName string) (*model.User, error) {
	user, err := s.store.User().GetByPhone(ctx, phone)
	if err == nil {
		if fullName != "" && user.FullName != fullName {
			if err := s.store.User().UpdateFullName(ctx, user.ID, fullName); err != nil {
				return nil, err
			}
			user.FullName = fullName
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	if fullName == "" {
		fullName = "New User"
	}
	user, err = s.store.User().Create(ctx, model.User{PhoneNumber: phone, FullName: fullName})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return s.store.User().GetByPhone(ctx, phone)
		}
		return nil, err
	}
	s.metrics.UsersRegistered.Inc()
	return user, nil
}

func (s *AssessmentService) publishEvent(ctx context.Context, assessmentID, userID uuid.UUID, location string, result domain.FeasibilityResult) {
	if s.publisher == nil {
		return
	}
	event := domain.AssessmentEvent{
		AssessmentID:           assessmentID.String(),
		UserID:                 userID.String(),
		Location:               location,
		FeasibilityTier:        result.FeasibilityTier,
		RecommendedStructure:   result.RecommendedStructure,
		HarvestableWaterLiters: result.HarvestableWaterLiters,
		RainfallSource:         result.RainfallSource,
		CompletedAt:            time.Now().UTC(),
	}
	if err := s.publisher.PublishAssessment(ctx, event); err != nil {
		s.metrics.EventPublishErrors.Inc()
		s.logger.Error("failed to publish assessment event", "assessment_id", assessmentID, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}
