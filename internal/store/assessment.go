package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

type Assessment interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Assessment, error)
	Create(ctx context.Context, assessment model.Assessment) (*model.Assessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Assessment, error)
}

type AssessmentStore struct {
	db *gorm.DB
}

// Make sure we conform to Assessment interface
var _ Assessment = (*AssessmentStore)(nil)

func NewAssessmentStore(db *gorm.DB) Assessment {
	return &AssessmentStore{db: db}
}

func (a *AssessmentStore) Get(ctx context.Context, id uuid.UUID) (*model.Assessment, error) {
	var assessment model.Assessment
	result := a.db.WithContext(ctx).First(&assessment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &assessment, nil
}

func (a *AssessmentStore) Create(ctx context.Context, assessment model.Assessment) (*model.Assessment, error) {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	if err := a.db.WithContext(ctx).Create(&assessment).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (a *AssessmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
