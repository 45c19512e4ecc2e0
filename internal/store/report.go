package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

type Report interface {
	GetByAssessment(ctx context.Context, assessmentID uuid.UUID) (*model.Report, error)
	Create(ctx context.Context, report model.Report) (*model.Report, error)
}

type ReportStore struct {
	db *gorm.DB
}

// Make sure we conform to Report interface
var _ Report = (*ReportStore)(nil)

func NewReportStore(db *gorm.DB) Report {
	return &ReportStore{db: db}
}

func (r *ReportStore) GetByAssessment(ctx context.Context, assessmentID uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.db.WithContext(ctx).First(&report, "assessment_id = ?", assessmentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &report, nil
}

func (r *ReportStore) Create(ctx context.Context, report model.Report) (*model.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	result := r.db.WithContext(ctx).Create(&report)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &report, nil
}
