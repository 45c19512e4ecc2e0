// Package store persists users, assessments, and reports behind narrow
// per-entity interfaces so services can be tested against fakes or an
// in-memory SQLite database.
package store

import (
	"context"

	"gorm.io/gorm"
)

type Store interface {
	User() User
	Assessment() Assessment
	Report() Report
	Ping(ctx context.Context) error
	Close() error
}

type DataStore struct {
	db         *gorm.DB
	user       User
	assessment Assessment
	report     Report
}

// NewStore wraps an open gorm handle with the per-entity stores.
func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:         db,
		user:       NewUserStore(db),
		assessment: NewAssessmentStore(db),
		report:     NewReportStore(db),
	}
}

func (s *DataStore) User() User {
	return s.user
}

func (s *DataStore) Assessment() Assessment {
	return s.assessment
}

func (s *DataStore) Report() Report {
	return s.report
}

// Ping verifies the database connection, used by the readiness probe.
func (s *DataStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
