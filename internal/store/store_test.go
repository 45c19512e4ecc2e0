package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

func testStore(t *testing.T) Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	s := NewStore(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUserStore_CreateAndGetByPhone(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210", FullName: "Asha Rao"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := s.User().GetByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Asha Rao", got.FullName)
}

func TestUserStore_GetByPhone_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.User().GetByPhone(context.Background(), "9000000000")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserStore_DuplicatePhone(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210"})
	require.NoError(t, err)

	_, err = s.User().Create(ctx, model.User{PhoneNumber: "9876543210"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserStore_UpdateFullName(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210", FullName: "Assessment User"})
	require.NoError(t, err)

	require.NoError(t, s.User().UpdateFullName(ctx, created.ID, "Asha Rao"))

	got, err := s.User().GetByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)

	assert.ErrorIs(t, s.User().UpdateFullName(ctx, uuid.New(), "x"), ErrRecordNotFound)
}

func TestAssessmentStore_CreateAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	user, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210"})
	require.NoError(t, err)

	created, err := s.Assessment().Create(ctx, model.Assessment{
		UserID:       user.ID,
		Location:     "Pune",
		RoofAreaSqM:  120,
		RoofType:     "rcc",
		ExistingWell: "borewell",
		Purpose:      "recharge",
		SoilType:     "Laterite",
	})
	require.NoError(t, err)

	got, err := s.Assessment().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pune", got.Location)
	assert.Equal(t, 120.0, got.RoofAreaSqM)

	in := got.SiteInput()
	assert.Equal(t, domain.RoofRCC, in.RoofType)
	assert.Equal(t, domain.PurposeRecharge, in.Purpose)
}

func TestAssessmentStore_Get_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Assessment().Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAssessmentStore_ListByUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	user, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210"})
	require.NoError(t, err)

	for _, loc := range []string{"Pune", "Nagpur"} {
		_, err := s.Assessment().Create(ctx, model.Assessment{
			UserID: user.ID, Location: loc, RoofAreaSqM: 50, RoofType: "tile", ExistingWell: "none", Purpose: "storage",
		})
		require.NoError(t, err)
	}

	list, err := s.Assessment().ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReportStore_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	user, err := s.User().Create(ctx, model.User{PhoneNumber: "9876543210"})
	require.NoError(t, err)

	assessment, err := s.Assessment().Create(ctx, model.Assessment{
		UserID: user.ID, Location: "Pune", RoofAreaSqM: 100, RoofType: "rcc", ExistingWell: "none", Purpose: "storage",
	})
	require.NoError(t, err)

	engine := domain.NewEngine()
	result := engine.Assess(assessment.SiteInput(), engine.DefaultRainfall())

	_, err = s.Report().Create(ctx, model.NewReport(assessment.ID, result))
	require.NoError(t, err)

	stored, err := s.Report().GetByAssessment(ctx, assessment.ID)
	require.NoError(t, err)

	// JSON columns survive the round trip intact.
	assert.Equal(t, result, stored.Result())
}

func TestReportStore_GetByAssessment_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Report().GetByAssessment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
