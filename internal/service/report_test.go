package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/observability"
	"github.com/diyakohli02/rwh-assessment-service/internal/store"
)

func newTestReportService(t *testing.T) (*ReportService, *AssessmentService, store.Store) {
	t.Helper()
	s := testStore(t)
	engine := domain.NewEngine()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))

	resolver := &stubResolver{estimate: domain.RainfallEstimate{AnnualMm: 850, Source: domain.RainfallSourceFallback}}
	assess := NewAssessmentService(s, resolver, engine, nil, metrics, logger)
	reports := NewReportService(s, engine, clock, metrics, logger)
	return reports, assess, s
}

func TestBuild_DerivesStructureAndPaybacks(t *testing.T) {
	reports, assess, _ := newTestReportService(t)
	ctx := context.Background()

	in := validSubmitInput()
	in.Site.DailyUsageLiters = 500
	submitted, err := assess.Submit(ctx, in)
	require.NoError(t, err)

	data, err := reports.Build(ctx, submitted.AssessmentID, "en")
	require.NoError(t, err)

	assert.Equal(t, "15/08/2026", data.Date)
	assert.Equal(t, "en", data.Lang)
	assert.Equal(t, "Asha Rao", data.User.FullName)

	// Storage tank sized from the stored daily usage: 500 L x 60 days.
	assert.Equal(t, "Capacity: 30.0 m³ (Approx 30,000 Liters)", data.StructureDetail.DimensionOrCapacity)

	require.Len(t, data.CostRows, 3)
	assert.Equal(t, 3.3, data.CostRows[0].PaybackYears)
	assert.Equal(t, 8.3, data.CostRows[1].PaybackYears)
	assert.Equal(t, 16.7, data.CostRows[2].PaybackYears)
}

func TestBuild_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	reports, assess, _ := newTestReportService(t)
	ctx := context.Background()

	submitted, err := assess.Submit(ctx, validSubmitInput())
	require.NoError(t, err)

	data, err := reports.Build(ctx, submitted.AssessmentID, "fr")
	require.NoError(t, err)
	assert.Equal(t, "en", data.Lang)
	assert.Equal(t, "Executive Summary", data.T.SectionExecutiveSummary)
}

func TestBuild_NotFound(t *testing.T) {
	reports, _, _ := newTestReportService(t)

	_, err := reports.Build(context.Background(), uuid.New(), "en")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRender(t *testing.T) {
	reports, assess, _ := newTestReportService(t)
	ctx := context.Background()

	submitted, err := assess.Submit(ctx, validSubmitInput())
	require.NoError(t, err)

	data, err := reports.Build(ctx, submitted.AssessmentID, "hi")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, reports.Render(&buf, data))

	html := buf.String()
	assert.Contains(t, html, "जल संरक्षण")
	assert.Contains(t, html, "Storage Tank (Cistern)")
	assert.Contains(t, html, "76,500 Liters")
	assert.Contains(t, html, "(regional default)")
}
