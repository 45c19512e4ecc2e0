package service

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/i18n"
	"github.com/diyakohli02/rwh-assessment-service/internal/observability"
	"github.com/diyakohli02/rwh-assessment-service/internal/store"
	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

// CostRow is one line of the rendered pricing table. The standard tier reuses
// the payback figure stored with the report; the other tiers recompute it at
// render time from the current finance assumptions.
type CostRow struct {
	Label        string
	Cost         int64
	Structure    string
	PaybackYears float64
}

// ReportData is everything the report template needs for one assessment.
type ReportData struct {
	Date string
	Lang string
	T    i18n.ReportStrings

	User       *model.User
	Assessment *model.Assessment
	Result     domain.FeasibilityResult

	StructureDetail domain.StructureDetail
	CostRows        []CostRow
}

// ReportService assembles and renders report documents from stored results.
type ReportService struct {
	store   store.Store
	engine  *domain.Engine
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *slog.Logger
	tmpl    *template.Template
}

// NewReportService parses the report template once at startup.
func NewReportService(s store.Store, engine *domain.Engine, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *ReportService {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"commas": func(n int64) string { return groupDigits(n) },
	}).Parse(reportTemplate))
	return &ReportService{
		store:   s,
		engine:  engine,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
		tmpl:    tmpl,
	}
}

// Build loads the stored assessment and report and derives the render-time
// pieces: structure dimensions from the stored recommendation and daily usage,
// and the per-tier payback column. Returns store.ErrRecordNotFound when the
// assessment or its report does not exist.
func (r *ReportService) Build(ctx context.Context, assessmentID uuid.UUID, lang string) (*ReportData, error) {
	lang = i18n.Normalize(lang)

	assessment, err := r.store.Assessment().Get(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	report, err := r.store.Report().GetByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	user, err := r.store.User().Get(ctx, assessment.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	result := report.Result()

	return &ReportData{
		Date: r.clock.Now().Format("02/01/2006"),
		Lang: lang,
		T:    i18n.Strings(lang),

		User:       user,
		Assessment: assessment,
		Result:     result,

		StructureDetail: r.engine.StructureDetail(result.RecommendedStructure, assessment.DailyUsageLiters),
		CostRows: []CostRow{
			{
				Label:        result.CostTiers.Basic.Label,
				Cost:         result.CostTiers.Basic.Cost,
				Structure:    result.CostTiers.Basic.Structure,
				PaybackYears: r.engine.PaybackYears(result.CostTiers.Basic.Cost),
			},
			{
				Label:        result.CostTiers.Standard.Label,
				Cost:         result.CostTiers.Standard.Cost,
				Structure:    result.CostTiers.Standard.Structure,
				PaybackYears: result.EstimatedPaybackYears,
			},
			{
				Label:        result.CostTiers.Premium.Label,
				Cost:         result.CostTiers.Premium.Cost,
				Structure:    result.CostTiers.Premium.Structure,
				PaybackYears: r.engine.PaybackYears(result.CostTiers.Premium.Cost),
			},
		},
	}, nil
}

// Render writes the HTML report document.
func (r *ReportService) Render(w io.Writer, data *ReportData) error {
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	r.metrics.ReportsRendered.WithLabelValues(data.Lang).Inc()
	return nil
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
