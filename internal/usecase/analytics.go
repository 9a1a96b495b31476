package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const (
	// MaxDailyBuckets caps the time series to the most recent days.
	MaxDailyBuckets = 30

	dayLayout = "2006-01-02"
)

type AnalyticsInput struct {
	Start *time.Time
	End   *time.Time
}

// ParseAnalyticsRange parses optional ISO-8601 bounds. An end date given
// without a time of day is moved to 23:59:59.999 of that day so the final
// day is included.
func ParseAnalyticsRange(startDate, endDate string) (AnalyticsInput, error) {
	var in AnalyticsInput

	if s := strings.TrimSpace(startDate); s != "" {
		t, _, err := parseISODate(s)
		if err != nil {
			return in, invalidDate("startDate")
		}
		in.Start = &t
	}

	if s := strings.TrimSpace(endDate); s != "" {
		t, dateOnly, err := parseISODate(s)
		if err != nil {
			return in, invalidDate("endDate")
		}
		if dateOnly || isMidnight(t) {
			t = endOfDay(t)
		}
		in.End = &t
	}

	if in.Start != nil && in.End != nil && in.End.Before(*in.Start) {
		return in, &DomainError{
			Code:    CodeInvalidDate,
			Message: "endDate must not be before startDate",
			Fields:  []ValidationError{{Field: "endDate", Message: "is before startDate"}},
		}
	}
	return in, nil
}

func parseISODate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func invalidDate(field string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidDate,
		Message: field + " must be an ISO-8601 date",
		Fields:  []ValidationError{{Field: field, Message: "is invalid"}},
	}
}

type ComputeAnalyticsUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Logger *zap.Logger
}

func NewComputeAnalyticsUseCase(repo entity.LeadRepositoryInterface, logger *zap.Logger) *ComputeAnalyticsUseCase {
	return &ComputeAnalyticsUseCase{Repo: repo, Logger: logger}
}

// Execute reads the lead store and derives the report. Any store error
// fails the whole call.
func (uc *ComputeAnalyticsUseCase) Execute(ctx context.Context, input AnalyticsInput) (*entity.AnalyticsReport, error) {
	total, err := uc.Repo.Count(ctx)
	if err != nil {
		return nil, uc.aggregationError(err)
	}

	leads, err := uc.Repo.FindByDateRange(ctx, input.Start, input.End)
	if err != nil {
		return nil, uc.aggregationError(err)
	}

	return BuildAnalyticsReport(total, leads), nil
}

func (uc *ComputeAnalyticsUseCase) aggregationError(err error) error {
	uc.Logger.Error("analytics aggregation failed", zap.Error(err))
	return &TechnicalError{Code: CodeAggregationError, Message: "failed to compute analytics", Err: err}
}

// BuildAnalyticsReport aggregates leads that are already filtered to the
// requested period. total is the all-time count.
func BuildAnalyticsReport(total int64, periodLeads []entity.Lead) *entity.AnalyticsReport {
	report := &entity.AnalyticsReport{
		TotalLeads:   total,
		PeriodLeads:  int64(len(periodLeads)),
		LeadsByClass: []entity.ClassCount{},
		DailyStats:   []entity.DailyStat{},
	}

	byClass := make(map[string]int64)
	byDay := make(map[string]*entity.DailyStat)
	var admitted int64

	for _, l := range periodLeads {
		isAdmitted := l.Status == entity.LeadStatusAdmitted
		if isAdmitted {
			admitted++
		}

		byClass[l.Class]++

		if l.Date.IsZero() {
			continue
		}
		key := l.Date.UTC().Format(dayLayout)
		day, ok := byDay[key]
		if !ok {
			day = &entity.DailyStat{Date: key}
			byDay[key] = day
		}
		day.Count++
		if isAdmitted {
			day.Admitted++
		}
	}

	report.ConversionStats = entity.ConversionStats{
		Total:    report.PeriodLeads,
		Admitted: admitted,
		Rate:     conversionRate(admitted, report.PeriodLeads),
	}

	for class, n := range byClass {
		report.LeadsByClass = append(report.LeadsByClass, entity.ClassCount{Class: class, Count: n})
	}
	sort.Slice(report.LeadsByClass, func(i, j int) bool {
		a, b := report.LeadsByClass[i], report.LeadsByClass[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Class < b.Class
	})

	for _, day := range byDay {
		report.DailyStats = append(report.DailyStats, *day)
	}
	sort.Slice(report.DailyStats, func(i, j int) bool {
		return report.DailyStats[i].Date < report.DailyStats[j].Date
	})
	if n := len(report.DailyStats); n > MaxDailyBuckets {
		report.DailyStats = report.DailyStats[n-MaxDailyBuckets:]
	}

	return report
}

func conversionRate(admitted, total int64) int64 {
	if total == 0 {
		return 0
	}
	return int64(math.Round(float64(admitted) / float64(total) * 100))
}
