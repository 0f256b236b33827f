package appointment

import (
	"context"
	"time"

	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/domain/schedule"
	"github.com/onechair/booking/internal/dto"
)

// GetDashboard builds the admin day view: the selected day's
// appointments, today/week totals, and the 7-day date picker.
type GetDashboard struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetDashboard(
	repo domain.Repository,
	now func() time.Time,
) *GetDashboard {
	return &GetDashboard{repo: repo, now: now}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	dateStr string,
) (*dto.DashboardView, error) {

	today := schedule.StartOfDay(uc.now())

	// A missing or malformed date falls back to today.
	selected := today
	if dateStr != "" {
		if d, err := time.Parse(schedule.DateLayout, dateStr); err == nil {
			selected = d
		}
	}

	aps, err := uc.repo.ListForPeriod(ctx, selected, selected.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AppointmentRowDTO, 0, len(aps))
	for _, ap := range aps {
		rows = append(rows, dto.AppointmentRowDTO{
			ID:           ap.ID,
			CustomerName: ap.CustomerName,
			Phone:        ap.Phone,
			StartTime:    schedule.SlotKey(ap.StartTime),
			Kind:         ap.Kind,
			Status:       ap.Status,
		})
	}

	todayCount, err := uc.repo.CountForPeriod(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	weekStart := schedule.StartOfWeek(today)
	weekCount, err := uc.repo.CountForPeriod(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &dto.DashboardView{
		Appointments:    rows,
		SelectedDate:    selected.Format(schedule.DateLayout),
		SelectedDisplay: selected.Format("Jan 02"),
		TodayCount:      todayCount,
		WeekCount:       weekCount,
		DateOptions:     schedule.DateOptions(today, schedule.DashboardDays),
	}, nil
}
