package appointment

import (
	"context"
	"time"

	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/domain/schedule"
	"github.com/onechair/booking/internal/dto"
)

// GetSchedule builds the public booking grid: 5 days, the static slot
// labels, and which slots are already taken.
type GetSchedule struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetSchedule(
	repo domain.Repository,
	now func() time.Time,
) *GetSchedule {
	return &GetSchedule{repo: repo, now: now}
}

func (uc *GetSchedule) Execute(ctx context.Context) (*dto.ScheduleView, error) {

	now := uc.now()
	today := schedule.StartOfDay(now)

	// One day past the rendered grid, so a slot booked right at the
	// boundary never leaks into a stale view.
	end := today.AddDate(0, 0, schedule.PublicDays+1)

	aps, err := uc.repo.ListForPeriod(ctx, today, end)
	if err != nil {
		return nil, err
	}

	booked := make([]string, 0, len(aps))
	for _, ap := range aps {
		booked = append(booked, schedule.SlotKey(ap.StartTime))
	}

	return &dto.ScheduleView{
		Days:        schedule.Days(today, schedule.PublicDays),
		TimeSlots:   schedule.TimeSlots(),
		BookedSlots: booked,
		CurrentTime: schedule.SlotKey(now),
	}, nil
}
