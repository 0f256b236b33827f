package appointment

import (
	"context"
	"time"

	"github.com/onechair/booking/internal/audit"
	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/domain/schedule"
	"github.com/onechair/booking/internal/httperr"
	"github.com/onechair/booking/internal/models"
	"github.com/onechair/booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Name  string
	Phone string
	Time  string // "YYYY-MM-DD HH:MM", naive wall-clock
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

// NewBook builds the booking engine. now must return naive wall-clock
// time in the shop's zone (timezone.NaiveNowIn in production, a fixed
// value in tests).
func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	phone := validators.CleanPhone(in.Phone)

	start, err := time.Parse(schedule.SlotKeyLayout, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalid)
	}

	// Past is checked before conflict: a stale request for an occupied
	// slot reports "past", not "conflict". Booking exactly "now" is
	// allowed.
	if start.Before(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodePast)
	}

	existing, err := uc.repo.FindByStartTime(ctx, start)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeConflict)
	}

	ap := &models.Appointment{
		CustomerName: in.Name,
		Phone:        phone,
		StartTime:    start,
		Kind:         string(domain.KindCustomer),
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"slot": in.Time},
	})

	return ap, nil
}
