package appointment

import (
	"context"
	"time"

	"github.com/onechair/booking/internal/audit"
	domain "github.com/onechair/booking/internal/domain/appointment"
	"github.com/onechair/booking/internal/domain/schedule"
	"github.com/onechair/booking/internal/httperr"
	"github.com/onechair/booking/internal/validators"
)

type CancelOwnInput struct {
	Name  string
	Phone string
	Time  string
}

type CancelOwn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelOwn(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelOwn {
	return &CancelOwn{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelOwn) Execute(
	ctx context.Context,
	in CancelOwnInput,
) error {

	phone := validators.CleanPhone(in.Phone)

	start, err := time.Parse(schedule.SlotKeyLayout, in.Time)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalid)
	}

	ap, err := uc.repo.FindByStartTime(ctx, start)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Operator-blocked slots are never cancellable here. Same code as
	// an identity mismatch, so callers cannot probe which slots are
	// operator-controlled.
	if domain.IsBlocked(ap) {
		return httperr.ErrBusiness(httperr.CodeAuthFailed)
	}

	if ap.CustomerName != in.Name || ap.Phone != phone {
		return httperr.ErrBusiness(httperr.CodeAuthFailed)
	}

	if err := uc.repo.Delete(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_self_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"slot": in.Time},
	})

	return nil
}
