package appointment

import "github.com/onechair/booking/internal/models"

// ===============================
// Appointment Kind
// ===============================

type Kind string

const (
	KindCustomer Kind = "customer"
	KindBlocked  Kind = "blocked"
)

// SystemBlockPhone is the reserved phone value written alongside
// KindBlocked so the stored row stays readable by tooling that only
// knows the phone column. Kind is authoritative in code.
const SystemBlockPhone = "SYSTEM_BLOCK"

// IsBlocked reports whether the slot was reserved by the operator
// rather than booked by a customer.
func IsBlocked(ap *models.Appointment) bool {
	return ap != nil && (Kind(ap.Kind) == KindBlocked || ap.Phone == SystemBlockPhone)
}
