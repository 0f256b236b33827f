package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusBooked is the only status in use. Appointments are never
	// transitioned; lifecycle is create then delete.
	StatusBooked Status = "booked"
)

func InitialStatus() Status {
	return StatusBooked
}
