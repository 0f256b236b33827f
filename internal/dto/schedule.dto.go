package dto

import "github.com/onechair/booking/internal/domain/schedule"

// ScheduleView is the public 5-day grid read model.
type ScheduleView struct {
	Days        []schedule.Day `json:"days"`
	TimeSlots   []string       `json:"time_slots"`
	BookedSlots []string       `json:"booked_slots"`
	CurrentTime string         `json:"current_time"`
}
