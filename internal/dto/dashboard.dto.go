package dto

import "github.com/onechair/booking/internal/domain/schedule"

type AppointmentRowDTO struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	StartTime    string `json:"start_time"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
}

// DashboardView is the admin day view read model.
type DashboardView struct {
	Appointments    []AppointmentRowDTO   `json:"appointments"`
	SelectedDate    string                `json:"selected_date"`
	SelectedDisplay string                `json:"selected_display"`
	TodayCount      int64                 `json:"today_count"`
	WeekCount       int64                 `json:"week_count"`
	DateOptions     []schedule.DateOption `json:"date_options"`
}
