package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:100;index" json:"customer_name"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Unique index is the authoritative guard against double booking.
	StartTime time.Time `gorm:"uniqueIndex" json:"start_time"`

	Kind   string `gorm:"size:20;default:'customer'" json:"kind"`
	Status string `gorm:"size:20;default:'booked'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
