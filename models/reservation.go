package models

import "time"

// Reservation books a table for a customer at a date/time. StartTime and
// EndTime form an explicit departure window and are only set while
// HasTimeLimit is true; otherwise both stay nil.
type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TableID       uint      `gorm:"index;not null" json:"table_id"`
	CustomerName  string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string    `gorm:"type:varchar(50);not null" json:"customer_phone"`
	Guests        int       `gorm:"not null" json:"guests"`
	Date          string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Time          string    `gorm:"type:varchar(5);not null" json:"time"`
	Duration      int       `gorm:"not null;default:120" json:"duration"`
	Comment       *string   `gorm:"type:text" json:"comment,omitempty"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	HasTimeLimit  bool      `gorm:"not null;default:false" json:"has_time_limit"`
	StartTime     *string   `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime       *string   `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
