package models

import "time"

// Table is a physical seating resource on the floor plan. Position and size
// are layout data for the presentation layer; the core never interprets them.
type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null" json:"number"`
	Name      *string   `gorm:"type:varchar(100)" json:"name,omitempty"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Status    string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Shape     string    `gorm:"type:varchar(20);not null;default:'round'" json:"shape"`
	HallID    string    `gorm:"type:varchar(50);not null;default:'Main Hall'" json:"hall_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
