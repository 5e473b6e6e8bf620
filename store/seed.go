package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/models"
)

var seedHalls = []string{"Main Hall", "Terrace", "Garden", "Bar", "VIP Room"}

// Seed inserts the default floor layout when the database is empty: 15 tables
// across 5 halls plus 3 sample reservations dated today. Tables holding a
// seeded reservation start out "reserved" so the status invariant holds from
// the first request. Idempotent; a non-empty tables table is left alone.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tables := make([]models.Table, 0, 15)
	number := 1
	for row, hall := range seedHalls {
		for i := 0; i < 3; i++ {
			table := models.Table{
				Number:   number,
				Capacity: 2 + 2*i,
				X:        float64(40 + 140*i),
				Y:        float64(40 + 120*row),
				Width:    80,
				Height:   80,
				Status:   "available",
				Shape:    "round",
				HallID:   hall,
			}
			if i == 2 {
				table.Shape = "rectangular"
				table.Width = 120
			}
			tables = append(tables, table)
			number++
		}
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	startTime := "19:00"
	endTime := "21:00"
	comment := "window seat if possible"

	reservations := []models.Reservation{
		{
			TableID:       tables[0].ID,
			CustomerName:  "Siti Rahma",
			CustomerPhone: "+62-812-5550-101",
			Guests:        2,
			Date:          today,
			Time:          "18:00",
			Duration:      120,
			Status:        "active",
		},
		{
			TableID:       tables[4].ID,
			CustomerName:  "Budi Hartono",
			CustomerPhone: "+62-813-5550-102",
			Guests:        4,
			Date:          today,
			Time:          "19:00",
			Duration:      90,
			Comment:       &comment,
			Status:        "active",
		},
		{
			TableID:       tables[12].ID,
			CustomerName:  "Dewi Lestari",
			CustomerPhone: "+62-815-5550-103",
			Guests:        6,
			Date:          today,
			Time:          "19:00",
			Duration:      120,
			Status:        "active",
			HasTimeLimit:  true,
			StartTime:     &startTime,
			EndTime:       &endTime,
		},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return err
	}

	for _, r := range reservations {
		if err := db.Model(&models.Table{}).
			Where("id = ?", r.TableID).
			Update("status", "reserved").Error; err != nil {
			return fmt.Errorf("seed: mark table %d reserved: %w", r.TableID, err)
		}
	}
	return nil
}
