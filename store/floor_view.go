package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/models"
)

// TableView joins a table with the reservations scoped to one date. It is a
// pure read projection; building it never mutates state.
type TableView struct {
	models.Table
	CurrentReservation *models.Reservation  `json:"current_reservation,omitempty"`
	TodayReservations  []models.Reservation `json:"today_reservations"`
}

// FloorView derives combined table/reservation views over both stores.
type FloorView struct {
	DB *gorm.DB
}

func NewFloorView(db *gorm.DB) *FloorView {
	return &FloorView{DB: db}
}

// TablesWithReservations returns one view per table, in table-listing order.
// An empty date defaults to today. CurrentReservation is the first active
// reservation for the date in id order; when several are active only that
// one is surfaced.
func (fv *FloorView) TablesWithReservations(date string) ([]TableView, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var tables []models.Table
	if err := fv.DB.Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := fv.DB.Where("date = ?", date).Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}

	byTable := make(map[uint][]models.Reservation, len(tables))
	for _, r := range reservations {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		view := TableView{
			Table:             t,
			TodayReservations: byTable[t.ID],
		}
		if view.TodayReservations == nil {
			view.TodayReservations = []models.Reservation{}
		}
		for i := range view.TodayReservations {
			if view.TodayReservations[i].Status == "active" {
				view.CurrentReservation = &view.TodayReservations[i]
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Stats counts tables per status for the floor dashboard.
func (fv *FloorView) Stats() (map[string]int64, error) {
	stats := map[string]int64{}
	for _, status := range []string{"available", "reserved", "occupied"} {
		var count int64
		if err := fv.DB.Model(&models.Table{}).
			Where("status = ?", status).
			Count(&count).Error; err != nil {
			return nil, err
		}
		stats[status] = count
		stats["total"] += count
	}
	return stats, nil
}
