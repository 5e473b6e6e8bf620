package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/models"
)

// ReservationStore is the authoritative record of all reservations. Creating
// and deleting a reservation also keeps the referenced table's status in sync;
// those two paths are the only business logic beyond plain storage.
type ReservationStore struct {
	DB *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{DB: db}
}

type CreateReservationParams struct {
	TableID       uint
	CustomerName  string
	CustomerPhone string
	Guests        int
	Date          string
	Time          string
	Duration      int
	Comment       *string
	Status        string
	HasTimeLimit  bool
	StartTime     *string
	EndTime       *string
}

// Create stores the reservation and marks the referenced table "reserved" in
// the same transaction. The table is marked regardless of the reservation
// date; even a future-dated booking reserves it immediately. Fails with
// gorm.ErrRecordNotFound when the table does not exist.
func (rs *ReservationStore) Create(p CreateReservationParams) (*models.Reservation, error) {
	res := models.Reservation{
		TableID:       p.TableID,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Guests:        p.Guests,
		Date:          p.Date,
		Time:          p.Time,
		Duration:      120,
		Comment:       p.Comment,
		Status:        "active",
		HasTimeLimit:  p.HasTimeLimit,
	}
	if p.Duration > 0 {
		res.Duration = p.Duration
	}
	if p.Status != "" {
		res.Status = p.Status
	}
	// Start/end times are only meaningful with the time-limit flag; any
	// values supplied without it are discarded, never stored.
	if p.HasTimeLimit {
		res.StartTime = p.StartTime
		res.EndTime = p.EndTime
	}

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, p.TableID).Error; err != nil {
			return err
		}
		if err := tx.Create(&res).Error; err != nil {
			return err
		}
		table.Status = "reserved"
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (rs *ReservationStore) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := rs.DB.Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (rs *ReservationStore) Get(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := rs.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// ListByDate filters on exact string equality of the date field.
func (rs *ReservationStore) ListByDate(date string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := rs.DB.Where("date = ?", date).Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (rs *ReservationStore) ListByTable(tableID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := rs.DB.Where("table_id = ?", tableID).Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

type UpdateReservationParams struct {
	TableID       *uint
	CustomerName  *string
	CustomerPhone *string
	Guests        *int
	Date          *string
	Time          *string
	Duration      *int
	Comment       *string
	Status        *string
	HasTimeLimit  *bool
	StartTime     *string
	EndTime       *string
}

// Update merges only the supplied fields. It never re-triggers table status
// synchronization. Clearing the time-limit flag also clears the start/end
// window so a later toggle cannot surface stale values.
func (rs *ReservationStore) Update(id uint, p UpdateReservationParams) (*models.Reservation, error) {
	var res models.Reservation
	if err := rs.DB.First(&res, id).Error; err != nil {
		return nil, err
	}

	if p.TableID != nil {
		res.TableID = *p.TableID
	}
	if p.CustomerName != nil {
		res.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		res.CustomerPhone = *p.CustomerPhone
	}
	if p.Guests != nil {
		res.Guests = *p.Guests
	}
	if p.Date != nil {
		res.Date = *p.Date
	}
	if p.Time != nil {
		res.Time = *p.Time
	}
	if p.Duration != nil {
		res.Duration = *p.Duration
	}
	if p.Comment != nil {
		res.Comment = p.Comment
	}
	if p.Status != nil {
		res.Status = *p.Status
	}
	if p.HasTimeLimit != nil {
		res.HasTimeLimit = *p.HasTimeLimit
	}
	if res.HasTimeLimit {
		if p.StartTime != nil {
			res.StartTime = p.StartTime
		}
		if p.EndTime != nil {
			res.EndTime = p.EndTime
		}
	} else {
		res.StartTime = nil
		res.EndTime = nil
	}

	if err := rs.DB.Save(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete removes the reservation and frees its table when no active
// reservation for the current date remains on it. The check uses today's
// date rather than the deleted reservation's own date; existing clients
// depend on that exact behavior, so removing a booking for another day
// never changes the table status. A missing id fails with
// gorm.ErrRecordNotFound and mutates nothing.
func (rs *ReservationStore) Delete(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&res).Error; err != nil {
			return err
		}

		today := time.Now().Format("2006-01-02")
		var remaining int64
		if err := tx.Model(&models.Reservation{}).
			Where("table_id = ? AND date = ? AND status = ?", res.TableID, today, "active").
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			if err := tx.Model(&models.Table{}).
				Where("id = ?", res.TableID).
				Update("status", "available").Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
