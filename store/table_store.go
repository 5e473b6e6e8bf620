package store

import (
	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/models"
)

// TableStore is the authoritative record of all tables and their status.
// It knows nothing about reservations.
type TableStore struct {
	DB *gorm.DB
}

func NewTableStore(db *gorm.DB) *TableStore {
	return &TableStore{DB: db}
}

type CreateTableParams struct {
	Number   int
	Name     *string
	Capacity int
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Status   string
	Shape    string
	HallID   string
}

// Create inserts a new table, filling unset optional fields with their
// defaults (status "available", shape "round", hall "Main Hall").
func (ts *TableStore) Create(p CreateTableParams) (*models.Table, error) {
	table := models.Table{
		Number:   p.Number,
		Name:     p.Name,
		Capacity: p.Capacity,
		X:        p.X,
		Y:        p.Y,
		Width:    p.Width,
		Height:   p.Height,
		Status:   "available",
		Shape:    "round",
		HallID:   "Main Hall",
	}
	if p.Status != "" {
		table.Status = p.Status
	}
	if p.Shape != "" {
		table.Shape = p.Shape
	}
	if p.HallID != "" {
		table.HallID = p.HallID
	}

	if err := ts.DB.Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// List returns every table in insertion order.
func (ts *TableStore) List() ([]models.Table, error) {
	var tables []models.Table
	if err := ts.DB.Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (ts *TableStore) ListByStatus(status string) ([]models.Table, error) {
	var tables []models.Table
	if err := ts.DB.Where("status = ?", status).Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (ts *TableStore) Get(id uint) (*models.Table, error) {
	var table models.Table
	if err := ts.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

type UpdateTableParams struct {
	Number   *int
	Name     *string
	Capacity *int
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Status   *string
	Shape    *string
	HallID   *string
}

// Update merges only the supplied fields into the existing record.
func (ts *TableStore) Update(id uint, p UpdateTableParams) (*models.Table, error) {
	var table models.Table
	if err := ts.DB.First(&table, id).Error; err != nil {
		return nil, err
	}

	if p.Number != nil {
		table.Number = *p.Number
	}
	if p.Name != nil {
		table.Name = p.Name
	}
	if p.Capacity != nil {
		table.Capacity = *p.Capacity
	}
	if p.X != nil {
		table.X = *p.X
	}
	if p.Y != nil {
		table.Y = *p.Y
	}
	if p.Width != nil {
		table.Width = *p.Width
	}
	if p.Height != nil {
		table.Height = *p.Height
	}
	if p.Status != nil {
		table.Status = *p.Status
	}
	if p.Shape != nil {
		table.Shape = *p.Shape
	}
	if p.HallID != nil {
		table.HallID = *p.HallID
	}

	if err := ts.DB.Save(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateStatus is a convenience wrapper over Update restricted to status.
func (ts *TableStore) UpdateStatus(id uint, status string) (*models.Table, error) {
	return ts.Update(id, UpdateTableParams{Status: &status})
}
