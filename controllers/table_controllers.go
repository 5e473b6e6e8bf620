package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrisetia/reservation-app/events"
	"github.com/andrisetia/reservation-app/store"
	"github.com/andrisetia/reservation-app/utils"
)

type TableController struct {
	Tables *store.TableStore
}

func NewTableController(tables *store.TableStore) *TableController {
	return &TableController{Tables: tables}
}

// CreateTable -> add a new table to the floor plan
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int     `json:"number" binding:"required"`
		Name     *string `json:"name"`
		Capacity int     `json:"capacity" binding:"required,gt=0"`
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		Width    float64 `json:"width"`
		Height   float64 `json:"height"`
		Status   string  `json:"status"`
		Shape    string  `json:"shape"`
		HallID   string  `json:"hall_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Create(store.CreateTableParams{
		Number:   req.Number,
		Name:     req.Name,
		Capacity: req.Capacity,
		X:        req.X,
		Y:        req.Y,
		Width:    req.Width,
		Height:   req.Height,
		Status:   req.Status,
		Shape:    req.Shape,
		HallID:   req.HallID,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTable(events.EventTableCreate, *table)

	utils.InfoLogger.Printf("New table created: %d (status=%s, hall=%s)", table.Number, table.Status, table.HallID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> list tables, optionally filtered by ?status=
func (tc *TableController) GetAllTables(c *gin.Context) {
	var err error
	var tables interface{}

	if status := c.Query("status"); status != "" {
		tables, err = tc.Tables.ListByStatus(status)
	} else {
		tables, err = tc.Tables.List()
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail for one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := parseID(c, "table_id")
	if !ok {
		return
	}

	table, err := tc.Tables.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> merge the supplied fields into the table record
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := parseID(c, "table_id")
	if !ok {
		return
	}

	var req struct {
		Number   *int     `json:"number"`
		Name     *string  `json:"name"`
		Capacity *int     `json:"capacity"`
		X        *float64 `json:"x"`
		Y        *float64 `json:"y"`
		Width    *float64 `json:"width"`
		Height   *float64 `json:"height"`
		Status   *string  `json:"status"`
		Shape    *string  `json:"shape"`
		HallID   *string  `json:"hall_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Update(id, store.UpdateTableParams{
		Number:   req.Number,
		Name:     req.Name,
		Capacity: req.Capacity,
		X:        req.X,
		Y:        req.Y,
		Width:    req.Width,
		Height:   req.Height,
		Status:   req.Status,
		Shape:    req.Shape,
		HallID:   req.HallID,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastTable(events.EventTableUpdate, *table)

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> update only the table status
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	id, ok := parseID(c, "table_id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.UpdateStatus(id, body.Status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastTable(events.EventTableUpdate, *table)

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}
