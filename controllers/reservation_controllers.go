package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/andrisetia/reservation-app/events"
	"github.com/andrisetia/reservation-app/store"
	"github.com/andrisetia/reservation-app/utils"
)

type ReservationController struct {
	Reservations *store.ReservationStore
}

func NewReservationController(reservations *store.ReservationStore) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// CreateReservation -> book a table; the store marks the table reserved
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID       uint    `json:"table_id" binding:"required"`
		CustomerName  string  `json:"customer_name" binding:"required"`
		CustomerPhone string  `json:"customer_phone" binding:"required"`
		Guests        int     `json:"guests" binding:"required,gt=0"`
		Date          string  `json:"date" binding:"required"`
		Time          string  `json:"time" binding:"required"`
		Duration      int     `json:"duration"`
		Comment       *string `json:"comment"`
		Status        string  `json:"status"`
		HasTimeLimit  bool    `json:"has_time_limit"`
		StartTime     *string `json:"start_time"`
		EndTime       *string `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Reservations.Create(store.CreateReservationParams{
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Guests:        req.Guests,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		Comment:       req.Comment,
		Status:        req.Status,
		HasTimeLimit:  req.HasTimeLimit,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservation(events.EventReservationCreate, *res)
	_ = events.PublishReservationEvent(c.Request.Context(), events.ReservationEvent{
		Event:         events.EventReservationCreate,
		ReservationID: res.ID,
		TableID:       res.TableID,
		CustomerName:  res.CustomerName,
		Date:          res.Date,
		Time:          res.Time,
		Guests:        res.Guests,
	})

	utils.InfoLogger.Printf("New reservation %d for table %d on %s %s", res.ID, res.TableID, res.Date, res.Time)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", res)
}

// GetAllReservations -> list reservations, optionally by ?date= or ?table_id=
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		reservations, err := rc.Reservations.ListByDate(date)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Reservations for "+date, reservations)
		return
	}

	if tableStr := c.Query("table_id"); tableStr != "" {
		tableID, err := strconv.Atoi(tableStr)
		if err != nil || tableID <= 0 {
			utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
			return
		}
		reservations, err := rc.Reservations.ListByTable(uint(tableID))
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Reservations for table "+tableStr, reservations)
		return
	}

	reservations, err := rc.Reservations.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail for one reservation
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return
	}

	res, err := rc.Reservations.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", res)
}

// UpdateReservation -> merge the supplied fields; table status is untouched
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return
	}

	var req struct {
		TableID       *uint   `json:"table_id"`
		CustomerName  *string `json:"customer_name"`
		CustomerPhone *string `json:"customer_phone"`
		Guests        *int    `json:"guests"`
		Date          *string `json:"date"`
		Time          *string `json:"time"`
		Duration      *int    `json:"duration"`
		Comment       *string `json:"comment"`
		Status        *string `json:"status"`
		HasTimeLimit  *bool   `json:"has_time_limit"`
		StartTime     *string `json:"start_time"`
		EndTime       *string `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Reservations.Update(id, store.UpdateReservationParams{
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Guests:        req.Guests,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      req.Duration,
		Comment:       req.Comment,
		Status:        req.Status,
		HasTimeLimit:  req.HasTimeLimit,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservation(events.EventReservationUpdate, *res)

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", res)
}

// DeleteReservation -> remove a booking; the store re-evaluates the table
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return
	}

	res, err := rc.Reservations.Delete(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	events.BroadcastReservation(events.EventReservationDelete, *res)
	_ = events.PublishReservationEvent(c.Request.Context(), events.ReservationEvent{
		Event:         events.EventReservationDelete,
		ReservationID: res.ID,
		TableID:       res.TableID,
		CustomerName:  res.CustomerName,
		Date:          res.Date,
		Time:          res.Time,
		Guests:        res.Guests,
	})

	utils.InfoLogger.Printf("Reservation %d deleted (table %d)", res.ID, res.TableID)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{
		"reservation_id": res.ID,
	})
}
