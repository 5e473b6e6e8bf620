package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrisetia/reservation-app/models"
)

func reservationPayload(tableID uint, date string) map[string]interface{} {
	return map[string]interface{}{
		"table_id":       tableID,
		"customer_name":  "A",
		"customer_phone": "1",
		"guests":         2,
		"date":           date,
		"time":           "19:00",
	}
}

func TestCreateReservationHTTP(t *testing.T) {
	db, r := setupServer(t)
	table := models.Table{Number: 1, Capacity: 4, Status: "available", Shape: "round", HallID: "Main Hall"}
	db.Create(&table)

	today := time.Now().Format("2006-01-02")
	w := doJSON(t, r, "POST", "/reservations", reservationPayload(table.ID, today))
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeEnvelope(t, w)
	assert.Equal(t, "Reservation created", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, float64(120), data["duration"])

	// side effect: the table is now reserved
	w = doJSON(t, r, "GET", fmt.Sprintf("/tables/%d", table.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tableData := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "reserved", tableData["status"])
}

func TestCreateReservationValidationHTTP(t *testing.T) {
	db, r := setupServer(t)
	table := models.Table{Number: 1, Capacity: 4, Status: "available", Shape: "round", HallID: "Main Hall"}
	db.Create(&table)

	payload := reservationPayload(table.ID, "2030-05-01")
	delete(payload, "customer_name")

	w := doJSON(t, r, "POST", "/reservations", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["status"])
}

func TestCreateReservationMissingTableHTTP(t *testing.T) {
	_, r := setupServer(t)

	w := doJSON(t, r, "POST", "/reservations", reservationPayload(999, "2030-05-01"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReservationHTTP(t *testing.T) {
	db, r := setupServer(t)
	table := models.Table{Number: 1, Capacity: 4, Status: "available", Shape: "round", HallID: "Main Hall"}
	db.Create(&table)

	today := time.Now().Format("2006-01-02")
	w := doJSON(t, r, "POST", "/reservations", reservationPayload(table.ID, today))
	assert.Equal(t, http.StatusCreated, w.Code)
	resID := decodeEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/reservations/%d", int(resID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservation deleted", decodeEnvelope(t, w)["message"])

	// its table is free again
	w = doJSON(t, r, "GET", fmt.Sprintf("/tables/%d", table.ID), nil)
	tableData := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "available", tableData["status"])

	// deleting again reports not-found
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/reservations/%d", int(resID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReservationsByDateHTTP(t *testing.T) {
	db, r := setupServer(t)
	table := models.Table{Number: 1, Capacity: 4, Status: "available", Shape: "round", HallID: "Main Hall"}
	db.Create(&table)

	w := doJSON(t, r, "POST", "/reservations", reservationPayload(table.ID, "2030-05-01"))
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, "POST", "/reservations", reservationPayload(table.ID, "2030-05-02"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/reservations?date=2030-05-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)

	w = doJSON(t, r, "GET", fmt.Sprintf("/reservations?table_id=%d", table.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeEnvelope(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestUpdateReservationHTTP(t *testing.T) {
	db, r := setupServer(t)
	table := models.Table{Number: 1, Capacity: 4, Status: "available", Shape: "round", HallID: "Main Hall"}
	db.Create(&table)

	w := doJSON(t, r, "POST", "/reservations", reservationPayload(table.ID, "2030-05-01"))
	assert.Equal(t, http.StatusCreated, w.Code)
	resID := int(decodeEnvelope(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, r, "PATCH", fmt.Sprintf("/reservations/%d", resID), map[string]interface{}{
		"comment": "birthday",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "birthday", data["comment"])
	assert.Equal(t, "A", data["customer_name"])
}
