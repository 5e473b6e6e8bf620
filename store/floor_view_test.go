package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrisetia/reservation-app/store"
)

func TestFloorViewOneEntryPerTable(t *testing.T) {
	db := newTestDB(t)
	ts := store.NewTableStore(db)
	rs := store.NewReservationStore(db)
	fv := store.NewFloorView(db)

	first := newTable(t, ts, 1)
	second := newTable(t, ts, 2)
	third := newTable(t, ts, 3)

	_, err := rs.Create(reservationParams(first.ID, "2030-05-01"))
	assert.NoError(t, err)
	_, err = rs.Create(reservationParams(first.ID, "2030-05-02"))
	assert.NoError(t, err)
	_, err = rs.Create(reservationParams(second.ID, "2030-05-01"))
	assert.NoError(t, err)

	views, err := fv.TablesWithReservations("2030-05-01")
	assert.NoError(t, err)
	if !assert.Len(t, views, 3) {
		return
	}

	// table-listing order
	assert.Equal(t, first.ID, views[0].ID)
	assert.Equal(t, second.ID, views[1].ID)
	assert.Equal(t, third.ID, views[2].ID)

	// only reservations matching the supplied date
	if assert.Len(t, views[0].TodayReservations, 1) {
		assert.Equal(t, "2030-05-01", views[0].TodayReservations[0].Date)
	}
	assert.Len(t, views[1].TodayReservations, 1)
	assert.Empty(t, views[2].TodayReservations)
	assert.Nil(t, views[2].CurrentReservation)
}

func TestFloorViewCurrentReservationFirstActive(t *testing.T) {
	db := newTestDB(t)
	ts := store.NewTableStore(db)
	rs := store.NewReservationStore(db)
	fv := store.NewFloorView(db)
	table := newTable(t, ts, 1)

	cancelled := reservationParams(table.ID, "2030-05-01")
	cancelled.Status = "cancelled"
	_, err := rs.Create(cancelled)
	assert.NoError(t, err)

	active, err := rs.Create(reservationParams(table.ID, "2030-05-01"))
	assert.NoError(t, err)

	views, err := fv.TablesWithReservations("2030-05-01")
	assert.NoError(t, err)
	if !assert.Len(t, views, 1) {
		return
	}
	assert.Len(t, views[0].TodayReservations, 2)
	if assert.NotNil(t, views[0].CurrentReservation) {
		assert.Equal(t, active.ID, views[0].CurrentReservation.ID)
	}
}

func TestFloorViewDefaultsToToday(t *testing.T) {
	db := newTestDB(t)
	ts := store.NewTableStore(db)
	rs := store.NewReservationStore(db)
	fv := store.NewFloorView(db)
	table := newTable(t, ts, 1)

	_, err := rs.Create(reservationParams(table.ID, today()))
	assert.NoError(t, err)
	_, err = rs.Create(reservationParams(table.ID, "2030-05-01"))
	assert.NoError(t, err)

	views, err := fv.TablesWithReservations("")
	assert.NoError(t, err)
	if !assert.Len(t, views, 1) {
		return
	}
	if assert.Len(t, views[0].TodayReservations, 1) {
		assert.Equal(t, today(), views[0].TodayReservations[0].Date)
	}
}

func TestFloorStats(t *testing.T) {
	db := newTestDB(t)
	ts := store.NewTableStore(db)
	fv := store.NewFloorView(db)

	newTable(t, ts, 1)
	newTable(t, ts, 2)
	_, err := ts.Create(store.CreateTableParams{Number: 3, Capacity: 2, Status: "occupied"})
	assert.NoError(t, err)

	stats, err := fv.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats["available"])
	assert.Equal(t, int64(0), stats["reserved"])
	assert.Equal(t, int64(1), stats["occupied"])
	assert.Equal(t, int64(3), stats["total"])
}
