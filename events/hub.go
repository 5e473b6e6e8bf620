package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/andrisetia/reservation-app/models"
)

// Event types
const (
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventReservationDelete = "reservation_delete"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// FloorHub holds every connected floor-plan client.
type FloorHub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var floorHub = FloorHub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a connection to the hub.
func RegisterClient(conn *websocket.Conn) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	floorHub.clients[conn] = struct{}{}
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	delete(floorHub.clients, conn)
	conn.Close()
}

// BroadcastTable pushes a table snapshot under the given event type.
func BroadcastTable(event string, table models.Table) {
	broadcast(Message{Event: event, Data: table})
}

// BroadcastReservation pushes a reservation snapshot under the given event type.
func BroadcastReservation(event string, res models.Reservation) {
	broadcast(Message{Event: event, Data: res})
}

// BroadcastMessage sends an arbitrary message to every client.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("events: marshal message: %v", err)
		return
	}

	for conn := range floorHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("events: send to client: %v", err)
		}
	}
}
