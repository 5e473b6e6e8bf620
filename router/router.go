package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/controllers"
	"github.com/andrisetia/reservation-app/middlewares"
	"github.com/andrisetia/reservation-app/store"
)

// SetupRouter builds the full route table over freshly constructed stores.
// rdb may be nil; the floor view cache is then disabled.
func SetupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())
	r.Use(middlewares.InvalidateCache(rdb))

	tableStore := store.NewTableStore(db)
	reservationStore := store.NewReservationStore(db)
	floorView := store.NewFloorView(db)

	tableCtrl := controllers.NewTableController(tableStore)
	reservationCtrl := controllers.NewReservationController(reservationStore)
	floorCtrl := controllers.NewFloorController(floorView)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	strictLimiter := middlewares.NewStrictRateLimiter()

	// TABLES
	r.GET("/tables", tableCtrl.GetAllTables)
	r.POST("/tables", strictLimiter, tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.PATCH("/tables/:table_id", strictLimiter, tableCtrl.UpdateTable)
	r.PATCH("/tables/:table_id/status", strictLimiter, tableCtrl.UpdateTableStatus)

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.POST("/reservations", strictLimiter, reservationCtrl.CreateReservation)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	r.PATCH("/reservations/:reservation_id", strictLimiter, reservationCtrl.UpdateReservation)
	r.DELETE("/reservations/:reservation_id", strictLimiter, reservationCtrl.DeleteReservation)

	// FLOOR (read-only composite view, cacheable)
	floor := r.Group("/floor")
	floor.Use(middlewares.CacheResponse(rdb, 30*time.Second))
	{
		floor.GET("", floorCtrl.GetFloorPlan)
		floor.GET("/stats", floorCtrl.GetFloorStats)
	}

	// Websocket event feed for floor clients
	r.GET("/ws", controllers.FloorEventsHandler)

	return r
}
