package web

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

// New assembles the gin router with the full v1 surface.
func New(jwtSecret []byte, ah *AuthHandler, bh *BookingHandler, ph *PaymentHandler, rh *RoomHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	admin := string(domain.RoleAdmin)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", ah.Register)
		v1.POST("/auth/login", ah.Login)

		v1.GET("/rooms", rh.List)
		v1.GET("/rooms/:id", rh.Get)

		secured := v1.Group("")
		secured.Use(JWTAuth(jwtSecret))
		{
			secured.POST("/bookings", bh.Create)
			secured.GET("/bookings", bh.List)
			secured.GET("/bookings/:id", bh.Get)
			secured.PUT("/bookings/:id", bh.Update)
			secured.POST("/bookings/:id/cancel", bh.Cancel)
			secured.GET("/bookings/:id/can-cancel", bh.CanCancel)
			secured.GET("/bookings/:id/payments", ph.Ledger)

			secured.POST("/payments", ph.Record)

			adm := secured.Group("")
			adm.Use(RequireRole(admin))
			{
				adm.PATCH("/bookings/:id/status", bh.SetStatus)
				adm.POST("/payments/:id/refund", ph.Refund)

				adm.POST("/hotels", rh.CreateHotel)
				adm.POST("/room-types", rh.CreateRoomType)
				adm.POST("/rooms", rh.Create)
				adm.PUT("/rooms/:id", rh.Update)
				adm.DELETE("/rooms/:id", rh.Delete)
			}
		}
	}
	return r
}
