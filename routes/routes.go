package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MilanaErmolina/Api-hotel/controllers"
	"github.com/MilanaErmolina/Api-hotel/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the resource routes onto a gin engine.
func SetupRouter(
	hc *controllers.HotelController,
	rtc *controllers.RoomTypeController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hotel Booking API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	hotels := r.Group("/hotels")
	{
		hotels.GET("", hc.GetHotels)
		hotels.GET("/:id", hc.GetHotelByID)
		hotels.GET("/:id/rooms", hc.GetHotelRooms)
		hotels.POST("", hc.CreateHotel)
		hotels.PUT("", hc.UpdateHotel)
		hotels.DELETE("/:id", hc.DeleteHotel)
	}

	roomTypes := r.Group("/room_types")
	{
		roomTypes.GET("", rtc.GetRoomTypes)
		roomTypes.GET("/:id", rtc.GetRoomTypeByID)
		roomTypes.POST("", rtc.CreateRoomType)
		roomTypes.PUT("", rtc.UpdateRoomType)
		roomTypes.DELETE("/:id", rtc.DeleteRoomType)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", rc.GetRooms)
		// static segment, registered alongside /:id
		rooms.GET("/search/available_rooms", rc.SearchAvailableRooms)
		rooms.GET("/:id", rc.GetRoomByID)
		rooms.POST("", rc.CreateRoom)
		rooms.PUT("", rc.UpdateRoom)
		rooms.DELETE("/:id", rc.DeleteRoom)
	}

	guests := r.Group("/guests")
	{
		guests.GET("", gc.GetGuests)
		guests.GET("/:id", gc.GetGuestByID)
		guests.POST("", gc.CreateGuest)
		guests.PUT("", gc.UpdateGuest)
		guests.DELETE("/:id", gc.DeleteGuest)
	}

	bookings := r.Group("/bookings")
	{
		bookings.GET("", bc.GetBookings)
		bookings.GET("/:id", bc.GetBookingByID)
		bookings.POST("", bc.CreateBooking)
		bookings.PUT("", bc.UpdateBooking)
		bookings.DELETE("/:id", bc.DeleteBooking)
	}

	return r
}
