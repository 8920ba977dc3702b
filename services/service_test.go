package services

import (
	"testing"
	"time"

	"github.com/MilanaErmolina/Api-hotel/config"
	"github.com/MilanaErmolina/Api-hotel/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the production schema.
// The pool is pinned to one connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedHotel(t *testing.T, db *gorm.DB, name string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Address: "1 Main St", City: "Riga", Rating: 4.2}
	if err := NewHotelService(db).Create(&hotel); err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return hotel
}

func seedRoomType(t *testing.T, db *gorm.DB, name string, capacity int) models.RoomType {
	t.Helper()
	rt := models.RoomType{Name: name, Description: name + " room", Capacity: capacity}
	if err := NewRoomTypeService(db).Create(&rt); err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID, roomTypeID uint, number string, price float64, available bool) models.Room {
	t.Helper()
	room := models.Room{
		HotelID:       hotelID,
		RoomTypeID:    roomTypeID,
		RoomNumber:    number,
		PricePerNight: price,
		IsAvailable:   available,
	}
	if err := NewRoomService(db).Create(&room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func seedGuest(t *testing.T, db *gorm.DB, email string) models.Guest {
	t.Helper()
	guest := models.Guest{FirstName: "Anna", LastName: "Berzina", Email: email, Phone: "+371 20000000"}
	if err := NewGuestService(db).Create(&guest); err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	return guest
}

func date(y int, m time.Month, d int) models.Date {
	return models.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func seedBooking(t *testing.T, db *gorm.DB, guestID, roomID uint) models.Booking {
	t.Helper()
	booking := models.Booking{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  date(2024, 6, 1),
		CheckOutDate: date(2024, 6, 5),
		TotalPrice:   400,
		Status:       "confirmed",
	}
	if err := NewBookingService(db).Create(&booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}
