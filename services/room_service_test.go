package services

import (
	"errors"
	"testing"

	"github.com/MilanaErmolina/Api-hotel/models"
)

func TestRoomCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := seedHotel(t, db, "Grand")
	rt := seedRoomType(t, db, "Standard", 2)

	room := models.Room{HotelID: hotel.ID, RoomTypeID: rt.ID, RoomNumber: "305", PricePerNight: 120.5, IsAvailable: false}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("create: %v", err)
	}
	if room.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	got, err := svc.GetByID(room.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HotelID != hotel.ID || got.RoomTypeID != rt.ID || got.RoomNumber != "305" || got.PricePerNight != 120.5 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	// The supplied availability flag is stored, not reset to the default.
	if got.IsAvailable {
		t.Fatal("is_available=false was not persisted")
	}
}

func TestRoomCreateRejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := seedHotel(t, db, "Grand")
	rt := seedRoomType(t, db, "Standard", 2)

	cases := []struct {
		name string
		room models.Room
	}{
		{"unknown hotel", models.Room{HotelID: 999, RoomTypeID: rt.ID, RoomNumber: "1"}},
		{"unknown room type", models.Room{HotelID: hotel.ID, RoomTypeID: 999, RoomNumber: "2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room := tc.room
			if err := svc.Create(&room); !errors.Is(err, ErrInvalidReference) {
				t.Fatalf("got %v, want ErrInvalidReference", err)
			}
		})
	}

	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d room(s) persisted despite invalid references", count)
	}
}

func TestRoomUpdateIsFullReplaceAndRevalidates(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := seedHotel(t, db, "Grand")
	other := seedHotel(t, db, "Other")
	rt := seedRoomType(t, db, "Standard", 2)
	room := seedRoom(t, db, hotel.ID, rt.ID, "101", 100, true)

	replacement := models.Room{ID: room.ID, HotelID: other.ID, RoomTypeID: rt.ID, RoomNumber: "707", PricePerNight: 95, IsAvailable: false}
	if err := svc.Update(&replacement); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetByID(room.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.HotelID != other.ID || got.RoomNumber != "707" || got.PricePerNight != 95 || got.IsAvailable {
		t.Fatalf("update was not a full replace: %+v", got)
	}

	// Unlike the old API, update re-checks the references.
	bad := models.Room{ID: room.ID, HotelID: 999, RoomTypeID: rt.ID, RoomNumber: "707"}
	if err := svc.Update(&bad); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("update with unknown hotel: got %v, want ErrInvalidReference", err)
	}
}

func TestRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := seedHotel(t, db, "Grand")
	rt := seedRoomType(t, db, "Standard", 2)

	if _, err := svc.GetByID(9999); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("get absent: got %v, want ErrRoomNotFound", err)
	}
	if err := svc.Update(&models.Room{ID: 9999, HotelID: hotel.ID, RoomTypeID: rt.ID}); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("update absent: got %v, want ErrRoomNotFound", err)
	}
	if err := svc.Delete(9999); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("delete absent: got %v, want ErrRoomNotFound", err)
	}
}

func TestRoomDeleteBlockedByBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := seedHotel(t, db, "Grand")
	rt := seedRoomType(t, db, "Standard", 2)
	room := seedRoom(t, db, hotel.ID, rt.ID, "101", 100, true)
	guest := seedGuest(t, db, "anna@example.com")
	seedBooking(t, db, guest.ID, room.ID)

	if err := svc.Delete(room.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("delete booked room: got %v, want ErrInUse", err)
	}
}

func TestSearchAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	grand := seedHotel(t, db, "Grand")
	rt := seedRoomType(t, db, "Standard", 2)
	available := seedRoom(t, db, grand.ID, rt.ID, "101", 100, true)
	seedRoom(t, db, grand.ID, rt.ID, "102", 100, false)

	rooms, err := svc.SearchAvailable()
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want exactly the available one", len(rooms))
	}
	got := rooms[0]
	if got.ID != available.ID {
		t.Fatalf("wrong room returned: %+v", got)
	}
	if got.HotelName != "Grand" || got.RoomType != "Standard" || got.Capacity != 2 {
		t.Fatalf("join projection wrong: %+v", got)
	}
	if got.RoomNumber != "101" || got.PricePerNight != 100 {
		t.Fatalf("room fields wrong: %+v", got)
	}
}

func TestSearchAvailableEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	rooms, err := svc.SearchAvailable()
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("got %d rooms from an empty store", len(rooms))
	}
}
