package models

import "time"

type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	HotelID       uint    `gorm:"column:hotel_id;index;not null" json:"hotel_id"`
	RoomTypeID    uint    `gorm:"column:room_type_id;index;not null" json:"room_type_id"`
	RoomNumber    string  `gorm:"column:room_number;type:varchar(50)" json:"room_number"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	// No DB-level default: a plain bool with a default tag would make GORM
	// drop explicit false on insert. The controller defaults omitted flags.
	IsAvailable bool `gorm:"column:is_available" json:"is_available"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Hotel    Hotel    `gorm:"foreignKey:HotelID" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`
}

// AvailableRoom is one row of GET /rooms/search/available_rooms: a room joined
// with its hotel's name and its type's name and capacity.
type AvailableRoom struct {
	ID            uint    `json:"id"`
	HotelName     string  `json:"hotel_name"`
	RoomType      string  `json:"room_type"`
	RoomNumber    string  `json:"room_number"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
}

// HotelRoom is one row of GET /hotels/:id/rooms: a room of a known hotel
// joined with its type's name.
type HotelRoom struct {
	ID            uint    `json:"id"`
	RoomType      string  `json:"room_type"`
	RoomNumber    string  `json:"room_number"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   bool    `json:"is_available"`
}
