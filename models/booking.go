package models

import "time"

// Booking ties a guest to a room for a date range. Status is an open string;
// "confirmed", "cancelled" and "pending" are the values the frontend uses.
// Overlapping bookings of the same room are not rejected.
type Booking struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	GuestID      uint    `gorm:"column:guest_id;index;not null" json:"guest_id"`
	RoomID       uint    `gorm:"column:room_id;index;not null" json:"room_id"`
	CheckInDate  Date    `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate Date    `gorm:"column:check_out_date" json:"check_out_date"`
	TotalPrice   float64 `gorm:"column:total_price" json:"total_price"`
	Status       string  `gorm:"size:64;default:confirmed" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Guest Guest `gorm:"foreignKey:GuestID" json:"-"`
	Room  Room  `gorm:"foreignKey:RoomID" json:"-"`
}
