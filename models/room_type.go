package models

import "time"

// RoomType describes a class of rooms (Standard, Deluxe, ...). Capacity is
// the number of guests the type sleeps.
type RoomType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Capacity    int    `json:"capacity"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
