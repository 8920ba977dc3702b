package models

import "time"

type Hotel struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255" json:"name"`
	Address string  `gorm:"size:255" json:"address"`
	City    string  `gorm:"size:100" json:"city"`
	Rating  float64 `json:"rating"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
