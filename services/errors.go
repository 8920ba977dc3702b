// Package services holds the repository operations for the five entities.
// Each service wraps the shared *gorm.DB handle; nothing in here touches HTTP.
//
// Error conventions: every service defines a not-found sentinel next to its
// type; the two sentinels below are shared because more than one service can
// produce them. Controllers translate them into HTTP statuses.
package services

import "errors"

// ErrInvalidReference is returned when a write references a parent record
// that does not exist (room -> hotel/room type, booking -> guest/room).
var ErrInvalidReference = errors.New("invalid reference")

// ErrInUse is returned when a delete is blocked by dependent records, e.g.
// deleting a hotel that still has rooms.
var ErrInUse = errors.New("record in use")
