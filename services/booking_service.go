package services

import (
	"errors"
	"fmt"

	"github.com/MilanaErmolina/Api-hotel/models"

	"gorm.io/gorm"
)

// ErrBookingNotFound is returned when a booking id does not resolve to a record.
var ErrBookingNotFound = errors.New("booking not found")

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := s.DB.Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

// checkRefs verifies the booking's guest and room exist.
func (s *BookingService) checkRefs(tx *gorm.DB, booking *models.Booking) error {
	var n int64
	if err := tx.Model(&models.Guest{}).Where("id = ?", booking.GuestID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: guest %d does not exist", ErrInvalidReference, booking.GuestID)
	}
	if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: room %d does not exist", ErrInvalidReference, booking.RoomID)
	}
	return nil
}

// Create persists the booking after validating its references. Dates are
// stored as supplied: check-in after check-out is accepted, and the total
// price is the caller's number, not nights times rate. Nothing is written
// when a reference is invalid.
func (s *BookingService) Create(booking *models.Booking) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.checkRefs(tx, booking); err != nil {
			return err
		}
		return tx.Create(booking).Error
	})
}

// Update is a full replace and re-validates the references.
func (s *BookingService) Update(booking *models.Booking) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := tx.First(&existing, booking.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if err := s.checkRefs(tx, booking); err != nil {
			return err
		}
		booking.CreatedAt = existing.CreatedAt
		return tx.Save(booking).Error
	})
}

// Delete removes the booking. Nothing references bookings, so the delete is
// unconditional once the record is found.
func (s *BookingService) Delete(id uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.DB.Delete(&booking).Error
}
