package services

import (
	"errors"
	"fmt"

	"github.com/MilanaErmolina/Api-hotel/models"

	"gorm.io/gorm"
)

// ErrGuestNotFound is returned when a guest id does not resolve to a record.
var ErrGuestNotFound = errors.New("guest not found")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	guests := make([]models.Guest, 0)
	err := s.DB.Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrGuestNotFound
		}
		return models.Guest{}, err
	}
	return guest, nil
}

// Create persists the guest. Email uniqueness and format are not enforced.
func (s *GuestService) Create(guest *models.Guest) error {
	return s.DB.Create(guest).Error
}

// Update is a full replace of all fields.
func (s *GuestService) Update(guest *models.Guest) error {
	var existing models.Guest
	if err := s.DB.First(&existing, guest.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return err
	}
	guest.CreatedAt = existing.CreatedAt
	return s.DB.Save(guest).Error
}

// Delete fails with ErrInUse while bookings still reference the guest.
func (s *GuestService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuestNotFound
			}
			return err
		}
		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("guest_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return fmt.Errorf("%w: guest %d still has %d booking(s)", ErrInUse, id, bookings)
		}
		return tx.Delete(&guest).Error
	})
}
