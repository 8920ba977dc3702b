package services

import (
	"errors"
	"fmt"

	"github.com/MilanaErmolina/Api-hotel/models"

	"gorm.io/gorm"
)

// ErrRoomNotFound is returned when a room id does not resolve to a record.
var ErrRoomNotFound = errors.New("room not found")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

// checkRefs verifies the room's hotel and room type exist. Both create and
// update call it, so a room can never be written against missing parents.
func (s *RoomService) checkRefs(tx *gorm.DB, room *models.Room) error {
	var n int64
	if err := tx.Model(&models.Hotel{}).Where("id = ?", room.HotelID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: hotel %d does not exist", ErrInvalidReference, room.HotelID)
	}
	if err := tx.Model(&models.RoomType{}).Where("id = ?", room.RoomTypeID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: room type %d does not exist", ErrInvalidReference, room.RoomTypeID)
	}
	return nil
}

// Create persists the room after validating its references. Nothing is
// written when a reference is invalid.
func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.checkRefs(tx, room); err != nil {
			return err
		}
		return tx.Create(room).Error
	})
}

// Update is a full replace and re-validates the references, unlike the
// create-only validation of the old API.
func (s *RoomService) Update(room *models.Room) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		if err := tx.First(&existing, room.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := s.checkRefs(tx, room); err != nil {
			return err
		}
		room.CreatedAt = existing.CreatedAt
		return tx.Save(room).Error
	})
}

// Delete fails with ErrInUse while bookings still reference the room.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return fmt.Errorf("%w: room %d still has %d booking(s)", ErrInUse, id, bookings)
		}
		return tx.Delete(&room).Error
	})
}

// SearchAvailable returns every room with is_available = true, joined with
// its hotel's name and its type's name and capacity.
func (s *RoomService) SearchAvailable() ([]models.AvailableRoom, error) {
	rows := make([]models.AvailableRoom, 0)
	err := s.DB.Model(&models.Room{}).
		Select("rooms.id, hotels.name AS hotel_name, room_types.name AS room_type, rooms.room_number, rooms.price_per_night, room_types.capacity").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.is_available = ?", true).
		Scan(&rows).Error
	return rows, err
}
