package services

import (
	"errors"
	"fmt"

	"github.com/MilanaErmolina/Api-hotel/models"

	"gorm.io/gorm"
)

// ErrHotelNotFound is returned when a hotel id does not resolve to a record.
var ErrHotelNotFound = errors.New("hotel not found")

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	hotels := make([]models.Hotel, 0)
	err := s.DB.Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, ErrHotelNotFound
		}
		return models.Hotel{}, err
	}
	return hotel, nil
}

// Create persists the hotel and fills in its assigned ID. Rating is stored
// as supplied; the API does not enforce the 0-5 range.
func (s *HotelService) Create(hotel *models.Hotel) error {
	return s.DB.Create(hotel).Error
}

// Update is a full replace: every field of the payload overwrites the stored
// row. The read-then-save pair is not serialized against concurrent updates
// of the same id; last write wins.
func (s *HotelService) Update(hotel *models.Hotel) error {
	var existing models.Hotel
	if err := s.DB.First(&existing, hotel.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	hotel.CreatedAt = existing.CreatedAt
	return s.DB.Save(hotel).Error
}

// Delete removes the hotel unless rooms still reference it, in which case it
// fails with ErrInUse. Check and delete run in one transaction.
func (s *HotelService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}
		var rooms int64
		if err := tx.Model(&models.Room{}).Where("hotel_id = ?", id).Count(&rooms).Error; err != nil {
			return err
		}
		if rooms > 0 {
			return fmt.Errorf("%w: hotel %d still has %d room(s)", ErrInUse, id, rooms)
		}
		return tx.Delete(&hotel).Error
	})
}

// ListRooms returns every room of the hotel, each row carrying the room
// type's name. Fails with ErrHotelNotFound if the hotel itself is absent.
func (s *HotelService) ListRooms(hotelID uint) ([]models.HotelRoom, error) {
	if _, err := s.GetByID(hotelID); err != nil {
		return nil, err
	}
	rows := make([]models.HotelRoom, 0)
	err := s.DB.Model(&models.Room{}).
		Select("rooms.id, room_types.name AS room_type, rooms.room_number, rooms.price_per_night, rooms.is_available").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.hotel_id = ?", hotelID).
		Scan(&rows).Error
	return rows, err
}
