package services

import (
	"errors"
	"fmt"

	"github.com/MilanaErmolina/Api-hotel/models"

	"gorm.io/gorm"
)

// ErrRoomTypeNotFound is returned when a room type id does not resolve to a record.
var ErrRoomTypeNotFound = errors.New("room type not found")

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	types := make([]models.RoomType, 0)
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomType{}, ErrRoomTypeNotFound
		}
		return models.RoomType{}, err
	}
	return rt, nil
}

// Create persists the room type. Capacity is stored as supplied; the API
// does not require it to be positive.
func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

// Update is a full replace of all fields.
func (s *RoomTypeService) Update(rt *models.RoomType) error {
	var existing models.RoomType
	if err := s.DB.First(&existing, rt.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return err
	}
	rt.CreatedAt = existing.CreatedAt
	return s.DB.Save(rt).Error
}

// Delete fails with ErrInUse while rooms still reference the type.
func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var rt models.RoomType
		if err := tx.First(&rt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return err
		}
		var rooms int64
		if err := tx.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&rooms).Error; err != nil {
			return err
		}
		if rooms > 0 {
			return fmt.Errorf("%w: room type %d still has %d room(s)", ErrInUse, id, rooms)
		}
		return tx.Delete(&rt).Error
	})
}
