package controllers

import (
	"net/http"
	"strings"

	"github.com/MilanaErmolina/Api-hotel/models"
	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(s *services.RoomService) *RoomController {
	return &RoomController{service: s}
}

// IsAvailable is a pointer so an omitted flag can default to true while an
// explicit false is kept.
type createRoomRequest struct {
	HotelID       uint    `json:"hotel_id" binding:"required"`
	RoomTypeID    uint    `json:"room_type_id" binding:"required"`
	RoomNumber    string  `json:"room_number"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   *bool   `json:"is_available"`
}

type updateRoomRequest struct {
	ID uint `json:"id" binding:"required"`
	createRoomRequest
}

func (req *createRoomRequest) toModel() models.Room {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return models.Room{
		HotelID:       req.HotelID,
		RoomTypeID:    req.RoomTypeID,
		RoomNumber:    strings.TrimSpace(req.RoomNumber),
		PricePerNight: req.PricePerNight,
		IsAvailable:   available,
	}
}

// GetRooms handles GET /rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.service.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID handles GET /rooms/:id.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.service.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /rooms. Fails with 400 when hotel_id or
// room_type_id does not resolve to an existing record.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	room := req.toModel()
	if err := rc.service.Create(&room); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /rooms.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	room := req.toModel()
	room.ID = req.ID
	if err := rc.service.Update(&room); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:id.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}

// SearchAvailableRooms handles GET /rooms/search/available_rooms.
func (rc *RoomController) SearchAvailableRooms(c *gin.Context) {
	rooms, err := rc.service.SearchAvailable()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
