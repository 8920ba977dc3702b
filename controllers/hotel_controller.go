package controllers

import (
	"net/http"

	"github.com/MilanaErmolina/Api-hotel/models"
	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	service *services.HotelService
}

func NewHotelController(s *services.HotelService) *HotelController {
	return &HotelController{service: s}
}

type createHotelRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Rating  float64 `json:"rating"`
}

type updateHotelRequest struct {
	ID uint `json:"id" binding:"required"`
	createHotelRequest
}

// GetHotels handles GET /hotels.
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.service.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotelByID handles GET /hotels/:id.
func (hc *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	hotel, err := hc.service.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// CreateHotel handles POST /hotels.
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	hotel := models.Hotel{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Rating:  req.Rating,
	}
	if err := hc.service.Create(&hotel); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /hotels. The id rides in the body and every field
// is replaced.
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var req updateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	hotel := models.Hotel{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Rating:  req.Rating,
	}
	if err := hc.service.Update(&hotel); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DeleteHotel handles DELETE /hotels/:id.
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := hc.service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hotel deleted successfully")
}

// GetHotelRooms handles GET /hotels/:id/rooms.
func (hc *HotelController) GetHotelRooms(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rooms, err := hc.service.ListRooms(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
