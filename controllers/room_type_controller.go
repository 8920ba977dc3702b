package controllers

import (
	"net/http"

	"github.com/MilanaErmolina/Api-hotel/models"
	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	service *services.RoomTypeService
}

func NewRoomTypeController(s *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{service: s}
}

type createRoomTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type updateRoomTypeRequest struct {
	ID uint `json:"id" binding:"required"`
	createRoomTypeRequest
}

// GetRoomTypes handles GET /room_types.
func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.service.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// GetRoomTypeByID handles GET /room_types/:id.
func (rtc *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rt, err := rtc.service.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// CreateRoomType handles POST /room_types.
func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req createRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	rt := models.RoomType{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}
	if err := rtc.service.Create(&rt); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// UpdateRoomType handles PUT /room_types.
func (rtc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	var req updateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	rt := models.RoomType{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}
	if err := rtc.service.Update(&rt); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// DeleteRoomType handles DELETE /room_types/:id.
func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rtc.service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room type deleted successfully")
}
