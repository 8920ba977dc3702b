package controllers

import (
	"net/http"

	"github.com/MilanaErmolina/Api-hotel/models"
	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	service *services.GuestService
}

func NewGuestController(s *services.GuestService) *GuestController {
	return &GuestController{service: s}
}

type createGuestRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type updateGuestRequest struct {
	ID uint `json:"id" binding:"required"`
	createGuestRequest
}

// GetGuests handles GET /guests.
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.service.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuestByID handles GET /guests/:id.
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	guest, err := gc.service.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// CreateGuest handles POST /guests.
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req createGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	guest := models.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := gc.service.Create(&guest); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest handles PUT /guests.
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	var req updateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	guest := models.Guest{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := gc.service.Update(&guest); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /guests/:id.
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := gc.service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Guest deleted successfully")
}
