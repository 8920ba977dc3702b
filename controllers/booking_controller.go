package controllers

import (
	"net/http"

	"github.com/MilanaErmolina/Api-hotel/models"
	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{service: s}
}

type createBookingRequest struct {
	GuestID      uint        `json:"guest_id" binding:"required"`
	RoomID       uint        `json:"room_id" binding:"required"`
	CheckInDate  models.Date `json:"check_in_date" binding:"required"`
	CheckOutDate models.Date `json:"check_out_date" binding:"required"`
	TotalPrice   float64     `json:"total_price"`
	Status       string      `json:"status"`
}

type updateBookingRequest struct {
	ID uint `json:"id" binding:"required"`
	createBookingRequest
}

func (req *createBookingRequest) toModel() models.Booking {
	status := req.Status
	if status == "" {
		status = "confirmed"
	}
	return models.Booking{
		GuestID:      req.GuestID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   req.TotalPrice,
		Status:       status,
	}
}

// GetBookings handles GET /bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.service.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /bookings/:id.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.service.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /bookings. Fails with 400 when guest_id or
// room_id does not resolve to an existing record.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	booking := req.toModel()
	if err := bc.service.Create(&booking); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking handles PUT /bookings.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	booking := req.toModel()
	booking.ID = req.ID
	if err := bc.service.Update(&booking); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles DELETE /bookings/:id.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bc.service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking deleted successfully")
}
