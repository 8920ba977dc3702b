package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MilanaErmolina/Api-hotel/services"
	"github.com/MilanaErmolina/Api-hotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// MySQL error numbers for constraint violations. The services pre-validate
// references, but a parent can vanish between the check and the write; the
// store's own constraint error must then map onto the same statuses.
const (
	mysqlErrNoReferencedRow = 1452 // insert/update hits a missing parent
	mysqlErrRowIsReferenced = 1451 // delete blocked by child rows
	mysqlErrDuplicateEntry  = 1062
)

// parseID reads the :id path segment. A non-numeric id is rejected here so
// it never reaches a service.
func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id64), true
}

// writeServiceError maps service errors onto HTTP responses. The not-found
// detail strings are part of the API contract.
func writeServiceError(c *gin.Context, err error) {
	var mysqlErr *mysql.MySQLError
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		utils.JSONDetail(c, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONDetail(c, http.StatusNotFound, "Room type not found")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONDetail(c, http.StatusNotFound, "Room not found")
	case errors.Is(err, services.ErrGuestNotFound):
		utils.JSONDetail(c, http.StatusNotFound, "Guest not found")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONDetail(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrInvalidReference):
		utils.JSONDetail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInUse):
		utils.JSONDetail(c, http.StatusConflict, err.Error())
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoReferencedRow:
		utils.JSONDetail(c, http.StatusBadRequest, services.ErrInvalidReference.Error())
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrRowIsReferenced:
		utils.JSONDetail(c, http.StatusConflict, services.ErrInUse.Error())
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry:
		utils.JSONDetail(c, http.StatusConflict, "Duplicate record")
	default:
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Database error")
	}
}
