package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MilanaErmolina/Api-hotel/services"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

func serviceErrorResponse(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeServiceError(c, err)
	return w
}

func TestWriteServiceErrorSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"hotel not found", services.ErrHotelNotFound, http.StatusNotFound},
		{"booking not found", services.ErrBookingNotFound, http.StatusNotFound},
		{"wrapped invalid reference", fmt.Errorf("%w: hotel 9 does not exist", services.ErrInvalidReference), http.StatusBadRequest},
		{"wrapped in use", fmt.Errorf("%w: hotel 9 still has 1 room(s)", services.ErrInUse), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := serviceErrorResponse(t, tc.err); w.Code != tc.code {
				t.Fatalf("got %d, want %d (body %s)", w.Code, tc.code, w.Body.String())
			}
		})
	}
}

// Constraint failures raised by MySQL itself (a parent deleted between the
// service's pre-check and the write) must not surface as a blank 500.
func TestWriteServiceErrorMySQLConstraints(t *testing.T) {
	cases := []struct {
		name   string
		number uint16
		code   int
	}{
		{"missing parent row", mysqlErrNoReferencedRow, http.StatusBadRequest},
		{"referenced by child rows", mysqlErrRowIsReferenced, http.StatusConflict},
		{"duplicate entry", mysqlErrDuplicateEntry, http.StatusConflict},
		{"unrelated driver error", 1205, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := fmt.Errorf("create: %w", &mysql.MySQLError{Number: tc.number, Message: tc.name})
			if w := serviceErrorResponse(t, err); w.Code != tc.code {
				t.Fatalf("error %d: got %d, want %d (body %s)", tc.number, w.Code, tc.code, w.Body.String())
			}
		})
	}
}
