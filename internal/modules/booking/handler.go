package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/search", h.SearchRooms)
	rg.GET("/rooms/:id/availability", h.RoomAvailability)
	rg.POST("/bookings", h.CreateReservation)
	rg.GET("/bookings/:id", h.GetReservation)
	rg.DELETE("/bookings/:id", h.CancelReservation)
}

// RegisterStaffRoutes mounts the endpoints reserved for authenticated staff.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListReservations)
}

func (h *Handler) ListRooms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"rooms": h.service.Rooms(c.Request.Context())})
}

func (h *Handler) SearchRooms(c *gin.Context) {
	checkIn, checkOut, ok := h.stayRange(c, c.Query("check_in"), c.Query("check_out"))
	if !ok {
		return
	}

	rooms, err := h.service.Search(c.Request.Context(), c.Query("category"), checkIn, checkOut)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) RoomAvailability(c *gin.Context) {
	checkIn, checkOut, ok := h.stayRange(c, c.Query("check_in"), c.Query("check_out"))
	if !ok {
		return
	}

	roomID := c.Param("id")
	if !h.roomExists(c, roomID) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown room")
		return
	}

	available := h.service.IsAvailable(c.Request.Context(), roomID, checkIn, checkOut)
	response.Success(c, http.StatusOK, gin.H{
		"room_id":   roomID,
		"check_in":  checkIn.Format(domain.DateLayout),
		"check_out": checkOut.Format(domain.DateLayout),
		"available": available,
	})
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, checkOut, ok := h.stayRange(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	res, err := h.service.Book(c.Request.Context(), BookRequest{
		CustomerName: req.CustomerName,
		Category:     req.Category,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CardNumber:   req.CardNumber,
		CVV:          req.CVV,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case errors.Is(err, ErrNotAvailable):
			response.Error(c, http.StatusConflict, "NO_ROOMS_AVAILABLE", "No rooms available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	if res.Status != domain.StatusConfirmed {
		// Declined attempts are persisted for audit before this response.
		response.ErrorWithDetails(c, http.StatusPaymentRequired, "PAYMENT_DECLINED",
			"Payment was declined; the attempt was recorded", gin.H{"reservation": res})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) GetReservation(c *gin.Context) {
	res, err := h.service.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	res, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Reservation is already cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) ListReservations(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"reservations": h.service.ListAll(c.Request.Context()),
	})
}

// stayRange parses and validates a check-in/check-out pair, writing the
// error response itself when validation fails. Check-in may not be in the
// past; that rule lives here so historical data stays loadable.
func (h *Handler) stayRange(c *gin.Context, inStr, outStr string) (time.Time, time.Time, bool) {
	checkIn, err := time.ParseInLocation(domain.DateLayout, inStr, time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := time.ParseInLocation(domain.DateLayout, outStr, time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	if !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
		return time.Time{}, time.Time{}, false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in cannot be in the past")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func (h *Handler) roomExists(c *gin.Context, roomID string) bool {
	for _, r := range h.service.Rooms(c.Request.Context()) {
		if r.ID == roomID {
			return true
		}
	}
	return false
}
