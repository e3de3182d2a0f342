package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotelier/internal/auth"
	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/service"
)

// dateLayout is the wire format for check-in/check-out dates.
const dateLayout = "2006-01-02"

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a reservation request.
type CreateBookingRequest struct {
	RoomID          string `json:"room_id" validate:"required"`
	CheckInDate     string `json:"check_in_date" validate:"required"`
	CheckOutDate    string `json:"check_out_date" validate:"required"`
	Adults          int    `json:"adults" validate:"omitempty,min=1"`
	Children        int    `json:"children" validate:"omitempty,min=0"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingStatusRequest represents a lifecycle transition request.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateBooking godoc
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	claims, ok := auth.FromEchoContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Msg:  "Token is not valid",
			Code: "UNAUTHENTICATED",
		})
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return requestError("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return requestError(err.Error())
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return domainError(errors.ErrRoomNotFound)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return domainError(errors.ErrInvalidDateRange)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return domainError(errors.ErrInvalidDateRange)
	}

	booking, err := h.bookingService.Create(c.Request().Context(), claims.UserID, service.CreateBookingInput{
		RoomID:          roomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, booking)
}

// MyBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Router /bookings/my-bookings [get]
func (h *BookingHandler) MyBookings(c echo.Context) error {
	claims, ok := auth.FromEchoContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Msg:  "Token is not valid",
			Code: "UNAUTHENTICATED",
		})
	}

	bookings, err := h.bookingService.ListMine(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// AllBookings godoc
// @Summary List every booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /bookings/all [get]
func (h *BookingHandler) AllBookings(c echo.Context) error {
	bookings, err := h.bookingService.ListAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus godoc
// @Summary Check in, check out or cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainError(errors.ErrBookingNotFound)
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return requestError("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return requestError(err.Error())
	}

	booking, err := h.bookingService.UpdateStatus(c.Request().Context(), id, model.BookingStatus(req.Status))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, booking)
}
