package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("Room not found")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("Booking not found")
	// ErrRoomNumberTaken is returned when creating a room with an existing number.
	ErrRoomNumberTaken = errors.New("Room number already exists")
	// ErrRoomUnavailable is returned when a booking overlaps an existing one.
	ErrRoomUnavailable = errors.New("Room unavailable for these dates")
	// ErrInvalidDateRange is returned when check-out is not after check-in.
	ErrInvalidDateRange = errors.New("Invalid date range")
	// ErrInvalidRoomStatus is returned for a status outside the room status enum.
	ErrInvalidRoomStatus = errors.New("Invalid status type")
	// ErrInvalidTransition is returned for an illegal booking status transition.
	ErrInvalidTransition = errors.New("Invalid booking status transition")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Msg  string `json:"msg"`
	Code string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Msg:  e.Message,
		Code: e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation and
// conflict failures both map to 400, matching the API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrRoomNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROOM_NOT_FOUND")
	case ErrBookingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case ErrRoomNumberTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROOM_NUMBER_TAKEN")
	case ErrRoomUnavailable:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROOM_UNAVAILABLE")
	case ErrInvalidDateRange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case ErrInvalidRoomStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROOM_STATUS")
	case ErrInvalidTransition:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSITION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server Error", "INTERNAL_ERROR")
	}
}
