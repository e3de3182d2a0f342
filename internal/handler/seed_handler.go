package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/service"
)

// SeedHandler handles development seed endpoints.
type SeedHandler struct {
	roomService service.RoomService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(roomService service.RoomService) *SeedHandler {
	return &SeedHandler{roomService: roomService}
}

// SeedRoomsResponse represents the seed response.
type SeedRoomsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// sampleRooms are the rooms created by the dev seed endpoint. Rooms
// whose number already exists are skipped, so the endpoint is
// idempotent.
func sampleRooms() []model.Room {
	return []model.Room{
		{RoomNumber: "101", Type: "Single", Price: decimal.NewFromInt(80), Description: "Ground floor single"},
		{RoomNumber: "102", Type: "Single", Price: decimal.NewFromInt(80), Description: "Ground floor single"},
		{RoomNumber: "201", Type: "Double", Price: decimal.NewFromInt(120), Description: "Street-side double"},
		{RoomNumber: "202", Type: "Double", Price: decimal.NewFromInt(130), Description: "Courtyard double"},
		{RoomNumber: "301", Type: "Suite", Price: decimal.NewFromInt(250), Description: "Corner suite with balcony"},
	}
}

// SeedRooms godoc
// @Summary Seed sample rooms (development only)
// @Tags seed
// @Produce json
// @Success 200 {object} SeedRoomsResponse
// @Router /seed/rooms [get]
func (h *SeedHandler) SeedRooms(c echo.Context) error {
	ctx := c.Request().Context()

	count := 0
	for _, room := range sampleRooms() {
		r := room
		if _, err := h.roomService.Create(ctx, &r); err != nil {
			if err == errors.ErrRoomNumberTaken {
				continue
			}
			return domainError(err)
		}
		count++
	}

	return c.JSON(http.StatusOK, SeedRoomsResponse{
		Message: "rooms seeded",
		Count:   count,
	})
}
