package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/service"
)

// RoomHandler handles room inventory endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest represents a room creation request.
type CreateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description"`
	Images      []string        `json:"imgs"`
}

// UpdateRoomRequest represents a partial room update; absent fields are
// left unchanged.
type UpdateRoomRequest struct {
	RoomNumber  *string          `json:"room_number"`
	Type        *string          `json:"type"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Images      []string         `json:"imgs"`
}

// UpdateRoomStatusRequest represents a quick status change.
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListRooms godoc
// @Summary List all rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} model.Room
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetRoom godoc
// @Summary Get a single room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} model.Room
// @Failure 404 {object} errors.ErrorResponse
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id can't name any room.
		return domainError(errors.ErrRoomNotFound)
	}

	room, err := h.roomService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// CreateRoom godoc
// @Summary Add a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequest true "Room data"
// @Success 201 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return requestError("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return requestError(err.Error())
	}

	room := &model.Room{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
	}

	created, err := h.roomService.Create(c.Request().Context(), room)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateRoom godoc
// @Summary Update room details
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body UpdateRoomRequest true "Fields to change"
// @Success 200 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainError(errors.ErrRoomNotFound)
	}

	var req UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return requestError("invalid request body")
	}

	update := service.RoomUpdate{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
	}
	if req.Status != nil {
		status := model.RoomStatus(*req.Status)
		update.Status = &status
	}

	room, err := h.roomService.Update(c.Request().Context(), id, update)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoomStatus godoc
// @Summary Quick room status update (housekeeping)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body UpdateRoomStatusRequest true "New status"
// @Success 200 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /rooms/{id}/status [put]
func (h *RoomHandler) UpdateRoomStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainError(errors.ErrRoomNotFound)
	}

	var req UpdateRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return requestError("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return requestError(err.Error())
	}

	room, err := h.roomService.UpdateStatus(c.Request().Context(), id, model.RoomStatus(req.Status))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainError(errors.ErrRoomNotFound)
	}

	if err := h.roomService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Room removed"})
}
