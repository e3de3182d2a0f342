package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelier/internal/cache"
	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/repository"
)

const (
	roomListCacheKey = "rooms:all"
	roomListCacheTTL = 5 * time.Minute
)

// RoomUpdate carries a partial room update. Nil fields are left unchanged.
type RoomUpdate struct {
	RoomNumber  *string
	Type        *string
	Price       *decimal.Decimal
	Description *string
	Status      *model.RoomStatus
	Images      []string
}

// RoomService handles room inventory operations.
type RoomService interface {
	List(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) (*model.Room, error)
	Update(ctx context.Context, id uuid.UUID, update RoomUpdate) (*model.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoomStatus) (*model.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	repo  repository.RoomRepository
	cache *cache.Client
}

// NewRoomService creates a new room service.
func NewRoomService(repo repository.RoomRepository, cache *cache.Client) RoomService {
	return &roomService{repo: repo, cache: cache}
}

// List returns all rooms ordered by room number, served from the Redis
// cache when warm. The public room listing is the hottest read in the
// system.
func (s *roomService) List(ctx context.Context) ([]model.Room, error) {
	if data, _ := s.cache.Get(ctx, roomListCacheKey); data != nil {
		var cached []model.Room
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	if payload, err := json.Marshal(rooms); err == nil {
		_ = s.cache.Set(ctx, roomListCacheKey, payload, roomListCacheTTL)
	}

	return rooms, nil
}

// Get returns a single room by ID.
func (s *roomService) Get(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return room, nil
}

// Create adds a new room. Room numbers are unique; new rooms always
// start out available.
func (s *roomService) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	existing, err := s.repo.FindByNumber(ctx, room.RoomNumber)
	if err == nil && existing != nil {
		return nil, errors.ErrRoomNumberTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check room number: %w", err)
	}

	room.Status = model.RoomStatusAvailable
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	_ = s.cache.Delete(ctx, roomListCacheKey)
	return room, nil
}

// Update applies a partial update; only supplied fields are changed.
func (s *roomService) Update(ctx context.Context, id uuid.UUID, update RoomUpdate) (*model.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.RoomNumber != nil && *update.RoomNumber != room.RoomNumber {
		existing, err := s.repo.FindByNumber(ctx, *update.RoomNumber)
		if err == nil && existing != nil {
			return nil, errors.ErrRoomNumberTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check room number: %w", err)
		}
		room.RoomNumber = *update.RoomNumber
	}
	if update.Type != nil {
		room.Type = *update.Type
	}
	if update.Price != nil {
		room.Price = *update.Price
	}
	if update.Description != nil {
		room.Description = *update.Description
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, errors.ErrInvalidRoomStatus
		}
		room.Status = *update.Status
	}
	if update.Images != nil {
		room.Images = update.Images
	}

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	_ = s.cache.Delete(ctx, roomListCacheKey)
	return room, nil
}

// UpdateStatus is the quick status toggle used by housekeeping. It is
// independent of the booking lifecycle; room status is the
// authoritative operational state.
func (s *roomService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoomStatus) (*model.Room, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidRoomStatus
	}

	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update room status: %w", err)
	}
	room.Status = status

	_ = s.cache.Delete(ctx, roomListCacheKey)
	return room, nil
}

// Delete removes a room. Bookings keep their room-number snapshot, so
// history is unaffected.
func (s *roomService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	_ = s.cache.Delete(ctx, roomListCacheKey)
	return nil
}
