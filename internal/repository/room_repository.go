package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelier/internal/model"
)

// RoomRepository defines room persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create creates a new room.
func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// Update updates an existing room.
func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// FindByID finds a room by ID.
func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByNumber finds a room by its room number.
func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List lists all rooms ordered by room number.
func (r *roomRepository) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).Order("room_number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateStatus updates only the status of a room.
func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a room.
func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Room{}, "id = ?", id).Error
}
