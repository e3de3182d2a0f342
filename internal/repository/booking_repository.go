package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelier/internal/model"
)

// BookingRepository defines booking persistence operations. Room helpers
// are part of this interface because the booking aggregate owns the
// conflict check and the room-status cascade, both of which must run in
// the same transaction as the booking write.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	FindOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error
	LockRoom(ctx context.Context, roomID uuid.UUID) (*model.Room, error)
	SetRoomStatus(ctx context.Context, roomID uuid.UUID, status model.RoomStatus) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByID finds a booking by ID.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUser lists a user's bookings, most recent check-in first.
func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("check_in_date desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListAll lists every booking with user and room loaded, most recent
// check-in first.
func (r *bookingRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Order("check_in_date desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping returns a non-cancelled booking for the room whose
// [check-in, check-out) range overlaps the given one. Two ranges
// overlap iff a.in < b.out AND b.in < a.out.
func (r *bookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
			roomID, model.BookingStatusCancelled, checkOut, checkIn).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus updates only the status of a booking.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// LockRoom fetches a room with a row-level lock so the overlap check
// and insert are serialized per room.
func (r *bookingRepository) LockRoom(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", roomID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// SetRoomStatus applies the room-status cascade of a booking transition.
func (r *bookingRepository) SetRoomStatus(ctx context.Context, roomID uuid.UUID, status model.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error
}

// WithTransaction executes a function within a database transaction.
func (r *bookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &bookingRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
