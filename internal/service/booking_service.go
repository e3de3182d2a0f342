package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/repository"
)

// CreateBookingInput carries the caller's reservation request.
type CreateBookingInput struct {
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Adults          int
	Children        int
	SpecialRequests string
}

// BookingService drives the reservation lifecycle: creation with
// conflict detection, status transitions with room-status cascades,
// and listings.
type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// Nights returns the length of stay in whole nights, rounded up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Create validates and persists a new booking. The room lock, overlap
// check and insert run in one transaction so two concurrent requests
// for the same room cannot both pass the conflict check. The room's
// status is not touched here; it only changes on lifecycle transitions.
func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*model.Booking, error) {
	nights := Nights(input.CheckInDate, input.CheckOutDate)
	if nights <= 0 {
		return nil, errors.ErrInvalidDateRange
	}

	if input.Adults <= 0 {
		input.Adults = 1
	}
	if input.Children < 0 {
		input.Children = 0
	}

	var booking *model.Booking
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.BookingRepository) error {
		room, err := txRepo.LockRoom(ctx, input.RoomID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return fmt.Errorf("lock room: %w", err)
		}

		_, err = txRepo.FindOverlapping(ctx, input.RoomID, input.CheckInDate, input.CheckOutDate)
		if err == nil {
			return errors.ErrRoomUnavailable
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check overlap: %w", err)
		}

		// Price is snapshotted into the total at creation time; later
		// price changes never recompute it.
		totalAmount := room.Price.Mul(decimal.NewFromInt(int64(nights)))

		booking = &model.Booking{
			UserID:          userID,
			RoomID:          room.ID,
			RoomNumber:      room.RoomNumber,
			CheckInDate:     input.CheckInDate,
			CheckOutDate:    input.CheckOutDate,
			Adults:          input.Adults,
			Children:        input.Children,
			TotalAmount:     totalAmount,
			SpecialRequests: input.SpecialRequests,
			Status:          model.BookingStatusBooked,
		}

		if err := txRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateStatus applies a lifecycle transition and its room-status
// cascade atomically. Only the documented adjacency is accepted;
// checked_out and cancelled are terminal.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	var booking *model.Booking
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.BookingRepository) error {
		current, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookingNotFound
			}
			return fmt.Errorf("find booking: %w", err)
		}

		if !current.Status.CanTransitionTo(status) {
			return errors.ErrInvalidTransition
		}

		if err := txRepo.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		if roomStatus, ok := status.RoomStatusAfter(); ok {
			if err := txRepo.SetRoomStatus(ctx, current.RoomID, roomStatus); err != nil {
				return fmt.Errorf("cascade room status: %w", err)
			}
		}

		current.Status = status
		booking = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// ListMine returns the caller's bookings, most recent check-in first.
func (s *bookingService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking with user and room display fields.
func (s *bookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
