package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelier/internal/errors"
	"hotelier/internal/model"
	"hotelier/internal/repository"
)

// MockBookingRepository is a mock implementation of BookingRepository.
// WithTransaction runs the callback against the mock itself, so the
// transactional path can be exercised without a database.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*model.Booking, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) LockRoom(ctx context.Context, roomID uuid.UUID) (*model.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

func (m *MockBookingRepository) SetRoomStatus(ctx context.Context, roomID uuid.UUID, status model.RoomStatus) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.BookingRepository) error) error {
	m.Called(ctx, mock.Anything)
	return fn(ctx, m)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date("2024-06-10"), date("2024-06-13")))
	assert.Equal(t, 1, Nights(date("2024-06-10"), date("2024-06-11")))
	assert.Equal(t, 0, Nights(date("2024-06-10"), date("2024-06-10")))
	assert.Equal(t, -2, Nights(date("2024-06-12"), date("2024-06-10")))
}

func TestBookingService_Create(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()
	room := &model.Room{
		ID:         roomID,
		RoomNumber: "201",
		Price:      decimal.NewFromInt(100),
		Status:     model.RoomStatusAvailable,
	}

	tests := []struct {
		name          string
		input         CreateBookingInput
		setupMock     func(*MockBookingRepository)
		expectedError error
		check         func(*testing.T, *model.Booking)
	}{
		{
			name: "successful booking",
			input: CreateBookingInput{
				RoomID:       roomID,
				CheckInDate:  date("2024-06-10"),
				CheckOutDate: date("2024-06-13"),
				Adults:       2,
				Children:     1,
			},
			setupMock: func(m *MockBookingRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("LockRoom", mock.Anything, roomID).Return(room, nil)
				m.On("FindOverlapping", mock.Anything, roomID, date("2024-06-10"), date("2024-06-13")).
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			check: func(t *testing.T, b *model.Booking) {
				assert.Equal(t, model.BookingStatusBooked, b.Status)
				assert.Equal(t, "201", b.RoomNumber)
				assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(300)), "3 nights at 100 must cost 300, got %s", b.TotalAmount)
				assert.Equal(t, userID, b.UserID)
			},
		},
		{
			name: "checkout equal to checkin",
			input: CreateBookingInput{
				RoomID:       roomID,
				CheckInDate:  date("2024-06-10"),
				CheckOutDate: date("2024-06-10"),
			},
			setupMock:     func(m *MockBookingRepository) {},
			expectedError: errors.ErrInvalidDateRange,
		},
		{
			name: "checkout before checkin",
			input: CreateBookingInput{
				RoomID:       roomID,
				CheckInDate:  date("2024-06-13"),
				CheckOutDate: date("2024-06-10"),
			},
			setupMock:     func(m *MockBookingRepository) {},
			expectedError: errors.ErrInvalidDateRange,
		},
		{
			name: "room does not exist",
			input: CreateBookingInput{
				RoomID:       roomID,
				CheckInDate:  date("2024-06-10"),
				CheckOutDate: date("2024-06-12"),
			},
			setupMock: func(m *MockBookingRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("LockRoom", mock.Anything, roomID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRoomNotFound,
		},
		{
			name: "overlapping booking",
			input: CreateBookingInput{
				RoomID:       roomID,
				CheckInDate:  date("2024-06-11"),
				CheckOutDate: date("2024-06-13"),
			},
			setupMock: func(m *MockBookingRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("LockRoom", mock.Anything, roomID).Return(room, nil)
				m.On("FindOverlapping", mock.Anything, roomID, date("2024-06-11"), date("2024-06-13")).
					Return(&model.Booking{ID: uuid.New()}, nil)
			},
			expectedError: errors.ErrRoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBookingRepository)
			tt.setupMock(mockRepo)

			svc := NewBookingService(mockRepo)
			booking, err := svc.Create(context.Background(), userID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				if tt.check != nil {
					tt.check(t, booking)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// A booking ending exactly when another starts shares no night with it
// and must be accepted; the service relies on the repository's
// half-open range query for that, so here we just pin the dates passed
// through and the computed amount.
func TestBookingService_Create_AdjacentDates(t *testing.T) {
	roomID := uuid.New()
	room := &model.Room{ID: roomID, RoomNumber: "301", Price: decimal.NewFromInt(200)}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("LockRoom", mock.Anything, roomID).Return(room, nil)
	mockRepo.On("FindOverlapping", mock.Anything, roomID, date("2024-06-12"), date("2024-06-14")).
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	svc := NewBookingService(mockRepo)
	booking, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		RoomID:       roomID,
		CheckInDate:  date("2024-06-12"),
		CheckOutDate: date("2024-06-14"),
		Adults:       1,
	})

	assert.NoError(t, err)
	assert.True(t, booking.TotalAmount.Equal(decimal.NewFromInt(400)), "2 nights at 200 must cost 400, got %s", booking.TotalAmount)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Create_DefaultsGuestCounts(t *testing.T) {
	roomID := uuid.New()
	room := &model.Room{ID: roomID, RoomNumber: "101", Price: decimal.NewFromInt(80)}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("LockRoom", mock.Anything, roomID).Return(room, nil)
	mockRepo.On("FindOverlapping", mock.Anything, roomID, mock.Anything, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	svc := NewBookingService(mockRepo)
	booking, err := svc.Create(context.Background(), uuid.New(), CreateBookingInput{
		RoomID:       roomID,
		CheckInDate:  date("2024-06-10"),
		CheckOutDate: date("2024-06-11"),
		Adults:       0,
		Children:     -3,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, booking.Adults)
	assert.Equal(t, 0, booking.Children)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	bookingID := uuid.New()
	roomID := uuid.New()

	tests := []struct {
		name           string
		currentStatus  model.BookingStatus
		targetStatus   model.BookingStatus
		cascadedStatus model.RoomStatus
		expectedError  error
	}{
		{
			name:           "check in",
			currentStatus:  model.BookingStatusBooked,
			targetStatus:   model.BookingStatusCheckedIn,
			cascadedStatus: model.RoomStatusOccupied,
		},
		{
			name:           "check out",
			currentStatus:  model.BookingStatusCheckedIn,
			targetStatus:   model.BookingStatusCheckedOut,
			cascadedStatus: model.RoomStatusCleaning,
		},
		{
			name:           "cancel a booked reservation frees the room",
			currentStatus:  model.BookingStatusBooked,
			targetStatus:   model.BookingStatusCancelled,
			cascadedStatus: model.RoomStatusAvailable,
		},
		{
			name:           "cancel after check-in frees the room",
			currentStatus:  model.BookingStatusCheckedIn,
			targetStatus:   model.BookingStatusCancelled,
			cascadedStatus: model.RoomStatusAvailable,
		},
		{
			name:          "cannot re-open a checked-out booking",
			currentStatus: model.BookingStatusCheckedOut,
			targetStatus:  model.BookingStatusCheckedIn,
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:          "cannot cancel a checked-out booking",
			currentStatus: model.BookingStatusCheckedOut,
			targetStatus:  model.BookingStatusCancelled,
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:          "cannot revive a cancelled booking",
			currentStatus: model.BookingStatusCancelled,
			targetStatus:  model.BookingStatusBooked,
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:          "cannot skip straight to checked out",
			currentStatus: model.BookingStatusBooked,
			targetStatus:  model.BookingStatusCheckedOut,
			expectedError: errors.ErrInvalidTransition,
		},
		{
			name:          "unknown target status",
			currentStatus: model.BookingStatusBooked,
			targetStatus:  model.BookingStatus("upgraded"),
			expectedError: errors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBookingRepository)
			mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
			mockRepo.On("FindByID", mock.Anything, bookingID).Return(&model.Booking{
				ID:     bookingID,
				RoomID: roomID,
				Status: tt.currentStatus,
			}, nil)
			if tt.expectedError == nil {
				mockRepo.On("UpdateStatus", mock.Anything, bookingID, tt.targetStatus).Return(nil)
				mockRepo.On("SetRoomStatus", mock.Anything, roomID, tt.cascadedStatus).Return(nil)
			}

			svc := NewBookingService(mockRepo)
			booking, err := svc.UpdateStatus(context.Background(), bookingID, tt.targetStatus)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.targetStatus, booking.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewBookingService(mockRepo)
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.BookingStatusCheckedIn)

	assert.Equal(t, errors.ErrBookingNotFound, err)
}
