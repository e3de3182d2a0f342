package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusBooked     BookingStatus = "booked"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition. checked_out and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusBooked:
		return target == BookingStatusCheckedIn || target == BookingStatusCancelled
	case BookingStatusCheckedIn:
		return target == BookingStatusCheckedOut || target == BookingStatusCancelled
	}
	return false
}

// RoomStatusAfter returns the room status a transition into s cascades to,
// or false when the transition leaves the room untouched.
func (s BookingStatus) RoomStatusAfter() (RoomStatus, bool) {
	switch s {
	case BookingStatusCheckedIn:
		return RoomStatusOccupied, true
	case BookingStatusCheckedOut:
		return RoomStatusCleaning, true
	case BookingStatusCancelled:
		return RoomStatusAvailable, true
	}
	return "", false
}

// Booking represents a reservation of a room for a date range.
// RoomNumber is a snapshot taken at creation so history survives
// later renumbering of the room.
type Booking struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	RoomID          uuid.UUID       `json:"room_id" gorm:"type:char(36);not null;index"`
	RoomNumber      string          `json:"room_number" gorm:"size:20"`
	CheckInDate     time.Time       `json:"check_in_date" gorm:"not null;index"`
	CheckOutDate    time.Time       `json:"check_out_date" gorm:"not null"`
	Adults          int             `json:"adults" gorm:"not null;default:1"`
	Children        int             `json:"children" gorm:"not null;default:0"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	SpecialRequests string          `json:"special_requests,omitempty" gorm:"type:text"`
	Status          BookingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'booked';index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
