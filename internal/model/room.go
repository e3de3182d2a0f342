package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomStatus represents the operational status of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Valid reports whether s is one of the four known room statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusCleaning, RoomStatusMaintenance:
		return true
	}
	return false
}

// Room represents a bookable hotel room.
type Room struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	RoomNumber  string          `json:"room_number" gorm:"uniqueIndex;size:20;not null"`
	Type        string          `json:"type" gorm:"size:100;not null"` // e.g. Single, Suite
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Status      RoomStatus      `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	Description string          `json:"description" gorm:"type:text"`
	Images      []string        `json:"imgs" gorm:"serializer:json"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
