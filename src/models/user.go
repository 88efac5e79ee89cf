package models

import "stays/src/types"

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `gorm:"uniqueIndex" json:"email,omitempty"`
	Role  string `json:"role,omitempty"`

	Listings []Listing `gorm:"foreignKey:host_id" json:"listings,omitempty"`
	Bookings []Booking `gorm:"foreignKey:guest_id" json:"bookings,omitempty"`

	types.Timestamps
}
