package models

import (
	"stays/src/types"
	"time"
)

type Booking struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	ListingID  uint                `gorm:"index" json:"listing_id,omitempty"`
	GuestID    uint                `gorm:"index" json:"guest_id,omitempty"`
	StartDate  time.Time           `json:"start_date,omitempty"`
	EndDate    time.Time           `json:"end_date,omitempty"`
	TotalPrice float64             `gorm:"check:total_price >= 0" json:"total_price"`
	Status     types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`

	Listing *Listing `gorm:"foreignKey:listing_id" json:"listing,omitempty"`
	Guest   *User    `gorm:"foreignKey:guest_id" json:"guest,omitempty"`

	types.Timestamps
}

// Nights returns the booked duration in whole days. Dates are date-only
// so the difference is always a multiple of 24h.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
