package models

import "stays/src/types"

type Listing struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	HostID        uint              `gorm:"index" json:"host_id,omitempty"`
	Title         string            `json:"title,omitempty"`
	Slug          string            `json:"slug,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Location      string            `gorm:"index" json:"location,omitempty"`
	PricePerNight float64           `gorm:"check:price_per_night >= 0" json:"price_per_night"`
	MaxGuests     uint              `gorm:"default:1" json:"max_guests,omitempty"`
	Amenities     *types.StringList `gorm:"type:jsonb" json:"amenities,omitempty"`
	Available     bool              `gorm:"default:true" json:"available"`

	Host     *User     `gorm:"foreignKey:host_id" json:"host,omitempty"`
	Bookings []Booking `gorm:"foreignKey:listing_id" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:listing_id" json:"reviews,omitempty"`

	types.Timestamps
}
