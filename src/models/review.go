package models

import "stays/src/types"

// One review per (listing, user) pair. A second submission overwrites
// the first through an upsert on the composite unique index.
type Review struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ListingID uint   `gorm:"uniqueIndex:idx_reviews_listing_user" json:"listing_id,omitempty"`
	UserID    uint   `gorm:"uniqueIndex:idx_reviews_listing_user" json:"user_id,omitempty"`
	Rating    int    `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `json:"comment,omitempty"`

	Listing *Listing `gorm:"foreignKey:listing_id" json:"-"`
	User    *User    `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
