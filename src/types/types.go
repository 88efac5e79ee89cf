package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported source type for JSONB")
	}
}

// StringList maps a JSON array column onto a string slice. Used for
// listing amenities.
type StringList []string

func (a StringList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringList) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported source type for StringList")
	}
}

// Handler consumes a raw queue message body.
type Handler func(payload string)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateListingRequestBody struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description,omitempty"`
	Location      string   `json:"location" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"min=0"`
	MaxGuests     uint     `json:"max_guests,omitempty" binding:"omitempty,min=1"`
	Amenities     []string `json:"amenities,omitempty"`
	Available     *bool    `json:"available,omitempty"`
}

type UpdateListingRequestBody struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Location      *string  `json:"location,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty" binding:"omitempty,min=0"`
	MaxGuests     *uint    `json:"max_guests,omitempty" binding:"omitempty,min=1"`
	Amenities     []string `json:"amenities,omitempty"`
	Available     *bool    `json:"available,omitempty"`
}

type CreateBookingRequestBody struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required,bookingdate"`
	EndDate   string `json:"end_date" binding:"required,bookingdate,gtdate=StartDate"`
}

type CreateReviewRequestBody struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

type InitiatePaymentRequestBody struct {
	BookingReference string  `json:"booking_reference" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELED  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "Pending"
	PAYMENT_COMPLETED PaymentStatus = "Completed"
	PAYMENT_FAILED    PaymentStatus = "Failed"
)
