package models

import (
	"stays/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment mirrors an external gateway transaction. BookingReference is a
// loose correlation key, not a foreign key: the gateway owns transaction
// identity and a Payment may exist before or without a Booking row.
type Payment struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`

	BookingReference string              `gorm:"index" json:"booking_reference"`
	TransactionID    *string             `gorm:"uniqueIndex" json:"transaction_id,omitempty"`
	Amount           float64             `gorm:"check:amount >= 0" json:"amount"`
	Status           types.PaymentStatus `gorm:"default:'Pending'" json:"status"`

	types.Timestamps
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Terminal reports whether the payment has reached a final state.
func (p *Payment) Terminal() bool {
	return p.Status == types.PAYMENT_COMPLETED || p.Status == types.PAYMENT_FAILED
}

// CanTransitionTo enforces the Pending -> Completed | Failed machine.
// Re-applying the current terminal status is allowed so that duplicate
// gateway verifications stay idempotent.
func (p *Payment) CanTransitionTo(next types.PaymentStatus) bool {
	if p.Status == types.PAYMENT_PENDING {
		return next == types.PAYMENT_COMPLETED || next == types.PAYMENT_FAILED
	}
	return p.Status == next
}
