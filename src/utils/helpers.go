package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"stays/src/config"
	"stays/src/db"
	"stays/src/lib"
	"stays/src/models"
	"stays/src/types"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// ParseBookingDates parses a date-only range and enforces end > start.
func ParseBookingDates(startDate string, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(config.DATE_PARSE_FORMAT, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", types.ErrInvalidDateRange, err.Error())
	}
	end, err := time.Parse(config.DATE_PARSE_FORMAT, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", types.ErrInvalidDateRange, err.Error())
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, types.ErrInvalidDateRange
	}
	return start, end, nil
}

// ComputeTotalPrice freezes the booking total at creation time:
// price_per_night times the number of nights.
func ComputeTotalPrice(pricePerNight float64, start time.Time, end time.Time) float64 {
	nights := int(end.Sub(start).Hours() / 24)
	return pricePerNight * float64(nights)
}

// CreateBooking validates and persists a booking in a single transaction.
// A date range overlapping a confirmed booking for the same listing is
// rejected; a per-listing lock serializes concurrent creators across
// processes while the overlap check inside the transaction remains the
// authoritative guard.
func CreateBooking(params *types.CreateBookingRequestBody, guestId uint) (*models.Booking, error) {
	start, end, err := ParseBookingDates(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	release, ok := lib.AcquireListingLock(params.ListingID, 5*time.Second)
	if !ok {
		return nil, types.ErrListingUnavailable
	}
	defer release()

	var booking *models.Booking
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.
			Model(&models.Listing{}).
			Where(&models.Listing{ID: params.ListingID}).
			First(&listing).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrListingUnavailable
			}
			return err
		}
		if !listing.Available {
			return types.ErrListingUnavailable
		}
		var overlapping int64
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ListingID: listing.ID, Status: types.BOOKING_CONFIRMED}).
			Where("start_date < ? AND end_date > ?", end, start).
			Count(&overlapping).
			Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return types.ErrListingUnavailable
		}
		b := models.Booking{
			ListingID:  listing.ID,
			GuestID:    guestId,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: ComputeTotalPrice(listing.PricePerNight, start, end),
			Status:     types.BOOKING_CONFIRMED,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		b.Listing = &listing
		booking = &b
		return nil
	})
	if err != nil {
		log.Printf("CreateBooking failed: %s\n", err.Error())
		return nil, err
	}
	return booking, nil
}

// GetListingAverageRating computes the mean of all current ratings on
// every call. Zero reviews yield 0.0, never an error.
func GetListingAverageRating(tx *gorm.DB, listingId uint) float64 {
	var avg *float64
	if err := tx.
		Model(&models.Review{}).
		Where(&models.Review{ListingID: listingId}).
		Select("AVG(rating)").
		Scan(&avg).
		Error; err != nil {
		log.Printf("Error computing average rating for listing %d: %s\n", listingId, err.Error())
		return 0
	}
	if avg == nil {
		return 0
	}
	return *avg
}

// VerifyPayment reconciles a Payment against the gateway outcome and
// returns the resulting status. The gateway is the sole authority: no
// local transition happens without a confirmed gateway response, and a
// transport or parse failure leaves the row untouched.
func VerifyPayment(ctx context.Context, txRef string) (types.PaymentStatus, error) {
	db := db.GetDb()
	var payment models.Payment
	if err := db.
		Model(&models.Payment{}).
		Where(&models.Payment{TransactionID: &txRef}).
		First(&payment).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", types.ErrTransactionNotFound
		}
		return "", err
	}

	success, err := lib.GetChapaClient().VerifyTransaction(ctx, txRef)
	if err != nil {
		return "", err
	}
	next := types.PAYMENT_FAILED
	if success {
		next = types.PAYMENT_COMPLETED
	}
	if !payment.CanTransitionTo(next) {
		log.Printf("Payment [%s] already %s; keeping recorded outcome over gateway status %s\n", payment.ID, payment.Status, next)
		return payment.Status, nil
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.Payment{}).
			Where(&models.Payment{ID: payment.ID}).
			Where("status IN ?", []types.PaymentStatus{types.PAYMENT_PENDING, next}).
			Update("status", next).
			Error
	})
	if err != nil {
		return "", err
	}
	return next, nil
}

func GenerateJWT(email string, userId uint) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userId),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// WithSuffix namespaces queue names per environment.
func WithSuffix(name string) string {
	suffix := os.Getenv("QUEUE_SUFFIX")
	if suffix == "" {
		return name
	}
	return fmt.Sprintf("%s_%s", name, suffix)
}
