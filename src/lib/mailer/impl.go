package mailer

import (
	"encoding/json"
	"fmt"
	"os"
	"stays/src/lib"
	awslib "stays/src/lib/aws"
	"stays/src/types"
	"stays/src/utils"
)

const BookingConfirmationsQueue = "BookingConfirmations"

// NewBookingConfirmation hands a confirmation task to the durable queue.
// Responsibility ends at a successful enqueue; delivery and retries are
// the queue and worker's concern.
func NewBookingConfirmation(email string, listingTitle string) error {
	payload := &types.JSONB{
		"email":         email,
		"listing_title": listingTitle,
	}
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		if err := lib.KafkaProduceMessage("booking-confirmations", utils.WithSuffix(BookingConfirmationsQueue), *payload); err != nil {
			return fmt.Errorf("error sending message to queue: %s", err.Error())
		}
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := awslib.SQSProduceMessage(utils.WithSuffix(BookingConfirmationsQueue), string(body)); err != nil {
		return fmt.Errorf("error sending message to queue: %s", err.Error())
	}
	return nil
}
