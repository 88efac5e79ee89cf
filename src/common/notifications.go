package common

import (
	"fmt"
	"log"
	"stays/src/config"
	"stays/src/lib"
	awslib "stays/src/lib/aws"
	"stays/src/lib/mailer"
	"stays/src/utils"

	"github.com/tidwall/gjson"
)

// SendBookingConfirmation renders and sends the templated confirmation
// message for one queue payload. Delivery is at-least-once: the queue
// redelivers on worker failure and a duplicate send is tolerable.
func SendBookingConfirmation(spayload string) {
	if !gjson.Valid(spayload) {
		log.Println("Received invalid json body. Aborting")
		return
	}
	email := gjson.Get(spayload, "email").String()
	title := gjson.Get(spayload, "listing_title").String()
	if email == "" {
		log.Println("Confirmation payload has no recipient. Aborting")
		return
	}

	subject := "Booking Confirmation"
	body := fmt.Sprintf("Your booking for %s has been confirmed!", title)

	if utils.IsProd() {
		awslib.SESSendMessage(config.SMTPFrom(), []string{email}, subject, body)
		return
	}
	input := &lib.SendMailInput{
		From:     config.SMTPFrom(),
		FromName: "noreply",
		To:       []string{email},
		Subject:  subject,
		Body:     body,
	}
	if err := lib.SendMail(input); err != nil {
		log.Printf("[MAILER] error sending email: %s\n", err.Error())
		return
	}
	log.Printf("[MAILER]: confirmation has been sent to %s\n", email)
}

func BookingConfirmationsConsumer() {
	qname := utils.WithSuffix(mailer.BookingConfirmationsQueue)
	log.Printf("%s: Listening for messages...", qname)
	c := awslib.NewSQSConsumer(qname, SendBookingConfirmation)
	c.Listen()
}

func KafkaBookingConfirmationsConsumer() {
	topic := utils.WithSuffix(mailer.BookingConfirmationsQueue)
	lib.KafkaConsumer("booking-confirmations", []string{topic}, func(value []byte) {
		SendBookingConfirmation(string(value))
	})
}
