package common

import (
	"log"
	"os"
	awslib "stays/src/lib/aws"
)

// QueueConsumers starts the background workers that drain the durable
// task queues. Local environments consume from Kafka, everything else
// from SQS.
func QueueConsumers() {
	if os.Getenv("API_ENV") == "local" {
		go KafkaBookingConfirmationsConsumer()
		return
	}
	dlq := awslib.NewSQSConsumer("DLQ", func(payload string) {
		log.Println("DLQ: message received")
	})
	dlq.Listen()
	go BookingConfirmationsConsumer()
}
