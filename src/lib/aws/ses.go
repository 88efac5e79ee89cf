package aws

import (
	"context"
	"log"
	"stays/src/lib"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

func SESSendMessage(from string, to []string, subject string, body string) {
	c := lib.AWSGetSESClient()
	input := &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: to,
		},
		Source: aws.String(from),
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	}
	out, err := c.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("Error sending email: %s\n", err.Error())
		return
	}
	log.Printf("Sent email with id: %s\n", *out.MessageId)
}
