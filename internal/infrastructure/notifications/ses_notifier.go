package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"renovahub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMissingSenderAddress = errors.New("missing NOTIFICATIONS_SENDER")

// template bodies keyed by the template names the use cases dispatch.
// Placeholders of the form {key} are substituted from the data map.
var templates = map[string]struct {
	subject string
	body    string
}{
	interfaces.TemplateInspectionScheduled: {
		subject: "Your site inspection is scheduled",
		body:    "The inspection for your renovation request {request_id} is scheduled for {inspection_date}. Bidding opens right after the visit.",
	},
	interfaces.TemplateInspectionCancelled: {
		subject: "Site inspection cancelled",
		body:    "The inspection for renovation request {request_id} has been cancelled by the homeowner. We'll let you know if it is rescheduled.",
	},
	interfaces.TemplateBiddingClosed: {
		subject: "Bidding has closed on your request",
		body:    "The bidding window for your renovation request {request_id} has closed. Log in to review the bids and pick a contractor.",
	},
	interfaces.TemplateBidAccepted: {
		subject: "Congratulations — your bid was accepted",
		body:    "The homeowner selected your bid on renovation request {request_id}. They will be in touch to arrange the start date.",
	},
	interfaces.TemplateBidRejected: {
		subject: "Bid update",
		body:    "The homeowner went with another contractor on renovation request {request_id}. Thanks for bidding — more requests open every day.",
	},
}

// SESNotifier delivers lifecycle notifications through Amazon SES.
//
// Delivery is best-effort by contract: callers log a Send failure and move
// on; a lost email never rolls back a committed transition.

type SESNotifier struct {
	client   *sesv2.Client
	sender   string
	mockMode bool
}

var _ interfaces.INotifier = (*SESNotifier)(nil)

func NewSESNotifier(cfg aws.Config, sender string) (*SESNotifier, error) {
	if isNotifierMockEnabled() {
		log.Printf("[notify][ses] mock mode enabled")
		return &SESNotifier{mockMode: true}, nil
	}

	if strings.TrimSpace(sender) == "" {
		log.Printf("[notify][ses] missing NOTIFICATIONS_SENDER")
		return nil, ErrMissingSenderAddress
	}

	return &SESNotifier{client: sesv2.NewFromConfig(cfg), sender: sender}, nil
}

func (n *SESNotifier) Send(ctx context.Context, recipient string, template string, data map[string]string) error {
	tpl, ok := templates[template]
	if !ok {
		return fmt.Errorf("unknown notification template %q", template)
	}

	subject := render(tpl.subject, data)
	body := render(tpl.body, data)

	if n.mockMode {
		log.Printf("[notify][ses] mock send recipient=%s template=%s subject=%q", recipient, template, subject)
		return nil
	}

	_, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	log.Printf("[notify][ses] sent recipient=%s template=%s", recipient, template)
	return nil
}

func render(s string, data map[string]string) string {
	for k, v := range data {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATIONS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
