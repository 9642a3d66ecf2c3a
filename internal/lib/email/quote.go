package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// QuoteEmail holds the values of a quote confirmation.
type QuoteEmail struct {
	ToEmail          string `json:"to_email"`
	ToName           string `json:"to_name"`
	JobType          string `json:"job_type"`
	URL              string `json:"url"`
	PreferredContact string `json:"preferred_contact"`
}

type quoteTemplateData struct {
	BusinessName     string
	JobType          string
	URL              string
	PreferredContact string
	Email            string
}

// SendQuoteEmail sends one confirmation to the submitter and the business inbox.
func (c *Client) SendQuoteEmail(ctx context.Context, q QuoteEmail) error {
	params, err := c.buildQuoteEmail(q)
	if err != nil {
		return err
	}
	return c.send(ctx, params)
}

func (c *Client) buildQuoteEmail(q QuoteEmail) (*resend.SendEmailRequest, error) {
	html, err := Render(TemplateQuoteConfirmation, quoteTemplateData{
		BusinessName:     c.businessName,
		JobType:          q.JobType,
		URL:              q.URL,
		PreferredContact: q.PreferredContact,
		Email:            q.ToEmail,
	})
	if err != nil {
		return nil, err
	}

	return &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{recipient(q.ToName, q.ToEmail), recipient(c.businessName, c.businessAddress)},
		ReplyTo: c.businessAddress,
		Subject: fmt.Sprintf("Your %s quote request", q.JobType),
		Html:    html,
		Tags: []resend.Tag{
			{Name: "category", Value: "quote_confirmation"},
		},
	}, nil
}

var nameReplacer = strings.NewReplacer("<", "", ">", "", `"`, "", ",", "", ";", "")

// recipient formats "Name <address>", falling back to the bare address.
func recipient(name, address string) string {
	name = strings.TrimSpace(nameReplacer.Replace(name))
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
