// Package email sends transactional email through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/yardsolutions/quotes-backend/internal/config"
)

// Sender is the subset of the Resend emails service used by Client.
type Sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	sender          Sender
	from            string
	businessAddress string
	businessName    string
	logger          *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithSender(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Email, logger)
}

// NewClientWithSender builds a Client around an existing Sender.
func NewClientWithSender(sender Sender, cfg config.EmailConfig, logger *zerolog.Logger) *Client {
	return &Client{
		sender:          sender,
		from:            cfg.From,
		businessAddress: cfg.BusinessAddress,
		businessName:    cfg.BusinessName,
		logger:          logger,
	}
}

// Render executes a named template with data.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(name)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

func (c *Client) send(ctx context.Context, params *resend.SendEmailRequest) error {
	resp, err := c.sender.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", resp.Id).
		Strs("to", params.To).
		Msg("email sent")

	return nil
}
