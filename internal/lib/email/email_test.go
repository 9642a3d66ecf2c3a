package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/yardsolutions/quotes-backend/internal/config"
)

type fakeSender struct {
	calls []*resend.SendEmailRequest
	err   error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func newTestClient(sender Sender) *Client {
	logger := zerolog.Nop()
	return NewClientWithSender(sender, config.EmailConfig{
		From:            "Yard Solutions <quotes@yardsolutionskc.com>",
		BusinessAddress: "owner@yardsolutionskc.com",
		BusinessName:    "Yard Solutions LLC",
	}, &logger)
}

func sampleQuoteEmail() QuoteEmail {
	return QuoteEmail{
		ToEmail:          "ada@example.com",
		ToName:           "Ada Lovelace",
		JobType:          "snow removal",
		URL:              "https://yardsolutionskc.com/quotes/3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b",
		PreferredContact: "816-555-0134",
	}
}

func TestBuildQuoteEmail(t *testing.T) {
	c := newTestClient(&fakeSender{})

	req, err := c.buildQuoteEmail(sampleQuoteEmail())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	wantTo := []string{"Ada Lovelace <ada@example.com>", "Yard Solutions LLC <owner@yardsolutionskc.com>"}
	if len(req.To) != 2 || req.To[0] != wantTo[0] || req.To[1] != wantTo[1] {
		t.Errorf("unexpected recipients %v", req.To)
	}
	if req.From != "Yard Solutions <quotes@yardsolutionskc.com>" {
		t.Errorf("unexpected from %q", req.From)
	}

	for _, want := range []string{
		"snow removal",
		"https://yardsolutionskc.com/quotes/3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b",
		"816-555-0134",
		"ada@example.com",
	} {
		if !strings.Contains(req.Html, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestBuildQuoteEmailWithoutPhone(t *testing.T) {
	c := newTestClient(&fakeSender{})

	q := sampleQuoteEmail()
	q.PreferredContact = ""

	req, err := c.buildQuoteEmail(q)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(req.Html, "No phone number was provided.") {
		t.Error("expected missing phone notice")
	}
}

func TestSendQuoteEmail(t *testing.T) {
	sender := &fakeSender{}
	c := newTestClient(sender)

	if err := c.SendQuoteEmail(context.Background(), sampleQuoteEmail()); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(sender.calls) != 1 {
		t.Fatalf("expected one send, got %d", len(sender.calls))
	}

	sender.err = errors.New("rate limited")
	if err := c.SendQuoteEmail(context.Background(), sampleQuoteEmail()); err == nil {
		t.Fatal("expected send error")
	}
	if len(sender.calls) != 2 {
		t.Errorf("expected exactly one attempt per call, got %d calls", len(sender.calls))
	}
}

func TestRecipient(t *testing.T) {
	tests := map[[2]string]string{
		{"Ada Lovelace", "a@example.com"}:   "Ada Lovelace <a@example.com>",
		{"", "a@example.com"}:               "a@example.com",
		{"Evil <x>, Name", "a@example.com"}: "Evil x Name <a@example.com>",
	}
	for in, want := range tests {
		if got := recipient(in[0], in[1]); got != want {
			t.Errorf("recipient(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestRenderPreview(t *testing.T) {
	html, err := RenderPreview(TemplateQuoteConfirmation)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(html, "Yard Solutions LLC") {
		t.Error("preview missing business name")
	}

	var unknown *UnknownTemplateError
	if _, err := RenderPreview("nope"); !errors.As(err, &unknown) {
		t.Errorf("expected UnknownTemplateError, got %v", err)
	}
}
