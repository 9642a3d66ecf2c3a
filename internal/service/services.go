package service

import (
	"github.com/oklog/ulid/v2"
	"github.com/yardsolutions/quotes-backend/internal/repository"
	"github.com/yardsolutions/quotes-backend/internal/server"
)

type Services struct {
	Quote *QuoteService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	// Queued delivery hands the email to a worker; otherwise it is sent inline.
	var notifier QuoteNotifier = s.Email
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Quote: NewQuoteService(QuoteServiceDeps{
			Store:    repos.Quote,
			Images:   s.Storage,
			Notifier: notifier,
			SiteHost: s.Config.SiteHost(),
			NewName:  newObjectName,
		}),
	}
}

func newObjectName() string {
	return ulid.Make().String()
}
