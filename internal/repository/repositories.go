package repository

import (
	"github.com/yardsolutions/quotes-backend/internal/server"
)

// Repositories groups every repository built on the shared pool.
type Repositories struct {
	Quote *QuoteRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Quote: NewQuoteRepository(s.DB.Pool),
	}
}
