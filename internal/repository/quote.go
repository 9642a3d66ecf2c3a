package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yardsolutions/quotes-backend/internal/model"
	"github.com/yardsolutions/quotes-backend/internal/sqlerr"
)

const quotesTable = "quotes"

// quoteColumns is the projection shared by every quote query.
const quoteColumns = `
	id::text AS id,
	created_at,
	address_line1,
	address_line2,
	city,
	state,
	postal_code,
	given_name,
	family_name,
	email,
	phone_number,
	job_type,
	preferred_job_date::text AS preferred_job_date,
	description`

type QuoteRepository struct {
	pool *pgxpool.Pool
}

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

// CreateQuote inserts a quote and returns the stored row.
func (r *QuoteRepository) CreateQuote(ctx context.Context, payload *model.CreateQuotePayload) (*model.Quote, error) {
	stmt := `
		INSERT INTO quotes (
			address_line1,
			address_line2,
			city,
			state,
			email,
			family_name,
			given_name,
			job_type,
			phone_number,
			postal_code,
			preferred_job_date,
			description
		)
		VALUES (
			@address_line1,
			@address_line2,
			@city,
			@state,
			@email,
			@family_name,
			@given_name,
			@job_type,
			@phone_number,
			@postal_code,
			@preferred_job_date::date,
			@description
		)
		RETURNING` + quoteColumns

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"address_line1":      payload.AddressLine1,
		"address_line2":      payload.AddressLine2,
		"city":               payload.City,
		"state":              payload.State,
		"email":              payload.Email,
		"family_name":        payload.FamilyName,
		"given_name":         payload.GivenName,
		"job_type":           payload.JobType,
		"phone_number":       payload.PhoneNumber,
		"postal_code":        payload.PostalCode,
		"preferred_job_date": payload.PreferredJobDate,
		"description":        payload.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create quote query: %w", err)
	}

	quote, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Quote])
	if err != nil {
		return nil, fmt.Errorf("failed to collect created quote: %w", err)
	}

	return &quote, nil
}

// GetQuoteByID returns the quote or an error tagged for a 404 when none exists.
func (r *QuoteRepository) GetQuoteByID(ctx context.Context, id string) (*model.Quote, error) {
	stmt := `SELECT` + quoteColumns + `
		FROM quotes
		WHERE id = @id`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get quote query for id=%s: %w", id, err)
	}

	quote, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Quote])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.TableNotFound(quotesTable, err)
		}
		return nil, fmt.Errorf("failed to collect quote id=%s: %w", id, err)
	}

	return &quote, nil
}
