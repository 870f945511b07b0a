package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uktrade/help-desk-api/internal/domain"
)

// CredentialsRepository defines access to tenant credential rows.
type CredentialsRepository interface {
	GetByZendeskEmail(ctx context.Context, email string) (*domain.HelpDeskCreds, error)
}

type credentialsRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialsRepository returns a Postgres-backed implementation.
func NewCredentialsRepository(pool *pgxpool.Pool) CredentialsRepository {
	return &credentialsRepository{pool: pool}
}

func (r *credentialsRepository) GetByZendeskEmail(ctx context.Context, email string) (*domain.HelpDeskCreds, error) {
	const query = `
        SELECT id, zendesk_email, zendesk_token_hash, zendesk_subdomain,
               halo_client_id, halo_client_secret, last_modified
        FROM help_desk_creds WHERE zendesk_email=$1`

	var creds domain.HelpDeskCreds
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&creds.ID,
		&creds.ZendeskEmail,
		&creds.ZendeskTokenHash,
		&creds.ZendeskSubdomain,
		&creds.HaloClientID,
		&creds.HaloClientSecret,
		&creds.LastModified,
	); err != nil {
		return nil, err
	}
	return &creds, nil
}
