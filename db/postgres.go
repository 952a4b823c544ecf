package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alex-monroe/fantasy-pulse-sub000/model"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
)

var (
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrTokenNotFound       = errors.New("integration has no saved token")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

const integrationColumns = `id, user_id, provider, external_user_id,
	access_token, refresh_token, token_expiry, created`

func (db *postgresDB) GetIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_integrations WHERE user_id=@userID ORDER BY created`, integrationColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error querying integrations: %w", err)
	}

	results := make([]model.Integration, 0, 4)
	for rows.Next() {
		i, err := scanIntegration(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *i)
	}
	return results, nil
}

func (db *postgresDB) GetIntegration(ctx context.Context, id string) (*model.Integration, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_integrations WHERE id=@id`, integrationColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	i, err := scanIntegration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("error scanning integration %s: %w", id, err)
	}
	return i, nil
}

func (db *postgresDB) AddIntegration(ctx context.Context, i *model.Integration) error {
	const query = `INSERT INTO user_integrations (
		id,
		user_id,
		provider,
		external_user_id,
		access_token,
		refresh_token,
		token_expiry,
		created
	) VALUES (
		@id,
		@userID,
		@provider,
		@externalUserID,
		@accessToken,
		@refreshToken,
		@tokenExpiry,
		@created
	)`

	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	i.Created = db.clock.Now().UTC()

	args := pgx.NamedArgs{
		"id":             i.ID,
		"userID":         i.UserID,
		"provider":       string(i.Provider),
		"externalUserID": i.ExternalUserID,
		"accessToken": sql.NullString{
			String: i.AccessToken,
			Valid:  i.AccessToken != "",
		},
		"refreshToken": sql.NullString{
			String: i.RefreshToken,
			Valid:  i.RefreshToken != "",
		},
		"tokenExpiry": pgtype.Timestamptz{
			Time:  i.TokenExpiry,
			Valid: !i.TokenExpiry.IsZero(),
		},
		"created": pgtype.Timestamptz{
			Time:             i.Created,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting integration for %s: %w", i.UserID, err)
	}
	return nil
}

func (db *postgresDB) DeleteIntegration(ctx context.Context, id string) error {
	// Leagues are removed by the ON DELETE CASCADE on leagues.integration_id.
	const query = `DELETE FROM user_integrations WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting integration %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIntegrationNotFound
	}
	return nil
}

func (db *postgresDB) SaveToken(ctx context.Context, integrationID string, t *oauth2.Token) error {
	const query = `UPDATE user_integrations
		SET access_token=@accessToken,
			refresh_token=@refreshToken,
			token_expiry=@tokenExpiry
		WHERE id=@id`

	args := pgx.NamedArgs{
		"id":          integrationID,
		"accessToken": t.AccessToken,
		"refreshToken": sql.NullString{
			String: t.RefreshToken,
			Valid:  t.RefreshToken != "",
		},
		"tokenExpiry": pgtype.Timestamptz{
			Time:  t.Expiry,
			Valid: !t.Expiry.IsZero(),
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving token for integration %s: %w", integrationID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIntegrationNotFound
	}
	return nil
}

func (db *postgresDB) GetToken(ctx context.Context, integrationID string) (*oauth2.Token, error) {
	i, err := db.GetIntegration(ctx, integrationID)
	if err != nil {
		return nil, err
	}
	if i.AccessToken == "" {
		return nil, ErrTokenNotFound
	}

	return &oauth2.Token{
		AccessToken:  i.AccessToken,
		RefreshToken: i.RefreshToken,
		Expiry:       i.TokenExpiry,
		TokenType:    "bearer",
	}, nil
}

func (db *postgresDB) UpsertLeagues(ctx context.Context, integrationID string, leagues []model.League) error {
	const query = `INSERT INTO leagues (
		integration_id,
		external_id,
		name,
		season,
		roster_count,
		status
	) VALUES (
		@integrationID,
		@externalID,
		@name,
		@season,
		@rosterCount,
		@status
	) ON CONFLICT (integration_id, external_id) DO UPDATE
		SET name=excluded.name,
			season=excluded.season,
			roster_count=excluded.roster_count,
			status=excluded.status`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, l := range leagues {
		args := pgx.NamedArgs{
			"integrationID": integrationID,
			"externalID":    l.ExternalID,
			"name":          l.Name,
			"season":        l.Season,
			"rosterCount":   l.RosterCount,
			"status":        l.Status,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error upserting league %s: %w", l.ExternalID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing league upsert: %w", err)
	}
	return nil
}

func (db *postgresDB) GetLeagues(ctx context.Context, integrationID string) ([]model.League, error) {
	const query = `SELECT id, integration_id, external_id, name, season, roster_count, status
		FROM leagues WHERE integration_id=@integrationID ORDER BY id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"integrationID": integrationID})
	if err != nil {
		return nil, fmt.Errorf("error querying leagues: %w", err)
	}

	results := make([]model.League, 0, 4)
	for rows.Next() {
		var l model.League
		err := rows.Scan(&l.ID, &l.IntegrationID, &l.ExternalID, &l.Name, &l.Season, &l.RosterCount, &l.Status)
		if err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		results = append(results, l)
	}
	return results, nil
}

func scanIntegration(row pgx.Row) (*model.Integration, error) {
	var result model.Integration
	var provider string
	var accessToken, refreshToken sql.NullString
	var tokenExpiry, created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&provider,
		&result.ExternalUserID,
		&accessToken,
		&refreshToken,
		&tokenExpiry,
		&created)

	if err != nil {
		return nil, err
	}

	p, err := model.ParseProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("integration %s has an unknown provider: %w", result.ID, err)
	}

	result.Provider = p
	result.AccessToken = valueOrEmpty(accessToken)
	result.RefreshToken = valueOrEmpty(refreshToken)
	result.TokenExpiry = tokenExpiry.Time
	result.Created = created.Time

	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
