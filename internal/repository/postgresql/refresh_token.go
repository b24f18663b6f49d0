package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	if token.ID == "" {
		token.ID = uuid.New().String()
	}

	query := `
		INSERT INTO refresh_tokens (
			id, user_id, jti, user_agent, ip_address, revoked, expires_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, FALSE, $6, NOW()
		)
	`

	_, err := q.Exec(ctx, query,
		token.ID, token.UserID, token.JTI, token.UserAgent, token.IPAddress, token.ExpiresAt,
	)
	return err
}

func (r *refreshTokenRepositoryImpl) GetByJTI(ctx context.Context, jti string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, jti, user_agent, ip_address, revoked, expires_at, created_at
		FROM refresh_tokens
		WHERE jti = $1
	`

	var token auth.RefreshToken
	err := q.QueryRow(ctx, query, jti).Scan(
		&token.ID, &token.UserID, &token.JTI, &token.UserAgent,
		&token.IPAddress, &token.Revoked, &token.ExpiresAt, &token.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, err
	}

	return token, nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, jti string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE jti = $1 AND revoked = FALSE
	`

	commandTag, err := q.Exec(ctx, query, jti)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return auth.ErrRefreshTokenRevoked
	}

	return nil
}

func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE user_id = $1 AND revoked = FALSE
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}

func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM refresh_tokens
		WHERE expires_at < NOW()
	`

	commandTag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return commandTag.RowsAffected(), nil
}
