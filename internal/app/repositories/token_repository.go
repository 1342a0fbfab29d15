package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// TokenRepository persists refresh tokens and password reset tokens.
type TokenRepository struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query, args, err := psql.Insert("refresh_tokens").
		Columns("user_id", "token", "expires_at").
		Values(token.UserID, token.Token, token.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building refresh token insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&token.ID, &token.CreatedAt); err != nil {
		return fmt.Errorf("saving refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken returns an unexpired refresh token record.
func (r *TokenRepository) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query, args, err := psql.Select("id", "user_id", "token", "expires_at", "created_at").
		From("refresh_tokens").
		Where(sq.Eq{"token": token}).
		Where(sq.Gt{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building refresh token select: %w", err)
	}

	var rt models.RefreshToken
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("finding refresh token: %w", err)
	}
	return &rt, nil
}

func (r *TokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	query, args, err := psql.Delete("refresh_tokens").Where(sq.Eq{"token": token}).ToSql()
	if err != nil {
		return fmt.Errorf("building refresh token delete: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting refresh token: %w", err)
	}
	return nil
}

// DeleteUserRefreshTokens revokes every session of a user, used after a
// password reset.
func (r *TokenRepository) DeleteUserRefreshTokens(ctx context.Context, userID int64) error {
	query, args, err := psql.Delete("refresh_tokens").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("building user refresh token delete: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting user refresh tokens: %w", err)
	}
	return nil
}

func (r *TokenRepository) SavePasswordResetToken(ctx context.Context, token *models.PasswordResetToken) error {
	query, args, err := psql.Insert("password_reset_tokens").
		Columns("user_id", "token", "expires_at").
		Values(token.UserID, token.Token, token.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building reset token insert: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&token.ID, &token.CreatedAt); err != nil {
		return fmt.Errorf("saving password reset token: %w", err)
	}
	return nil
}

// FindPasswordResetToken returns a reset token record regardless of state;
// the service decides between expired, used and valid.
func (r *TokenRepository) FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	query, args, err := psql.Select("id", "user_id", "token", "expires_at", "used", "created_at").
		From("password_reset_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building reset token select: %w", err)
	}

	var prt models.PasswordResetToken
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&prt.ID, &prt.UserID, &prt.Token, &prt.ExpiresAt, &prt.Used, &prt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidPasswordResetToken
		}
		return nil, fmt.Errorf("finding password reset token: %w", err)
	}
	return &prt, nil
}

func (r *TokenRepository) MarkPasswordResetTokenUsed(ctx context.Context, id int64) error {
	query, args, err := psql.Update("password_reset_tokens").
		Set("used", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building reset token update: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("marking reset token used: %w", err)
	}
	return nil
}

// DeleteExpiredTokens clears stale rows from both token tables.
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	now := time.Now()
	for _, table := range []string{"refresh_tokens", "password_reset_tokens"} {
		query, args, err := psql.Delete(table).Where(sq.Lt{"expires_at": now}).ToSql()
		if err != nil {
			return fmt.Errorf("building expired token delete: %w", err)
		}
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("deleting expired tokens from %s: %w", table, err)
		}
	}
	return nil
}
