package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var _ port.FavoritesRepositoryPort = (*FavoritesRepository)(nil)

type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) (*FavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FavoritesRepository{pool: pool}, nil
}

func (r *FavoritesRepository) Add(ctx context.Context, userID, propertyID string) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Add",
		"user_id":     userID,
		"property_id": propertyID,
	})

	_, err := r.pool.Exec(ctx, `INSERT INTO user_favorites (user_id, property_id) VALUES ($1, $2)`, userID, propertyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				repoLogger.Debug("Favorite already exists", nil)
				return nil
			case pgForeignKeyViolation:
				// объявление удалили между проверкой и вставкой
				return domain.ErrPropertyNotFound
			}
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID, propertyID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_favorites WHERE user_id = $1 AND property_id = $2`, userID, propertyID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		contextkeys.LoggerFromContext(ctx).Debug("Favorite to remove did not exist", port.Fields{
			"user_id": userID, "property_id": propertyID,
		})
	}
	return nil
}

func (r *FavoritesRepository) ListPropertyIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT property_id FROM user_favorites WHERE user_id = $1 ORDER BY created_at DESC, property_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite IDs: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during favorite IDs iteration: %w", err)
	}
	return ids, nil
}

func (r *FavoritesRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM user_favorites WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete favorites of user %s: %w", userID, err)
	}
	return nil
}

func (r *FavoritesRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM user_favorites WHERE property_id = $1`, propertyID); err != nil {
		return fmt.Errorf("failed to delete favorites of property %s: %w", propertyID, err)
	}
	return nil
}
