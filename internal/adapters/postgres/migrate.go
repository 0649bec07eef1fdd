package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema создает таблицы и индексы, если их еще нет.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Seed загружает демо-данные. Уже существующие записи не трогает.
func Seed(ctx context.Context, pool *pgxpool.Pool, users []domain.User, props []domain.Property, inquiries []domain.Inquiry, favorites []domain.Favorite) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, u := range users {
		batch.Queue(`
			INSERT INTO users (id, name, email, phone, role, avatar, registration_date, bio)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email, u.Phone, string(u.Role), u.Avatar, u.RegistrationDate, u.Bio,
		)
	}
	for _, p := range props {
		batch.Queue(`INSERT INTO properties (`+propertyColumns+`)
			VALUES (`+propertyPlaceholders+`)
			ON CONFLICT (id) DO NOTHING`,
			propertyArgs(p)...,
		)
	}
	for _, inq := range inquiries {
		batch.Queue(`INSERT INTO inquiries (`+inquiryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			inquiryArgs(inq)...,
		)
	}
	for _, f := range favorites {
		batch.Queue(`INSERT INTO user_favorites (user_id, property_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, property_id) DO NOTHING`,
			f.UserID, f.PropertyID, f.CreatedAt,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed data: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
