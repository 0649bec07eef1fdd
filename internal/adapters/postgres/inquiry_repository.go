package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

const inquiryColumns = `id, property_id, buyer_id, buyer_name, buyer_email, buyer_phone, message, status, created_at`

var _ port.InquiryRepositoryPort = (*InquiryRepository)(nil)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) (*InquiryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &InquiryRepository{pool: pool}, nil
}

func inquiryArgs(inq domain.Inquiry) []interface{} {
	return []interface{}{
		inq.ID, inq.PropertyID, inq.BuyerID, inq.BuyerName, inq.BuyerEmail, inq.BuyerPhone,
		inq.Message, string(inq.Status), inq.CreatedAt,
	}
}

func scanInquiry(row pgx.Row) (domain.Inquiry, error) {
	var inq domain.Inquiry
	var status string
	err := row.Scan(&inq.ID, &inq.PropertyID, &inq.BuyerID, &inq.BuyerName, &inq.BuyerEmail,
		&inq.BuyerPhone, &inq.Message, &status, &inq.CreatedAt)
	if err != nil {
		return domain.Inquiry{}, err
	}
	inq.Status = domain.InquiryStatus(status)
	inq.CreatedAt = inq.CreatedAt.UTC()
	return inq, nil
}

func (r *InquiryRepository) Create(ctx context.Context, inq domain.Inquiry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO inquiries (`+inquiryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inquiryArgs(inq)...,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry %s: %w", inq.ID, err)
	}
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	inq, err := scanInquiry(r.pool.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inquiry %s: %w", id, err)
	}
	return &inq, nil
}

func (r *InquiryRepository) ListByProperties(ctx context.Context, propertyIDs []string) ([]domain.Inquiry, error) {
	inquiries := make([]domain.Inquiry, 0)
	if len(propertyIDs) == 0 {
		return inquiries, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE property_id = ANY($1) ORDER BY created_at ASC, id ASC`,
		propertyIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE inquiries SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return n, nil
}

// DeleteByProperty нужен только для явной очистки: внешний ключ и так удаляет заявки каскадом.
func (r *InquiryRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE property_id = $1`, propertyID); err != nil {
		return fmt.Errorf("failed to delete inquiries of property %s: %w", propertyID, err)
	}
	return nil
}
