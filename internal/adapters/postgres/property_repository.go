package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

const propertyColumns = `id, title, description, property_type, listing_type, price,
	location, city, state, zipcode, bedrooms, bathrooms, area, amenity_ids, images,
	listing_date, view_count, seller_id, status, rejection_reason`

const propertyPlaceholders = `$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20`

// стабильный порядок выдачи, сортировку каталога выполняет домен
const propertyOrder = `ORDER BY p.listing_date ASC, p.id ASC`

var _ port.PropertyRepositoryPort = (*PropertyRepository)(nil)

// PropertyRepository реализует PropertyRepositoryPort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

func amenityIDs(amenities []domain.Amenity) []string {
	ids := make([]string, 0, len(amenities))
	for _, a := range amenities {
		ids = append(ids, a.ID)
	}
	return ids
}

func propertyArgs(p domain.Property) []interface{} {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return []interface{}{
		p.ID, p.Title, p.Description, string(p.PropertyType), string(p.ListingType), p.Price,
		p.Location, p.City, p.State, p.Zipcode, p.Bedrooms, p.Bathrooms, p.Area, amenityIDs(p.Amenities), images,
		p.ListingDate, p.ViewCount, p.SellerID, string(p.Status), p.RejectionReason,
	}
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	var propertyType, listingType, status string
	var ids []string
	var listingDate time.Time

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &propertyType, &listingType, &p.Price,
		&p.Location, &p.City, &p.State, &p.Zipcode, &p.Bedrooms, &p.Bathrooms, &p.Area, &ids, &p.Images,
		&listingDate, &p.ViewCount, &p.SellerID, &status, &p.RejectionReason,
	)
	if err != nil {
		return domain.Property{}, err
	}

	p.PropertyType = domain.PropertyType(propertyType)
	p.ListingType = domain.ListingType(listingType)
	p.Status = domain.PropertyStatus(status)
	p.ListingDate = listingDate.UTC()

	p.Amenities = make([]domain.Amenity, 0, len(ids))
	for _, id := range ids {
		a, ok := domain.LookupAmenity(id)
		if !ok {
			// удобство убрали из справочника - показываем как есть
			a = domain.Amenity{ID: id, Name: id}
		}
		p.Amenities = append(p.Amenities, a)
	}
	return p, nil
}

func (r *PropertyRepository) query(ctx context.Context, method, whereClause string, args ...interface{}) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    method,
	})

	sql := fmt.Sprintf("SELECT %s FROM properties p %s %s", propertyColumns, whereClause, propertyOrder)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": sql})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	props := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Properties loaded", port.Fields{"count": len(props)})
	return props, nil
}

func (r *PropertyRepository) Get(ctx context.Context, id string) (*domain.Property, error) {
	sql := fmt.Sprintf("SELECT %s FROM properties p WHERE p.id = $1", propertyColumns)
	p, err := scanProperty(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property %s: %w", id, err)
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	return r.query(ctx, "List", "")
}

func (r *PropertyRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Property, error) {
	return r.query(ctx, "ListBySeller", "WHERE p.seller_id = $1", sellerID)
}

func (r *PropertyRepository) ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error) {
	return r.query(ctx, "ListByStatus", "WHERE p.status = $1", string(status))
}

func (r *PropertyRepository) ListMatching(ctx context.Context, f domain.FilterState) ([]domain.Property, error) {
	whereClause, args := applyFilters(f)
	return r.query(ctx, "ListMatching", whereClause, args...)
}

func (r *PropertyRepository) Insert(ctx context.Context, p domain.Property) error {
	sql := fmt.Sprintf("INSERT INTO properties (%s) VALUES (%s)", propertyColumns, propertyPlaceholders)
	if _, err := r.pool.Exec(ctx, sql, propertyArgs(p)...); err != nil {
		return fmt.Errorf("failed to insert property %s: %w", p.ID, err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, p domain.Property) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE properties SET
			title = $2, description = $3, property_type = $4, listing_type = $5, price = $6,
			location = $7, city = $8, state = $9, zipcode = $10, bedrooms = $11, bathrooms = $12,
			area = $13, amenity_ids = $14, images = $15, listing_date = $16, view_count = $17,
			seller_id = $18, status = $19, rejection_reason = $20
		WHERE id = $1`,
		propertyArgs(p)...,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, p domain.Property, expected domain.PropertyStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE properties SET status = $2, rejection_reason = $3 WHERE id = $1 AND status = $4`,
		p.ID, string(p.Status), p.RejectionReason, string(expected),
	)
	if err != nil {
		return fmt.Errorf("failed to update status of property %s: %w", p.ID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// ничего не обновили: записи нет или статус уже сменили
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM properties WHERE id = $1)`, p.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check property %s: %w", p.ID, err)
	}
	if !exists {
		return domain.ErrPropertyNotFound
	}
	return domain.ErrStatusConflict
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		`UPDATE properties SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPropertyNotFound
		}
		return 0, fmt.Errorf("failed to increment views of property %s: %w", id, err)
	}
	return views, nil
}
