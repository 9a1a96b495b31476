package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type NewsRepository struct {
	DB *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

const newsColumns = `id, title, slug, type, summary, content, image_url, event_date, published, created_at, updated_at`

func (r *NewsRepository) Create(ctx context.Context, n *entity.NewsItem) error {
	query := `
		INSERT INTO news (` + newsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.Title, n.Slug, n.Type, n.Summary, n.Content, n.ImageURL,
		nullTime(n.EventDate), n.Published, n.CreatedAt, n.UpdatedAt,
	)
	return mapError(err, entity.ErrNotFound)
}

func (r *NewsRepository) Update(ctx context.Context, n *entity.NewsItem) error {
	query := `
		UPDATE news SET title = $2, slug = $3, type = $4, summary = $5, content = $6,
			image_url = $7, event_date = $8, published = $9, updated_at = $10
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		n.ID, n.Title, n.Slug, n.Type, n.Summary, n.Content, n.ImageURL,
		nullTime(n.EventDate), n.Published, n.UpdatedAt,
	)
	if err != nil {
		return mapError(err, entity.ErrNotFound)
	}
	return checkAffected(res, entity.ErrNotFound)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, entity.ErrNotFound)
}

func (r *NewsRepository) FindAll(ctx context.Context, publishedOnly bool) ([]entity.NewsItem, error) {
	query := `SELECT ` + newsColumns + ` FROM news`
	if publishedOnly {
		query += ` WHERE published`
	}
	rows, err := r.DB.QueryContext(ctx, query+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.NewsItem, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*entity.NewsItem, error) {
	n, err := scanNews(r.DB.QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	return n, nil
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.NewsItem, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE slug = $1`
	if publishedOnly {
		query += ` AND published`
	}
	n, err := scanNews(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	return n, nil
}

func (r *NewsRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1 AND id <> $2)`, slug, excludeID,
	).Scan(&exists)
	return exists, err
}

func scanNews(row rowScanner) (*entity.NewsItem, error) {
	var (
		n         entity.NewsItem
		eventDate sql.NullTime
	)
	err := row.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Type, &n.Summary, &n.Content, &n.ImageURL,
		&eventDate, &n.Published, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if eventDate.Valid {
		t := eventDate.Time.UTC()
		n.EventDate = &t
	}
	return &n, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
