package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type ResultSessionRepository struct {
	DB *sql.DB
}

func NewResultSessionRepository(db *sql.DB) *ResultSessionRepository {
	return &ResultSessionRepository{DB: db}
}

const resultColumns = `id, label, slug, year, description, images, created_at, updated_at`

func (r *ResultSessionRepository) Create(ctx context.Context, s *entity.ResultSession) error {
	images, err := json.Marshal(s.Images)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO result_sessions (` + resultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.DB.ExecContext(ctx, query,
		s.ID, s.Label, s.Slug, s.Year, s.Description, string(images), s.CreatedAt, s.UpdatedAt,
	)
	return mapError(err, entity.ErrNotFound)
}

func (r *ResultSessionRepository) Update(ctx context.Context, s *entity.ResultSession) error {
	images, err := json.Marshal(s.Images)
	if err != nil {
		return err
	}
	query := `
		UPDATE result_sessions SET label = $2, slug = $3, year = $4, description = $5,
			images = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Label, s.Slug, s.Year, s.Description, string(images), s.UpdatedAt,
	)
	if err != nil {
		return mapError(err, entity.ErrNotFound)
	}
	return checkAffected(res, entity.ErrNotFound)
}

func (r *ResultSessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM result_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, entity.ErrNotFound)
}

func (r *ResultSessionRepository) FindAll(ctx context.Context) ([]entity.ResultSession, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+resultColumns+` FROM result_sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]entity.ResultSession, 0)
	for rows.Next() {
		s, err := scanResultSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (r *ResultSessionRepository) FindByID(ctx context.Context, id string) (*entity.ResultSession, error) {
	s, err := scanResultSession(r.DB.QueryRowContext(ctx, `SELECT `+resultColumns+` FROM result_sessions WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	return s, nil
}

func (r *ResultSessionRepository) FindBySlug(ctx context.Context, slug string) (*entity.ResultSession, error) {
	s, err := scanResultSession(r.DB.QueryRowContext(ctx, `SELECT `+resultColumns+` FROM result_sessions WHERE slug = $1`, slug))
	if err != nil {
		return nil, mapError(err, entity.ErrNotFound)
	}
	return s, nil
}

func (r *ResultSessionRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM result_sessions WHERE slug = $1 AND id <> $2)`, slug, excludeID,
	).Scan(&exists)
	return exists, err
}

func scanResultSession(row rowScanner) (*entity.ResultSession, error) {
	var (
		s      entity.ResultSession
		images []byte
	)
	err := row.Scan(&s.ID, &s.Label, &s.Slug, &s.Year, &s.Description, &images, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Images = []string{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &s.Images); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
