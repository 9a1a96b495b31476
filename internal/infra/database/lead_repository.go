package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, student_name, father_name, city, state, phone, email, class, message, status, date`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.StudentName,
		lead.FatherName,
		lead.City,
		lead.State,
		lead.Phone,
		lead.Email,
		lead.Class,
		lead.Message,
		string(lead.Status),
		lead.Date,
	)
	return mapError(err, entity.ErrLeadNotFound)
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return scanLeads(rows)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	l, err := scanLead(row)
	if err != nil {
		return nil, mapError(err, entity.ErrLeadNotFound)
	}
	return l, nil
}

// UpdateStatus relies on the single-row UPDATE being atomic; concurrent
// writers end with whichever statement commits last.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	query := `UPDATE leads SET status = $2 WHERE id = $1 RETURNING ` + leadColumns
	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id, string(status)))
	if err != nil {
		return nil, mapError(err, entity.ErrLeadNotFound)
	}
	return l, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[entity.LeadStatus]int64, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entity.LeadStatus]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[entity.LeadStatus(status)] = n
	}
	return counts, rows.Err()
}

func (r *LeadRepository) FindByDateRange(ctx context.Context, from, to *time.Time) ([]entity.Lead, error) {
	var (
		conds []string
		args  []any
	)
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "date >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + leadColumns + ` FROM leads`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanLeads(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		l      entity.Lead
		status string
	)
	err := row.Scan(
		&l.ID,
		&l.StudentName,
		&l.FatherName,
		&l.City,
		&l.State,
		&l.Phone,
		&l.Email,
		&l.Class,
		&l.Message,
		&status,
		&l.Date,
	)
	if err != nil {
		return nil, err
	}
	l.Status = entity.LeadStatus(status)
	l.Date = l.Date.UTC()
	return &l, nil
}

func scanLeads(rows *sql.Rows) ([]entity.Lead, error) {
	defer rows.Close()

	leads := make([]entity.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *l)
	}
	return leads, rows.Err()
}
