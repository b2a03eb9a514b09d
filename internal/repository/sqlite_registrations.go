package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/13132klain/ufa-backend/internal/models"
)

// SQLiteRegistrationRepository is the durable local tier for event
// registrations: the store the site keeps writing to when the remote
// database is unreachable.
type SQLiteRegistrationRepository struct {
	db *sql.DB
}

func NewSQLiteRegistrationRepository(db *sql.DB) *SQLiteRegistrationRepository {
	return &SQLiteRegistrationRepository{db: db}
}

const registrationColumns = `id, event_id, event_title, name, email, phone,
	registration_date, status, confirmation_code, checked_in, checked_in_at`

func (r *SQLiteRegistrationRepository) List(ctx context.Context) ([]models.EventRegistration, error) {
	return r.query(ctx, `SELECT `+registrationColumns+` FROM event_registrations ORDER BY registration_date DESC`)
}

func (r *SQLiteRegistrationRepository) FindByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	return r.query(ctx, `SELECT `+registrationColumns+` FROM event_registrations WHERE event_id = ? ORDER BY registration_date DESC`, eventID)
}

func (r *SQLiteRegistrationRepository) query(ctx context.Context, q string, args ...any) ([]models.EventRegistration, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []models.EventRegistration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *SQLiteRegistrationRepository) FindByID(ctx context.Context, id string) (*models.EventRegistration, error) {
	return r.queryOne(ctx, `SELECT `+registrationColumns+` FROM event_registrations WHERE id = ?`, id)
}

func (r *SQLiteRegistrationRepository) FindByEventAndEmail(ctx context.Context, eventID, email string) (*models.EventRegistration, error) {
	return r.queryOne(ctx, `SELECT `+registrationColumns+` FROM event_registrations WHERE event_id = ? AND email = ? COLLATE NOCASE`, eventID, email)
}

func (r *SQLiteRegistrationRepository) FindByCode(ctx context.Context, code string) (*models.EventRegistration, error) {
	return r.queryOne(ctx, `SELECT `+registrationColumns+` FROM event_registrations WHERE confirmation_code = ?`, code)
}

func (r *SQLiteRegistrationRepository) queryOne(ctx context.Context, q string, args ...any) (*models.EventRegistration, error) {
	row := r.db.QueryRowContext(ctx, q, args...)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *SQLiteRegistrationRepository) Insert(ctx context.Context, reg models.EventRegistration) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO event_registrations
			(id, event_id, event_title, name, email, phone, registration_date,
			 status, confirmation_code, checked_in, checked_in_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.EventID, reg.EventTitle, reg.Name, reg.Email, reg.Phone,
		reg.RegistrationDate.UTC(), string(reg.Status), reg.ConfirmationCode,
		reg.CheckedIn, nullTime(reg.CheckedInAt),
	)
	return err
}

func (r *SQLiteRegistrationRepository) Replace(ctx context.Context, reg models.EventRegistration) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE event_registrations
		SET event_id = ?, event_title = ?, name = ?, email = ?, phone = ?,
		    registration_date = ?, status = ?, confirmation_code = ?,
		    checked_in = ?, checked_in_at = ?
		WHERE id = ?`,
		reg.EventID, reg.EventTitle, reg.Name, reg.Email, reg.Phone,
		reg.RegistrationDate.UTC(), string(reg.Status), reg.ConfirmationCode,
		reg.CheckedIn, nullTime(reg.CheckedInAt), reg.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM event_registrations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (models.EventRegistration, error) {
	var (
		reg         models.EventRegistration
		phone       sql.NullString
		status      string
		checkedInAt sql.NullTime
	)
	err := row.Scan(&reg.ID, &reg.EventID, &reg.EventTitle, &reg.Name, &reg.Email,
		&phone, &reg.RegistrationDate, &status, &reg.ConfirmationCode,
		&reg.CheckedIn, &checkedInAt)
	if err != nil {
		return models.EventRegistration{}, err
	}
	reg.Phone = phone.String
	reg.Status = models.RegistrationStatus(status)
	if checkedInAt.Valid {
		t := checkedInAt.Time
		reg.CheckedInAt = &t
	}
	return reg, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
