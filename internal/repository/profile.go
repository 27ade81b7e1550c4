package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	query := `SELECT user_id, username, full_name, phone_number,
					 passport_series_number, passport_issued_by, passport_date_of_issue,
					 registration_address, registered_at, updated_at
			  FROM clients
			  WHERE user_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.ClientProfile
	if err = row.Scan(
		&p.UserID, &p.Username, &p.FullName, &p.PhoneNumber,
		&p.PassportNumber, &p.PassportIssuedBy, &p.PassportIssueDate,
		&p.RegistrationAddress, &p.RegisteredAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}

// Upsert merges the provided fields into the stored profile, creating
// it when absent. Empty fields in the update never overwrite stored
// values: re-registration merges, it does not wipe.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, upd domain.ProfileUpdate) error {
	now := time.Now().UTC()
	query := `INSERT INTO clients
				(user_id, username, full_name, phone_number,
				 passport_series_number, passport_issued_by, passport_date_of_issue,
				 registration_address, registered_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			  ON CONFLICT (user_id) DO UPDATE SET
				username               = COALESCE(NULLIF(EXCLUDED.username, ''), clients.username),
				full_name              = COALESCE(NULLIF(EXCLUDED.full_name, ''), clients.full_name),
				phone_number           = COALESCE(NULLIF(EXCLUDED.phone_number, ''), clients.phone_number),
				passport_series_number = COALESCE(NULLIF(EXCLUDED.passport_series_number, ''), clients.passport_series_number),
				passport_issued_by     = COALESCE(NULLIF(EXCLUDED.passport_issued_by, ''), clients.passport_issued_by),
				passport_date_of_issue = COALESCE(NULLIF(EXCLUDED.passport_date_of_issue, ''), clients.passport_date_of_issue),
				registration_address   = COALESCE(NULLIF(EXCLUDED.registration_address, ''), clients.registration_address),
				updated_at             = EXCLUDED.updated_at`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		userID, upd.Username, upd.FullName, upd.PhoneNumber,
		upd.PassportNumber, upd.PassportIssuedBy, upd.PassportIssueDate,
		upd.RegistrationAddress, now,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
