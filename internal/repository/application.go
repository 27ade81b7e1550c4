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

type ApplicationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApplicationRepo(db *dbpg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create persists a submitted application. A single insert: either it
// fully succeeds or the prior state is retained.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications
				(id, user_id, event_id, event_name, point_kind, point_name,
				 selected_date, selected_time, pre_repair, pre_repair_comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.UserID, a.EventID, a.EventName, a.PointKind, a.PointName,
		a.SelectedDate, a.SelectedTime, a.PreRepair, a.PreRepairComment, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT id, user_id, event_id, event_name, point_kind, point_name,
					 selected_date, selected_time, pre_repair, pre_repair_comment, created_at
			  FROM applications
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	var a domain.Application
	if err = row.Scan(
		&a.ID, &a.UserID, &a.EventID, &a.EventName, &a.PointKind, &a.PointName,
		&a.SelectedDate, &a.SelectedTime, &a.PreRepair, &a.PreRepairComment, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	return &a, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM applications WHERE id=$1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("delete application: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("application rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	query := `SELECT id, user_id, event_id, event_name, point_kind, point_name,
					 selected_date, selected_time, pre_repair, pre_repair_comment, created_at
			  FROM applications
			  WHERE user_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Application
	for rows.Next() {
		var a domain.Application
		if err = rows.Scan(
			&a.ID, &a.UserID, &a.EventID, &a.EventName, &a.PointKind, &a.PointName,
			&a.SelectedDate, &a.SelectedTime, &a.PreRepair, &a.PreRepairComment, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
