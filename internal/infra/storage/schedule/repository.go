package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/pkg/dbmetrics"
	"github.com/andrewscodinglab/salon-booking-service/pkg/psqlbuilder"
)

// Repository stores stylist availability: the weekly schedule as a JSONB
// document plus exception dates in their own table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylist loads a stylist's weekly schedule and exception dates.
// Returns ErrScheduleNotFound when the stylist has no stored schedule.
func (r *Repository) GetByStylist(ctx context.Context, stylistID int64) (*domain.StylistAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekly", "updated_at").
		From("stylist_schedules").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - build select query: %v", ErrBuildQuery, err)
	}

	var (
		weeklyRaw []byte
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&weeklyRaw, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - scan schedule: %v", ErrScanRow, err)
	}

	var weekly domain.WeeklySchedule
	if err := json.Unmarshal(weeklyRaw, &weekly); err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - decode weekly: %v", ErrEncodeSchedule, err)
	}

	exceptions, err := r.getExceptions(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	return &domain.StylistAvailability{
		StylistID:  stylistID,
		Weekly:     weekly,
		Exceptions: exceptions,
		UpdatedAt:  updatedAt.Time,
	}, nil
}

// Upsert replaces the stylist's weekly schedule and exception dates. Callers
// wanting atomic replacement run it inside a transaction via the manager.
func (r *Repository) Upsert(ctx context.Context, availability *domain.StylistAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyRaw, err := json.Marshal(availability.Weekly)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode weekly: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("stylist_schedules").
		Columns("stylist_id", "weekly").
		Values(availability.StylistID, weeklyRaw).
		Suffix("ON CONFLICT (stylist_id) DO UPDATE SET weekly = EXCLUDED.weekly, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return r.replaceExceptions(ctx, availability.StylistID, availability.Exceptions)
}

func (r *Repository) getExceptions(ctx context.Context, stylistID int64) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("exception_date").
		From("schedule_exceptions").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("exception_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: getExceptions - scan date: %v", ErrScanRow, err)
		}
		exceptions = append(exceptions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

func (r *Repository) replaceExceptions(ctx context.Context, stylistID int64, exceptions []time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_exceptions").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceExceptions - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceExceptions - execute delete: %v", ErrExecQuery, err)
	}

	if len(exceptions) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("schedule_exceptions").
		Columns("stylist_id", "exception_date")
	for _, d := range exceptions {
		insertBuilder = insertBuilder.Values(stylistID, d)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceExceptions - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceExceptions - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
