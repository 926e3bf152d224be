package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Repository репозиторий расписания: дни недели и переопределения на даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListGeneral возвращает расписание всех дней недели
func (r *Repository) ListGeneral(ctx context.Context) ([]domain.GeneralHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listGeneralQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGeneral - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGeneral - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.GeneralHour, 0, len(domain.Weekdays))
	for rows.Next() {
		var hour domain.GeneralHour
		var updatedAt sql.NullTime

		if err := rows.Scan(
			&hour.ID,
			&hour.Weekday,
			&hour.IsClosed,
			&hour.OpenTime,
			&hour.CloseTime,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListGeneral - scan row: %v", ErrScanRow, err)
		}

		hour.UpdatedAt = updatedAt.Time
		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGeneral - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpsertGeneral создает или обновляет расписание дня недели
func (r *Repository) UpsertGeneral(ctx context.Context, hour *domain.GeneralHour) (*domain.GeneralHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertGeneralQuery(hour)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertGeneral - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hour.ID, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertGeneral - execute insert: %v", ErrExecQuery, err)
	}
	hour.UpdatedAt = updatedAt.Time

	return hour, nil
}

// ListCustom возвращает переопределения в диапазоне дат (границы включительно, nil = без границы)
func (r *Repository) ListCustom(ctx context.Context, from, to *types.Date) ([]domain.CustomHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listCustomQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.CustomHour, 0)
	for rows.Next() {
		hour, err := scanCustomHour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCustom - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, *hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCustom - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetCustomByDate возвращает переопределение на дату
func (r *Repository) GetCustomByDate(ctx context.Context, date types.Date) (*domain.CustomHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getCustomByDateQuery(date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomByDate - build select query: %v", ErrBuildQuery, err)
	}

	hour, err := scanCustomHour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomByDate - scan row: %v", ErrScanRow, err)
	}

	return hour, nil
}

// UpsertCustom создает или заменяет переопределение на дату
func (r *Repository) UpsertCustom(ctx context.Context, hour *domain.CustomHour) (*domain.CustomHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertCustomQuery(hour)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertCustom - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hour.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertCustom - execute insert: %v", ErrExecQuery, err)
	}
	hour.Type = domain.CustomHourTypeDay
	hour.CreatedAt = createdAt.Time
	hour.UpdatedAt = updatedAt.Time

	return hour, nil
}

// DeleteCustom удаляет переопределение на дату
func (r *Repository) DeleteCustom(ctx context.Context, date types.Date) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := deleteCustomQuery(date)
	if err != nil {
		return fmt.Errorf("%w: DeleteCustom - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCustom - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCustom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomHourNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomHour(row rowScanner) (*domain.CustomHour, error) {
	var hour domain.CustomHour
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&hour.ID,
		&hour.Date,
		&hour.Type,
		&hour.IsClosed,
		&hour.OpenTime,
		&hour.CloseTime,
		&hour.Notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	hour.CreatedAt = createdAt.Time
	hour.UpdatedAt = updatedAt.Time

	return &hour, nil
}
