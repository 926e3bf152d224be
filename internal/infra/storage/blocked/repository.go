package blocked

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var blockedHourColumns = []string{
	"id",
	"blocked_date",
	"to_char(time_from, 'HH24:MI') AS time_from",
	"to_char(time_until, 'HH24:MI') AS time_until",
	"repeat_type",
	"notes",
	"created_at",
}

// Repository репозиторий блокировок времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListUntil возвращает все блокировки с якорной датой не позже date.
// Повторяющиеся блокировки не фильтруются по дате: их разворачивает движок доступности.
func (r *Repository) ListUntil(ctx context.Context, date types.Date) ([]domain.BlockedHour, error) {
	return r.list(ctx, "ListUntil", squirrel.LtOrEq{"blocked_date": date})
}

// ListAll возвращает весь каталог блокировок
func (r *Repository) ListAll(ctx context.Context) ([]domain.BlockedHour, error) {
	return r.list(ctx, "ListAll", nil)
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.BlockedHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]domain.BlockedHour, 0)
	for rows.Next() {
		block, err := scanBlockedHour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		blocks = append(blocks, *block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return blocks, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedHourColumns...).
		From("blocked_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlockedHour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return block, nil
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, block *domain.BlockedHour) (*domain.BlockedHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(block)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	block.CreatedAt = createdAt.Time

	return block, nil
}

// Delete удаляет блокировку вместе со всеми ее повторениями
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedHourNotFound
	}

	return nil
}

func listQuery(where squirrel.Sqlizer) (string, []interface{}, error) {
	builder := psqlbuilder.Select(blockedHourColumns...).
		From("blocked_hours")

	if where != nil {
		builder = builder.Where(where)
	}

	return builder.OrderBy("blocked_date ASC", "time_from ASC").ToSql()
}

func insertQuery(block *domain.BlockedHour) (string, []interface{}, error) {
	return psqlbuilder.Insert("blocked_hours").
		Columns("blocked_date", "time_from", "time_until", "repeat_type", "notes").
		Values(
			block.BlockedDate,
			block.TimeFrom,
			block.TimeUntil,
			domain.NormalizeRepeatType(block.RepeatType),
			block.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedHour(row rowScanner) (*domain.BlockedHour, error) {
	var block domain.BlockedHour
	var createdAt sql.NullTime

	if err := row.Scan(
		&block.ID,
		&block.BlockedDate,
		&block.TimeFrom,
		&block.TimeUntil,
		&block.RepeatType,
		&block.Notes,
		&createdAt,
	); err != nil {
		return nil, err
	}

	block.CreatedAt = createdAt.Time
	return &block, nil
}
