package appointment

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var appointmentColumns = []string{
	"id",
	"service_id",
	"service_name",
	"client_name",
	"client_phone",
	"client_email",
	"appointment_date",
	"to_char(start_time, 'HH24:MI') AS start_time",
	"duration_minutes",
	"buffer_minutes",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

func insertQuery(a *domain.Appointment) (string, []interface{}, error) {
	return psqlbuilder.Insert("appointments").
		Columns(
			"service_id",
			"service_name",
			"client_name",
			"client_phone",
			"client_email",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"buffer_minutes",
			"status",
			"notes",
		).
		Values(
			a.ServiceID,
			a.ServiceName,
			a.ClientName,
			a.ClientPhone,
			a.ClientEmail,
			a.Date,
			a.StartTime,
			a.DurationMinutes,
			a.BufferMinutes,
			a.Status,
			a.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func getByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// listByDateQuery выборка записей одного дня. forUpdate блокирует строки
// до конца транзакции создания записи.
func listByDateQuery(date types.Date, includeCancelled, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date})

	if !includeCancelled {
		builder = builder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	builder = builder.OrderBy("start_time ASC")

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func listQuery(filter domain.AppointmentsFilter) (string, []interface{}, error) {
	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if filter.ServiceID != nil {
		builder = builder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		builder = builder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	return builder.OrderBy("appointment_date ASC", "start_time ASC").ToSql()
}

func cancelQuery(id int64, reason *string) (string, []interface{}, error) {
	return psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		}).
		ToSql()
}

func updateStatusQuery(id int64, status domain.AppointmentStatus) (string, []interface{}, error) {
	return psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
