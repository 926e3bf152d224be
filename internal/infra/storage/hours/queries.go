package hours

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Время отдается строкой HH:MM, а не time.Time драйвера
var generalHourColumns = []string{
	"id",
	"weekday",
	"is_closed",
	"to_char(open_time, 'HH24:MI') AS open_time",
	"to_char(close_time, 'HH24:MI') AS close_time",
	"updated_at",
}

var customHourColumns = []string{
	"id",
	"date",
	"type",
	"is_closed",
	"to_char(open_time, 'HH24:MI') AS open_time",
	"to_char(close_time, 'HH24:MI') AS close_time",
	"notes",
	"created_at",
	"updated_at",
}

func listGeneralQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(generalHourColumns...).
		From("general_hours").
		OrderBy("id ASC").
		ToSql()
}

func upsertGeneralQuery(hour *domain.GeneralHour) (string, []interface{}, error) {
	return psqlbuilder.Insert("general_hours").
		Columns("weekday", "is_closed", "open_time", "close_time").
		Values(hour.Weekday, hour.IsClosed, hour.OpenTime, hour.CloseTime).
		Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = NOW()
		RETURNING id, updated_at`).
		ToSql()
}

func listCustomQuery(from, to *types.Date) (string, []interface{}, error) {
	builder := psqlbuilder.Select(customHourColumns...).
		From("custom_hours").
		Where(squirrel.Eq{"type": domain.CustomHourTypeDay})

	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *to})
	}

	return builder.OrderBy("date ASC").ToSql()
}

func getCustomByDateQuery(date types.Date) (string, []interface{}, error) {
	return psqlbuilder.Select(customHourColumns...).
		From("custom_hours").
		Where(squirrel.Eq{"date": date, "type": domain.CustomHourTypeDay}).
		ToSql()
}

func upsertCustomQuery(hour *domain.CustomHour) (string, []interface{}, error) {
	return psqlbuilder.Insert("custom_hours").
		Columns("date", "type", "is_closed", "open_time", "close_time", "notes").
		Values(hour.Date, domain.CustomHourTypeDay, hour.IsClosed, hour.OpenTime, hour.CloseTime, hour.Notes).
		Suffix(`ON CONFLICT (date, type) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
}

func deleteCustomQuery(date types.Date) (string, []interface{}, error) {
	return psqlbuilder.Delete("custom_hours").
		Where(squirrel.Eq{"date": date, "type": domain.CustomHourTypeDay}).
		ToSql()
}
