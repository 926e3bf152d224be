package blocked

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestListQuery(t *testing.T) {
	date := types.MustDate(2025, time.January, 13)

	query, args, err := listQuery(squirrel.LtOrEq{"blocked_date": date})
	require.NoError(t, err)
	assert.Contains(t, query, "FROM blocked_hours WHERE blocked_date <= $1 ORDER BY blocked_date ASC, time_from ASC")
	assert.Equal(t, []interface{}{"2025-01-13"}, args)

	query, args, err = listQuery(nil)
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestInsertQueryNormalizesRepeatType(t *testing.T) {
	block := &domain.BlockedHour{
		BlockedDate: types.MustDate(2025, time.January, 6),
		TimeFrom:    "12:00",
		TimeUntil:   "13:00",
		RepeatType:  "fortnightly",
	}

	query, args, err := insertQuery(block)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO blocked_hours (blocked_date,time_from,time_until,repeat_type,notes) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at",
		query)
	assert.Equal(t, domain.RepeatNone, args[3])
}
