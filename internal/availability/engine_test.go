package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	monday    = types.MustDate(2025, time.January, 6)
	tuesday   = types.MustDate(2025, time.January, 7)
	nextMonday = types.MustDate(2025, time.January, 13)
)

func openWeek(open, close string) []domain.GeneralHour {
	hours := make([]domain.GeneralHour, 0, len(domain.Weekdays))
	for i, w := range domain.Weekdays {
		hours = append(hours, domain.GeneralHour{
			ID:        int64(i + 1),
			Weekday:   w,
			OpenTime:  ptr.Ptr(open),
			CloseTime: ptr.Ptr(close),
		})
	}
	return hours
}

func gridFrom(from, to string) []string {
	start, _ := types.ParseMinutes(from)
	end, _ := types.ParseMinutes(to)
	out := []string{}
	for m := start; m <= end; m += domain.SlotStepMinutes {
		out = append(out, ToHHMM(m))
	}
	return out
}

func TestComputeScenarioOpenDay(t *testing.T) {
	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 60, BufferMinutes: 15},
		GeneralHours: openWeek("09:00", "17:00"),
	}

	slots := ComputeAvailableSlots(in)

	// последний старт 15:30: 15:30+75 = 16:45 <= 17:00, 16:00+75 > 17:00
	assert.Equal(t, gridFrom("09:00", "15:30"), slots)
}

func TestComputeScenarioExistingAppointment(t *testing.T) {
	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 60, BufferMinutes: 15},
		GeneralHours: openWeek("09:00", "17:00"),
		Appointments: []domain.BookedInterval{
			{Time: "10:00", DurationMinutes: 30, BufferMinutes: 15},
		},
	}

	slots := ComputeAvailableSlots(in)

	// [600, 645) занят: старты 09:00..10:30 пересекаются с ним
	for _, excluded := range []string{"09:00", "09:30", "10:00", "10:30"} {
		assert.NotContains(t, slots, excluded)
	}
	assert.Equal(t, "11:00", slots[0])
	assert.Equal(t, gridFrom("11:00", "15:30"), slots)
}

func TestComputeTouchingIntervalsDoNotOverlap(t *testing.T) {
	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 30},
		GeneralHours: openWeek("09:00", "12:00"),
		Appointments: []domain.BookedInterval{
			{Time: "10:00", DurationMinutes: 30},
		},
	}

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, ComputeAvailableSlots(in))
}

func TestComputeAppointmentBufferReservesTrailingTime(t *testing.T) {
	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 30},
		GeneralHours: openWeek("09:00", "12:00"),
		Appointments: []domain.BookedInterval{
			{Time: "10:00", DurationMinutes: 30, BufferMinutes: 15},
		},
	}

	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, ComputeAvailableSlots(in))
}

func TestComputeScenarioWeeklyBlock(t *testing.T) {
	block := domain.BlockedHour{
		ID:          1,
		BlockedDate: monday,
		TimeFrom:    "12:00",
		TimeUntil:   "13:00",
		RepeatType:  domain.RepeatWeekly,
	}
	base := Input{
		Service:      domain.ServiceProfile{DurationMinutes: 60},
		GeneralHours: openWeek("09:00", "17:00"),
		BlockedHours: []domain.BlockedHour{block},
	}

	t.Run("following monday is blocked", func(t *testing.T) {
		in := base
		in.Date = nextMonday
		slots := ComputeAvailableSlots(in)
		assert.NotContains(t, slots, "11:30")
		assert.NotContains(t, slots, "12:00")
		assert.NotContains(t, slots, "12:30")
		assert.Contains(t, slots, "11:00")
		assert.Contains(t, slots, "13:00")
	})

	t.Run("tuesday is not affected", func(t *testing.T) {
		in := base
		in.Date = tuesday
		assert.Equal(t, gridFrom("09:00", "16:00"), ComputeAvailableSlots(in))
	})
}

func TestComputeClosedDayYieldsNothing(t *testing.T) {
	closedMonday := openWeek("09:00", "17:00")
	closedMonday[0] = domain.GeneralHour{Weekday: "monday", IsClosed: true}

	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 30},
		GeneralHours: closedMonday,
		BlockedHours: []domain.BlockedHour{
			{BlockedDate: monday, TimeFrom: "10:00", TimeUntil: "11:00"},
		},
		Appointments: []domain.BookedInterval{{Time: "12:00", DurationMinutes: 30}},
	}

	slots, err := Compute(in)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeOverridePriority(t *testing.T) {
	t.Run("custom closed beats general open", func(t *testing.T) {
		in := Input{
			Date:         monday,
			Service:      domain.ServiceProfile{DurationMinutes: 30},
			GeneralHours: openWeek("09:00", "17:00"),
			CustomHours: []domain.CustomHour{
				{Date: monday, Type: domain.CustomHourTypeDay, IsClosed: true},
			},
		}
		assert.Empty(t, ComputeAvailableSlots(in))
	})

	t.Run("custom open beats general closed", func(t *testing.T) {
		general := openWeek("09:00", "17:00")
		general[0] = domain.GeneralHour{Weekday: "monday", IsClosed: true}
		in := Input{
			Date:         monday,
			Service:      domain.ServiceProfile{DurationMinutes: 30},
			GeneralHours: general,
			CustomHours: []domain.CustomHour{
				{Date: monday, Type: domain.CustomHourTypeDay, OpenTime: ptr.Ptr("14:00"), CloseTime: ptr.Ptr("16:00:00")},
			},
		}
		assert.Equal(t, []string{"14:00", "14:30", "15:00", "15:30"}, ComputeAvailableSlots(in))
	})

	t.Run("override for another date is ignored", func(t *testing.T) {
		in := Input{
			Date:         tuesday,
			Service:      domain.ServiceProfile{DurationMinutes: 60},
			GeneralHours: openWeek("09:00", "11:00"),
			CustomHours: []domain.CustomHour{
				{Date: monday, Type: domain.CustomHourTypeDay, IsClosed: true},
			},
		}
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, ComputeAvailableSlots(in))
	})
}

func TestComputeGridAlignmentAndNoOverlap(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	clock := func(m int) string { return ToHHMM(m) }

	for i := 0; i < 200; i++ {
		open := 6*60 + rnd.Intn(180)
		closing := open + 60 + rnd.Intn(600)
		if closing >= types.MinutesPerDay {
			closing = types.MinutesPerDay - 1
		}

		var blocks []domain.BlockedHour
		blocksCount := rnd.Intn(4)
		for j := 0; j < blocksCount; j++ {
			from := open + rnd.Intn(closing-open)
			until := from + 5 + rnd.Intn(90)
			if until >= types.MinutesPerDay {
				continue
			}
			blocks = append(blocks, domain.BlockedHour{
				BlockedDate: monday,
				TimeFrom:    clock(from),
				TimeUntil:   clock(until),
			})
		}

		var appts []domain.BookedInterval
		apptsCount := rnd.Intn(4)
		for j := 0; j < apptsCount; j++ {
			appts = append(appts, domain.BookedInterval{
				Time:            clock(open + rnd.Intn(closing-open)),
				DurationMinutes: 15 + rnd.Intn(90),
				BufferMinutes:   rnd.Intn(30),
			})
		}

		service := domain.ServiceProfile{DurationMinutes: 15 + rnd.Intn(120), BufferMinutes: rnd.Intn(30)}
		in := Input{
			Date:         monday,
			Service:      service,
			GeneralHours: openWeek(clock(open), clock(closing)),
			BlockedHours: blocks,
			Appointments: appts,
		}

		slots := ComputeAvailableSlots(in)
		forbidden := ForbiddenRanges(blocks, appts)

		prev := -1
		for _, s := range slots {
			start, ok := ToMinutes(&s)
			require.True(t, ok)
			assert.Zero(t, start%domain.SlotStepMinutes, "slot %s off grid", s)
			assert.GreaterOrEqual(t, start, open)
			assert.LessOrEqual(t, start+service.TotalMinutes(), closing)
			assert.Greater(t, start, prev, "slots must be ascending")
			prev = start

			for _, r := range forbidden {
				assert.False(t, Overlaps(start, start+service.TotalMinutes(), r.Start, r.End),
					"slot %s overlaps [%d, %d)", s, r.Start, r.End)
			}
		}

		// идемпотентность
		assert.Equal(t, slots, ComputeAvailableSlots(in))
	}
}

func TestComputeRoundsFirstSlotUp(t *testing.T) {
	in := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 30},
		GeneralHours: openWeek("09:10", "10:30"),
	}
	assert.Equal(t, []string{"09:30", "10:00"}, ComputeAvailableSlots(in))
}

func TestComputeInvalidInput(t *testing.T) {
	base := Input{
		Date:         monday,
		Service:      domain.ServiceProfile{DurationMinutes: 30},
		GeneralHours: openWeek("09:00", "17:00"),
	}

	t.Run("zero duration", func(t *testing.T) {
		in := base
		in.Service = domain.ServiceProfile{DurationMinutes: 0}
		_, err := Compute(in)
		require.ErrorIs(t, err, ErrInvalidService)
		assert.Empty(t, ComputeAvailableSlots(in))
	})

	t.Run("negative buffer", func(t *testing.T) {
		in := base
		in.Service = domain.ServiceProfile{DurationMinutes: 30, BufferMinutes: -5}
		_, err := Compute(in)
		require.ErrorIs(t, err, ErrInvalidService)
	})

	t.Run("missing date", func(t *testing.T) {
		in := base
		in.Date = types.Date{}
		_, err := Compute(in)
		require.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestIsSlotAvailable(t *testing.T) {
	slots := []string{"09:00", "09:30"}
	assert.True(t, IsSlotAvailable(slots, "09:30"))
	assert.False(t, IsSlotAvailable(slots, "10:00"))
	assert.False(t, IsSlotAvailable(nil, "09:00"))
}
