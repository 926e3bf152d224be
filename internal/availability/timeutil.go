package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ToMinutes парсит "HH:MM[:SS]" в минуты от полуночи.
// nil, пустая или некорректная строка дают ok=false ("время не задано"),
// а не полночь.
func ToMinutes(s *string) (int, bool) {
	if s == nil || *s == "" {
		return 0, false
	}
	m, err := types.ParseMinutes(*s)
	if err != nil {
		return 0, false
	}
	return m, true
}

// ToHHMM форматирует минуты от полуночи как "HH:MM".
// Значения вне [0, 1440) отсекаются валидацией раньше.
func ToHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [startA, endA) и [startB, endB).
// Касание концами пересечением не считается.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}
