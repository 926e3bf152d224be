package availability

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// GenerateSlots проходит окно работы с шагом SlotStepMinutes и возвращает
// начала слотов, для которых [start, start+total) помещается до закрытия и
// не пересекается ни с одним запрещенным интервалом.
// Первый кандидат округляется вверх до сетки шага, чтобы не предлагать
// время раньше открытия. Результат упорядочен по возрастанию.
func GenerateSlots(window Window, forbidden []Range, totalMinutes int) []string {
	slots := make([]string, 0)
	if !window.Open || totalMinutes <= 0 {
		return slots
	}

	step := domain.SlotStepMinutes
	start := window.OpenMinutes
	if rem := start % step; rem != 0 {
		start += step - rem
	}

	for ; start+totalMinutes <= window.CloseMinutes; start += step {
		end := start + totalMinutes
		if overlapsAny(start, end, forbidden) {
			continue
		}
		slots = append(slots, ToHHMM(start))
	}

	return slots
}
