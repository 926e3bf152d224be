package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/usecase/dayschedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// mapDateError переводит ошибки правил записи в ошибки usecase
func mapDateError(err error) error {
	switch {
	case errors.Is(err, dayschedule.ErrDateInPast):
		return ErrInvalidDate
	case errors.Is(err, dayschedule.ErrDateTooFarInFuture):
		return fmt.Errorf("%w: %v", ErrDateTooFarInFuture, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
