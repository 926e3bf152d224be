package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/dayschedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	minPhoneDigits = 5
	maxPhoneDigits = 15
)

var validate = validator.New()

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Приводим "9:00" и "09:00:00" к "09:00"
	startTime, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	req.StartTime = startTime

	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	if err := validatePhone(req.ClientPhone); err != nil {
		return err
	}

	if req.ClientEmail != nil {
		email := strings.TrimSpace(*req.ClientEmail)
		if email == "" {
			req.ClientEmail = nil
		} else {
			if err := validate.Var(email, "email,max=254"); err != nil {
				return fmt.Errorf("%w: invalid clientEmail", ErrInvalidInput)
			}
			req.ClientEmail = &email
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validatePhone допускает цифры, пробелы, скобки, дефисы и ведущий "+"
func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return fmt.Errorf("%w: invalid clientPhone", ErrInvalidInput)
		}
	}

	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return fmt.Errorf("%w: invalid clientPhone", ErrInvalidInput)
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
