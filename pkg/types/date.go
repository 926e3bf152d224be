package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout формат календарной даты
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректной календарной дате
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar date without time of day or location.
// Weekday and day-of-month are derived from the civil date itself,
// so the value never depends on the process or database timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate создает дату с проверкой корректности
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate как NewDate, но паникует при ошибке. Для тестов и констант.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate парсит строку формата YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(year, time.Month(month), day)
}

// DateOf возвращает календарную дату момента t в его собственной локации
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero возвращает true для незаданной даты
func (d Date) IsZero() bool {
	return d == Date{}
}

// String форматирует дату как YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday возвращает день недели
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 был четвергом
	w := (d.daysSinceEpoch() + 4) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// DaysInMonth возвращает количество дней в месяце даты
func (d Date) DaysInMonth() int {
	return daysIn(d.Year, d.Month)
}

// Compare возвращает -1, 0 или 1
func (d Date) Compare(other Date) int {
	a, b := d.daysSinceEpoch(), other.daysSinceEpoch()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before возвращает true, если d строго раньше other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After возвращает true, если d строго позже other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal возвращает true для одной и той же даты
func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysUntil возвращает количество дней от d до other (может быть отрицательным)
func (d Date) DaysUntil(other Date) int {
	return other.daysSinceEpoch() - d.daysSinceEpoch()
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return dateFromDays(d.daysSinceEpoch() + n)
}

// Time возвращает полночь даты в указанной локации
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Scan реализует sql.Scanner для колонок DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// daysSinceEpoch алгоритм days_from_civil (пролептический григорианский календарь)
func (d Date) daysSinceEpoch() int {
	y := d.Year
	m := int(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// dateFromDays обратное преобразование civil_from_days
func dateFromDays(z int) Date {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		y++
	}
	return Date{Year: y, Month: time.Month(month), Day: day}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
