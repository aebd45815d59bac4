package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// Date календарная дата без времени суток.
// Не сравнивается с моментами времени напрямую: сначала нужно
// явно выбрать время суток и часовой пояс (TimeString.On, Date.Start).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate нормализует год/месяц/день (32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента времени в его часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate парсит YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero возвращает true, если дата не задана
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Start возвращает полночь этой даты в указанном часовом поясе
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// ISOWeekday возвращает день недели 1..7, понедельник = 1
func (d Date) ISOWeekday() int {
	wd := int(d.Start(time.UTC).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.Start(time.UTC).AddDate(0, 0, n))
}

// Before возвращает true, если d раньше other
func (d Date) Before(other Date) bool {
	return d.Start(time.UTC).Before(other.Start(time.UTC))
}

// After возвращает true, если d позже other
func (d Date) After(other Date) bool {
	return d.Start(time.UTC).After(other.Start(time.UTC))
}

// Equal возвращает true для одной и той же календарной даты
func (d Date) Equal(other Date) bool {
	return d == other
}

// Scan реализует sql.Scanner (колонка типа DATE)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
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

// ISOWeekday возвращает день недели момента времени 1..7, понедельник = 1
func ISOWeekday(t time.Time) int {
	return DateOf(t).ISOWeekday()
}
