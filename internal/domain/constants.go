package domain

// Значения по умолчанию для движка расписания
const (
	DefaultPreBufferMinutes       = 30
	DefaultPostBufferMinutes      = 10
	DefaultSlotGranularityMinutes = 30
	DefaultBookingNoticeMinutes   = 30
)

// Напоминание клиенту за N минут до записи
const DefaultReminderMinutes = 60

// ReminderChoices допустимые значения reminder_minutes
var ReminderChoices = []int{30, 60, 120, 180, 1440}

// Ограничения бизнес-валидации
const (
	MinWeekday         = 1
	MaxWeekday         = 7
	MaxClientNameLen   = 100
	MaxPhoneLen        = 20
	MaxPendingPageSize = 100
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// IsValidReminder проверяет, что значение входит в список допустимых
func IsValidReminder(minutes int) bool {
	for _, c := range ReminderChoices {
		if c == minutes {
			return true
		}
	}
	return false
}
