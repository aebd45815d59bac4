package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat некорректные дата/время или параметры запроса
	ErrInputFormat = errors.New("scheduling: invalid input format")

	// ErrNotFound мастер или услуга не найдены
	ErrNotFound = errors.New("scheduling: not found")

	// ErrQualification мастер не выполняет запрошенные услуги
	ErrQualification = errors.New("scheduling: master is not qualified")

	// ErrScheduleConflict выходной, вне рабочих часов, не помещается или пересекается с записью
	ErrScheduleConflict = errors.New("scheduling: schedule conflict")

	// ErrDuplicateSchedule у мастера уже есть расписание на этот день недели
	ErrDuplicateSchedule = errors.New("scheduling: duplicate work schedule")

	// ErrConcurrencyConflict запись проиграла гонку при фиксации, слот нужно искать заново
	ErrConcurrencyConflict = errors.New("scheduling: concurrency conflict")

	// ErrCycle изменение родителей услуги создаёт цикл
	ErrCycle = errors.New("scheduling: service graph cycle")

	// ErrStore ошибка хранилища
	ErrStore = errors.New("scheduling: store error")
)

// Названия правил проверки записи
const (
	RuleRequiredFields = "required_fields"
	RuleLongService    = "long_service"
	RuleNotInPast      = "not_in_past"
	RuleWorkingDay     = "working_day"
	RuleWithinHours    = "within_hours"
	RuleFitsHours      = "fits_hours"
	RuleNoOverlap      = "no_overlap"
)

// ValidationError отказ в записи: какое правило не прошло и почему
type ValidationError struct {
	Rule   string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Rule, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func reject(rule string, kind error, format string, v ...interface{}) *ValidationError {
	return &ValidationError{Rule: rule, Reason: fmt.Sprintf(format, v...), Err: kind}
}

// AsValidationError достаёт ValidationError из цепочки
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
