package create_appointment

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// validateRequest проверяет формат запроса и подставляет значения по умолчанию
func validateRequest(req *Request) error {
	if req.MasterID <= 0 {
		return fmt.Errorf("%w: master_id must be positive", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: service_ids must not be empty", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service id %d must be positive", ErrInvalidInput, id)
		}
	}
	if req.DateTime == nil && req.Date == nil {
		return fmt.Errorf("%w: date_time or date is required", ErrInvalidInput)
	}
	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: client_id must be positive", ErrInvalidInput)
	}
	if req.ClientID == nil && req.Phone == "" {
		return fmt.Errorf("%w: client_id or phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ClientName) > domain.MaxClientNameLen {
		return fmt.Errorf("%w: client name is longer than %d", ErrInvalidInput, domain.MaxClientNameLen)
	}
	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLen {
		return fmt.Errorf("%w: phone is longer than %d", ErrInvalidInput, domain.MaxPhoneLen)
	}
	if req.Prepayment < 0 {
		return fmt.Errorf("%w: prepayment must not be negative", ErrInvalidInput)
	}

	if req.ReminderMinutes == 0 {
		req.ReminderMinutes = domain.DefaultReminderMinutes
	}
	if !domain.IsValidReminder(req.ReminderMinutes) {
		return fmt.Errorf("%w: reminder_minutes must be one of %v", ErrInvalidInput, domain.ReminderChoices)
	}
	return nil
}
