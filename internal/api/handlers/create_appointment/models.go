package create_appointment

import (
	"errors"
	"time"

	createAppointment "github.com/m04kA/SalonBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Время без смещения трактуется в часовом поясе салона
const localDateTimeLayout = "2006-01-02T15:04"

var (
	errInvalidDateTime = errors.New("invalid dateTime")
	errInvalidDate     = errors.New("invalid date")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID        *int64  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName"`
	Phone           string  `json:"phone"`
	ServiceIDs      []int64 `json:"serviceIds"`
	MasterID        int64   `json:"masterId"`
	DateTime        *string `json:"dateTime,omitempty"` // RFC3339 или "2026-10-19T10:00"
	Date            *string `json:"date,omitempty"`     // "2026-10-19", для длинных услуг
	ReminderMinutes int     `json:"reminderMinutes,omitempty"`
	Prepayment      float64 `json:"prepayment,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	ClientID        *int64     `json:"clientId,omitempty"`
	ClientName      string     `json:"clientName"`
	Phone           string     `json:"phone"`
	MasterID        int64      `json:"masterId"`
	MasterName      string     `json:"masterName"`
	ServiceIDs      []int64    `json:"serviceIds"`
	DateTime        *time.Time `json:"dateTime,omitempty"`
	Date            *string    `json:"date,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	TotalPrice      float64    `json:"totalPrice"`
	Confirmation    string     `json:"confirmation"`
	ReminderMinutes int        `json:"reminderMinutes"`
	Prepayment      float64    `json:"prepayment"`
	CreatedAt       string     `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(loc *time.Location) (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		Phone:           r.Phone,
		ServiceIDs:      r.ServiceIDs,
		MasterID:        r.MasterID,
		ReminderMinutes: r.ReminderMinutes,
		Prepayment:      r.Prepayment,
	}

	if r.DateTime != nil {
		at, err := parseDateTime(*r.DateTime, loc)
		if err != nil {
			return nil, errInvalidDateTime
		}
		req.DateTime = &at
	}

	if r.Date != nil {
		d, err := types.ParseDate(*r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &d
	}

	return req, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeLayout, s, loc)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		Phone:           resp.Phone,
		MasterID:        resp.MasterID,
		MasterName:      resp.MasterName,
		ServiceIDs:      resp.ServiceIDs,
		DateTime:        resp.DateTime,
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Confirmation:    string(resp.Confirmation),
		ReminderMinutes: resp.ReminderMinutes,
		Prepayment:      resp.Prepayment,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.Date != nil {
		d := resp.Date.String()
		out.Date = &d
	}
	return out
}
