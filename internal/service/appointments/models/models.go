package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модели

// ConfirmationRequest пакетное подтверждение или отклонение записей
type ConfirmationRequest struct {
	IDs []int64 `json:"ids"`
}

// WeeklyRequest неделя, содержащая Date, с необязательными фильтрами
type WeeklyRequest struct {
	Date      types.Date
	MasterID  *int64
	ServiceID *int64
}

// PendingRequest страница неподтверждённых записей
type PendingRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	ClientID        *int64     `json:"clientId,omitempty"`
	ClientName      string     `json:"clientName"`
	Phone           string     `json:"phone"`
	MasterID        int64      `json:"masterId"`
	ServiceIDs      []int64    `json:"serviceIds"`
	DateTime        *time.Time `json:"dateTime,omitempty"`
	Date            *string    `json:"date,omitempty"` // "2026-10-19"
	DurationMinutes int        `json:"durationMinutes"`
	Confirmation    string     `json:"confirmation"`
	PaymentURL      *string    `json:"paymentUrl,omitempty"`
	ReminderMinutes int        `json:"reminderMinutes"`
	Prepayment      float64    `json:"prepayment"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        *int                  `json:"total,omitempty"`
}

// WeeklyBoardResponse записи недели по дням, с понедельника по воскресенье
type WeeklyBoardResponse struct {
	Days []DayBoard `json:"days"`
}

// DayBoard записи одного дня
type DayBoard struct {
	Date         string                `json:"date"`
	Day          string                `json:"day"` // "Понедельник"
	Appointments []AppointmentResponse `json:"appointments"`
}

// BusySlotsResponse занятое время мастера за день, без данных клиентов
type BusySlotsResponse struct {
	MasterID int64          `json:"masterId"`
	Date     string         `json:"date"`
	AllDay   bool           `json:"allDay"` // День занят длинной услугой
	Busy     []BusyInterval `json:"busy"`
}

// BusyInterval время записи [Start, End)
type BusyInterval struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`
}

// ConfirmationResponse сколько записей изменило статус
type ConfirmationResponse struct {
	Affected int64 `json:"affected"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		Phone:           a.Phone,
		MasterID:        a.MasterID,
		ServiceIDs:      a.ServiceIDs,
		DateTime:        a.DateTime,
		DurationMinutes: a.DurationMinutes,
		Confirmation:    string(a.Confirmation),
		PaymentURL:      a.PaymentURL,
		ReminderMinutes: a.ReminderMinutes,
		Prepayment:      a.Prepayment,
		CreatedAt:       a.CreatedAt,
	}
	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []int64{}
	}
	if a.Date != nil {
		d := a.Date.String()
		resp.Date = &d
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	return resp
}
