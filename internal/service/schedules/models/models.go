package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модели

// SetScheduleRequest запрос на создание расписания мастера на день недели
type SetScheduleRequest struct {
	MasterID  int64  `json:"masterId"`
	Weekday   int    `json:"weekday"`   // ISO: 1 = понедельник, 7 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToDomainSchedule парсит время и собирает domain модель
func (r *SetScheduleRequest) ToDomainSchedule() (*domain.WorkSchedule, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.WorkSchedule{
		MasterID:  r.MasterID,
		Weekday:   r.Weekday,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// Response модели

// ScheduleResponse ответ с данными расписания
type ScheduleResponse struct {
	ID        int64     `json:"id"`
	MasterID  int64     `json:"masterId"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeekResponse недельное расписание мастера
type WeekResponse struct {
	MasterID  int64              `json:"masterId"`
	Schedules []ScheduleResponse `json:"schedules"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WorkSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:        s.ID,
		MasterID:  s.MasterID,
		Weekday:   s.Weekday,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainWeek конвертирует расписания мастера в DTO
func FromDomainWeek(masterID int64, schedules []*domain.WorkSchedule) *WeekResponse {
	resp := &WeekResponse{
		MasterID:  masterID,
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}
	for _, s := range schedules {
		resp.Schedules = append(resp.Schedules, *FromDomainSchedule(s))
	}
	return resp
}
