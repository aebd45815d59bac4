package set_work_schedule

import (
	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
)

// SetWorkScheduleRequest HTTP request model
type SetWorkScheduleRequest struct {
	Weekday   int    `json:"weekday"`   // ISO: 1 = понедельник, 7 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetWorkScheduleRequest) ToServiceRequest(masterID int64) *models.SetScheduleRequest {
	return &models.SetScheduleRequest{
		MasterID:  masterID,
		Weekday:   r.Weekday,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
