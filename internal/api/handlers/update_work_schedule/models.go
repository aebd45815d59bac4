package update_work_schedule

import (
	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
)

// UpdateWorkScheduleRequest HTTP request model
type UpdateWorkScheduleRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkScheduleRequest) ToServiceRequest(masterID int64, weekday int) *models.SetScheduleRequest {
	return &models.SetScheduleRequest{
		MasterID:  masterID,
		Weekday:   weekday,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
