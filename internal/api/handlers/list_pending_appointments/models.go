package list_pending_appointments

import (
	"strconv"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров, пустые значения остаются нулевыми
func ToServiceRequest(limitStr, offsetStr string) (*models.PendingRequest, error) {
	req := &models.PendingRequest{}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
