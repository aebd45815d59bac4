package handlers

import (
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

// RespondRejection ответ на отказ цепочки правил записи.
// Пересечение с другой записью 409, остальные нарушения расписания 422, формат 400
func RespondRejection(w http.ResponseWriter, message string, ve *scheduling.ValidationError) {
	status := http.StatusUnprocessableEntity
	switch ve.Rule {
	case scheduling.RuleNoOverlap:
		status = http.StatusConflict
	case scheduling.RuleRequiredFields:
		status = http.StatusBadRequest
	}
	RespondJSON(w, status, ErrorResponse{Error: message, Reason: ve.Reason, Rule: ve.Rule})
}

// RespondRetrySlotSearch запись проиграла гонку, клиенту нужно заново запросить слоты
func RespondRetrySlotSearch(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message, RetrySlotSearch: true})
}
