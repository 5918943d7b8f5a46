package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/availability"
)

var rejectionMessages = map[availability.ReasonCode]string{
	availability.ReasonClosedDay:           "салон закрыт в выбранный день",
	availability.ReasonOutsideWorkingHours: "время вне рабочих часов мастера",
	availability.ReasonInsideBreak:         "время попадает на перерыв мастера",
	availability.ReasonTimeOff:             "мастер отсутствует в выбранное время",
	availability.ReasonOverlap:             "выбранное время уже занято",
	availability.ReasonSlotUnavailable:     "выбранный временной слот недоступен",
}

// RejectionMessage текст отказа для кода причины
func RejectionMessage(reason availability.ReasonCode) string {
	if msg, ok := rejectionMessages[reason]; ok {
		return msg
	}
	return rejectionMessages[availability.ReasonSlotUnavailable]
}

// RespondDecisionRejection 409 с кодом причины и стандартным текстом
func RespondDecisionRejection(w http.ResponseWriter, reason availability.ReasonCode) {
	RespondRejection(w, string(reason), RejectionMessage(reason))
}
