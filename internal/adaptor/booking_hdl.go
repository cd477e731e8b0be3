package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/dto/response"
	"github.com/Eughami/cinema-dj-be/internal/usecase"
	"github.com/Eughami/cinema-dj-be/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /book
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Reject malformed requests before the service opens a transaction
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	summary, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, response.CreateBookingResponse{
		Success:        true,
		BookingSummary: *summary,
	})
}

// VerifyBooking handles GET /verify-booking/{bookingId}
func (h *BookingHandler) VerifyBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Booking ID must be a positive number", nil)
		return
	}

	booking, err := h.service.VerifyBooking(r.Context(), bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "verify booking")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, booking)
}
