package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/booking/domain"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetBookingQuery struct {
	BookingID string
}

func HandleGetBooking(w http.ResponseWriter, r *http.Request) {
	query := GetBookingQuery{BookingID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetBookingQuery, domain.Booking](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetBookingQueryHandler struct {
	state *booking.State
}

func NewGetBookingQueryHandler(state *booking.State) *GetBookingQueryHandler {
	return &GetBookingQueryHandler{state}
}

func (h *GetBookingQueryHandler) Handle(ctx context.Context, request GetBookingQuery) (domain.Booking, error) {
	b, found := h.state.Booking(request.BookingID)
	if !found {
		return domain.Booking{}, core.NewNotFoundError("booking", request.BookingID)
	}

	return b, nil
}
