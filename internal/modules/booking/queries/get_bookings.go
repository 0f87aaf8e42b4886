package queries

import (
	"context"
	"net/http"
	"time"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/booking/domain"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
)

type GetBookingsQuery struct{}

// BookingsView carries the full list plus the derived upcoming/past
// split. The split is recomputed on every read so bookings age out
// without any state transition.
type BookingsView struct {
	Bookings []domain.Booking `json:"bookings"`
	Upcoming []domain.Booking `json:"upcoming"`
	Past     []domain.Booking `json:"past"`
}

func HandleGetBookings(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetBookingsQuery, BookingsView](r.Context(), GetBookingsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetBookingsQueryHandler struct {
	state *booking.State
	now   func() time.Time
}

func NewGetBookingsQueryHandler(state *booking.State, now func() time.Time) *GetBookingsQueryHandler {
	return &GetBookingsQueryHandler{state, now}
}

func (h *GetBookingsQueryHandler) Handle(ctx context.Context, _ GetBookingsQuery) (BookingsView, error) {
	bookings := h.state.Bookings()
	upcoming, past := domain.Partition(bookings, h.now())

	return BookingsView{
		Bookings: bookings,
		Upcoming: upcoming,
		Past:     past,
	}, nil
}
