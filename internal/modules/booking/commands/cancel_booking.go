package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// CancelBookingCommand removes a booking by identity. Idempotent - an
// unknown id leaves the list unchanged and still succeeds.
type CancelBookingCommand struct {
	BookingID string
}

func (c CancelBookingCommand) Validate() error {
	if c.BookingID == "" {
		return fmt.Errorf("invalid BookingID - '%s'", c.BookingID)
	}

	return nil
}

func HandleCancelBooking(w http.ResponseWriter, r *http.Request) {
	command := CancelBookingCommand{BookingID: chi.URLParam(r, "id")}

	_, err := mediator.Send[CancelBookingCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type CancelBookingCommandHandler struct {
	state *booking.State
}

func NewCancelBookingCommandHandler(state *booking.State) *CancelBookingCommandHandler {
	return &CancelBookingCommandHandler{state}
}

func (h *CancelBookingCommandHandler) Handle(
	ctx context.Context,
	request CancelBookingCommand,
) (core.Unit, error) {
	h.state.Cancel(ctx, request.BookingID)
	return core.Unit{}, nil
}
