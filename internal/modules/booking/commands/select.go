package commands

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
)

// Selection setters are plain writes. No range or slot validation -
// the selection only becomes a booking through the create command,
// which validates there.

type SetSelectedDayCommand struct {
	Day int `json:"day"`
}

func HandleSetSelectedDay(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetSelectedDayCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	_, err = mediator.Send[SetSelectedDayCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type SetSelectedDayCommandHandler struct {
	state *booking.State
}

func NewSetSelectedDayCommandHandler(state *booking.State) *SetSelectedDayCommandHandler {
	return &SetSelectedDayCommandHandler{state}
}

func (h *SetSelectedDayCommandHandler) Handle(
	ctx context.Context,
	request SetSelectedDayCommand,
) (core.Unit, error) {
	h.state.SetSelectedDay(ctx, request.Day)
	return core.Unit{}, nil
}

type SetSelectedTimeCommand struct {
	Time *string `json:"time"`
}

func HandleSetSelectedTime(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetSelectedTimeCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	_, err = mediator.Send[SetSelectedTimeCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type SetSelectedTimeCommandHandler struct {
	state *booking.State
}

func NewSetSelectedTimeCommandHandler(state *booking.State) *SetSelectedTimeCommandHandler {
	return &SetSelectedTimeCommandHandler{state}
}

func (h *SetSelectedTimeCommandHandler) Handle(
	ctx context.Context,
	request SetSelectedTimeCommand,
) (core.Unit, error) {
	h.state.SetSelectedTime(ctx, request.Time)
	return core.Unit{}, nil
}
