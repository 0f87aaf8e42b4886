package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
)

type GetSelectionQuery struct{}

type SelectionView struct {
	SelectedDay  int     `json:"selectedDay"`
	SelectedTime *string `json:"selectedTime"`
}

func HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetSelectionQuery, SelectionView](r.Context(), GetSelectionQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSelectionQueryHandler struct {
	state *booking.State
}

func NewGetSelectionQueryHandler(state *booking.State) *GetSelectionQueryHandler {
	return &GetSelectionQueryHandler{state}
}

func (h *GetSelectionQueryHandler) Handle(ctx context.Context, _ GetSelectionQuery) (SelectionView, error) {
	day, t := h.state.Selection()
	return SelectionView{SelectedDay: day, SelectedTime: t}, nil
}
