package commands

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"

	"github.com/eskrenkovic/mediator-go"
)

// EnableLocationCommand flips the app-level location flag on. One-way
// - nothing in the client ever turns it back off.
type EnableLocationCommand struct{}

func HandleEnableLocation(w http.ResponseWriter, r *http.Request) {
	_, err := mediator.Send[EnableLocationCommand, core.Unit](r.Context(), EnableLocationCommand{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type EnableLocationCommandHandler struct {
	state *profile.State
}

func NewEnableLocationCommandHandler(state *profile.State) *EnableLocationCommandHandler {
	return &EnableLocationCommandHandler{state}
}

func (h *EnableLocationCommandHandler) Handle(ctx context.Context, _ EnableLocationCommand) (core.Unit, error) {
	h.state.EnableLocation(ctx)
	return core.Unit{}, nil
}
