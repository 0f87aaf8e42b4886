package commands

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"

	"github.com/eskrenkovic/mediator-go"
)

type LogoutCommand struct{}

func HandleLogout(w http.ResponseWriter, r *http.Request) {
	_, err := mediator.Send[LogoutCommand, core.Unit](r.Context(), LogoutCommand{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type LogoutCommandHandler struct {
	state *profile.State
}

func NewLogoutCommandHandler(state *profile.State) *LogoutCommandHandler {
	return &LogoutCommandHandler{state}
}

func (h *LogoutCommandHandler) Handle(ctx context.Context, _ LogoutCommand) (core.Unit, error) {
	h.state.ClearUser(ctx)
	return core.Unit{}, nil
}
