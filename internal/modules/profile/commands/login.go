package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"
	"github.com/courtbook/courtbook/internal/modules/profile/domain"

	"github.com/eskrenkovic/mediator-go"
)

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCommand) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("invalid Email - '%s'", c.Email)
	}

	if c.Password == "" {
		return fmt.Errorf("invalid Password")
	}

	return nil
}

func HandleLogin(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[LoginCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[LoginCommand, domain.User](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type LoginCommandHandler struct {
	state *profile.State
}

func NewLoginCommandHandler(state *profile.State) *LoginCommandHandler {
	return &LoginCommandHandler{state}
}

func (h *LoginCommandHandler) Handle(ctx context.Context, request LoginCommand) (domain.User, error) {
	user := domain.LoginUser(request.Email)

	if err := h.state.SetUser(ctx, user); err != nil {
		return domain.User{}, core.NewCommandError(500, err.Error(), core.WithReason("failed to store user"))
	}

	return user, nil
}
