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

type RegisterCommand struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c RegisterCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("invalid Name - '%s'", c.Name)
	}

	if c.Email == "" {
		return fmt.Errorf("invalid Email - '%s'", c.Email)
	}

	if c.Password == "" {
		return fmt.Errorf("invalid Password")
	}

	if c.Password != c.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	return nil
}

func HandleRegistration(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[RegisterCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[RegisterCommand, domain.User](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type RegisterCommandHandler struct {
	state *profile.State
}

func NewRegisterCommandHandler(state *profile.State) *RegisterCommandHandler {
	return &RegisterCommandHandler{state}
}

func (h *RegisterCommandHandler) Handle(ctx context.Context, request RegisterCommand) (domain.User, error) {
	user := domain.RegisterUser(request.Name)

	if err := h.state.SetUser(ctx, user); err != nil {
		return domain.User{}, core.NewCommandError(500, err.Error(), core.WithReason("failed to store user"))
	}

	return user, nil
}
