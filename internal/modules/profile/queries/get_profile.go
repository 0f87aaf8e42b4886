package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"
	"github.com/courtbook/courtbook/internal/modules/profile/domain"

	"github.com/eskrenkovic/mediator-go"
)

type GetProfileQuery struct{}

func HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetProfileQuery, domain.User](r.Context(), GetProfileQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetProfileQueryHandler struct {
	state *profile.State
}

func NewGetProfileQueryHandler(state *profile.State) *GetProfileQueryHandler {
	return &GetProfileQueryHandler{state}
}

func (h *GetProfileQueryHandler) Handle(ctx context.Context, _ GetProfileQuery) (domain.User, error) {
	user, found := h.state.User()
	if !found {
		return domain.User{}, core.NewCommandError(404, "no signed-in user", core.WithReason("signed out"))
	}

	return user, nil
}
