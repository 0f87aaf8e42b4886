package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// ToggleFavoriteClubCommand is a pure toggle - the club id is not
// checked against the catalog and the operation always succeeds.
type ToggleFavoriteClubCommand struct {
	ClubID string
}

func (c ToggleFavoriteClubCommand) Validate() error {
	if c.ClubID == "" {
		return fmt.Errorf("invalid ClubID - '%s'", c.ClubID)
	}

	return nil
}

type ToggleFavoriteClubResponse struct {
	ClubID   string `json:"clubId"`
	Favorite bool   `json:"favorite"`
}

func HandleToggleFavoriteClub(w http.ResponseWriter, r *http.Request) {
	command := ToggleFavoriteClubCommand{ClubID: chi.URLParam(r, "id")}

	response, err := mediator.Send[ToggleFavoriteClubCommand, ToggleFavoriteClubResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ToggleFavoriteClubCommandHandler struct {
	state *profile.State
}

func NewToggleFavoriteClubCommandHandler(state *profile.State) *ToggleFavoriteClubCommandHandler {
	return &ToggleFavoriteClubCommandHandler{state}
}

func (h *ToggleFavoriteClubCommandHandler) Handle(
	ctx context.Context,
	request ToggleFavoriteClubCommand,
) (ToggleFavoriteClubResponse, error) {
	favorite := h.state.ToggleFavoriteClub(ctx, request.ClubID)

	return ToggleFavoriteClubResponse{ClubID: request.ClubID, Favorite: favorite}, nil
}
