package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"

	"github.com/eskrenkovic/mediator-go"
)

type GetFavoriteClubsQuery struct{}

func HandleGetFavoriteClubs(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetFavoriteClubsQuery, []string](
		r.Context(),
		GetFavoriteClubsQuery{},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetFavoriteClubsQueryHandler struct {
	state *profile.State
}

func NewGetFavoriteClubsQueryHandler(state *profile.State) *GetFavoriteClubsQueryHandler {
	return &GetFavoriteClubsQueryHandler{state}
}

func (h *GetFavoriteClubsQueryHandler) Handle(ctx context.Context, _ GetFavoriteClubsQuery) ([]string, error) {
	return h.state.FavoriteClubs(), nil
}
