package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/catalog"
	"github.com/courtbook/courtbook/internal/modules/core"
	"github.com/courtbook/courtbook/internal/modules/profile"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// ClubView decorates a catalog club with the reader's favorite flag.
type ClubView struct {
	catalog.Club
	Favorite bool `json:"favorite"`
}

type GetClubsQuery struct{}

func HandleGetClubs(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetClubsQuery, []ClubView](r.Context(), GetClubsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetClubsQueryHandler struct {
	repository *catalog.Repository
	userState  *profile.State
}

func NewGetClubsQueryHandler(repository *catalog.Repository, userState *profile.State) *GetClubsQueryHandler {
	return &GetClubsQueryHandler{repository, userState}
}

func (h *GetClubsQueryHandler) Handle(ctx context.Context, _ GetClubsQuery) ([]ClubView, error) {
	return core.Map(h.repository.Clubs(), func(club catalog.Club) ClubView {
		return ClubView{Club: club, Favorite: h.userState.IsFavorite(club.ID)}
	}), nil
}

type GetClubQuery struct {
	ClubID string
}

func HandleGetClub(w http.ResponseWriter, r *http.Request) {
	query := GetClubQuery{ClubID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetClubQuery, ClubView](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetClubQueryHandler struct {
	repository *catalog.Repository
	userState  *profile.State
}

func NewGetClubQueryHandler(repository *catalog.Repository, userState *profile.State) *GetClubQueryHandler {
	return &GetClubQueryHandler{repository, userState}
}

func (h *GetClubQueryHandler) Handle(ctx context.Context, request GetClubQuery) (ClubView, error) {
	club, found := h.repository.Club(request.ClubID)
	if !found {
		return ClubView{}, core.NewNotFoundError("club", request.ClubID)
	}

	return ClubView{Club: club, Favorite: h.userState.IsFavorite(club.ID)}, nil
}
