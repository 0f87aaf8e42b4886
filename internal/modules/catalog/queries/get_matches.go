package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/catalog"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetMatchesQuery struct{}

func HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetMatchesQuery, []catalog.Match](r.Context(), GetMatchesQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetMatchesQueryHandler struct {
	repository *catalog.Repository
}

func NewGetMatchesQueryHandler(repository *catalog.Repository) *GetMatchesQueryHandler {
	return &GetMatchesQueryHandler{repository}
}

func (h *GetMatchesQueryHandler) Handle(ctx context.Context, _ GetMatchesQuery) ([]catalog.Match, error) {
	return h.repository.Matches(), nil
}

type GetMatchQuery struct {
	MatchID string
}

func HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	query := GetMatchQuery{MatchID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetMatchQuery, catalog.Match](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetMatchQueryHandler struct {
	repository *catalog.Repository
}

func NewGetMatchQueryHandler(repository *catalog.Repository) *GetMatchQueryHandler {
	return &GetMatchQueryHandler{repository}
}

func (h *GetMatchQueryHandler) Handle(ctx context.Context, request GetMatchQuery) (catalog.Match, error) {
	match, found := h.repository.Match(request.MatchID)
	if !found {
		return catalog.Match{}, core.NewNotFoundError("match", request.MatchID)
	}

	return match, nil
}
