package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/catalog"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetCoachesQuery struct{}

func HandleGetCoaches(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetCoachesQuery, []catalog.Coach](r.Context(), GetCoachesQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetCoachesQueryHandler struct {
	repository *catalog.Repository
}

func NewGetCoachesQueryHandler(repository *catalog.Repository) *GetCoachesQueryHandler {
	return &GetCoachesQueryHandler{repository}
}

func (h *GetCoachesQueryHandler) Handle(ctx context.Context, _ GetCoachesQuery) ([]catalog.Coach, error) {
	return h.repository.Coaches(), nil
}

type GetCoachQuery struct {
	CoachID string
}

func HandleGetCoach(w http.ResponseWriter, r *http.Request) {
	query := GetCoachQuery{CoachID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetCoachQuery, catalog.Coach](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetCoachQueryHandler struct {
	repository *catalog.Repository
}

func NewGetCoachQueryHandler(repository *catalog.Repository) *GetCoachQueryHandler {
	return &GetCoachQueryHandler{repository}
}

func (h *GetCoachQueryHandler) Handle(ctx context.Context, request GetCoachQuery) (catalog.Coach, error) {
	coach, found := h.repository.Coach(request.CoachID)
	if !found {
		return catalog.Coach{}, core.NewNotFoundError("coach", request.CoachID)
	}

	return coach, nil
}
