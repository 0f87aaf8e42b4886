package queries

import (
	"context"
	"net/http"

	"github.com/courtbook/courtbook/internal/modules/catalog"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// GetClubTimeSlotsQuery returns the bookable slot grid for one club.
// The grid itself is shared reference data, but the lookup still 404s
// on an unknown club instead of answering for a venue that does not
// exist.
type GetClubTimeSlotsQuery struct {
	ClubID string
}

func HandleGetClubTimeSlots(w http.ResponseWriter, r *http.Request) {
	query := GetClubTimeSlotsQuery{ClubID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetClubTimeSlotsQuery, []string](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetClubTimeSlotsQueryHandler struct {
	repository *catalog.Repository
}

func NewGetClubTimeSlotsQueryHandler(repository *catalog.Repository) *GetClubTimeSlotsQueryHandler {
	return &GetClubTimeSlotsQueryHandler{repository}
}

func (h *GetClubTimeSlotsQueryHandler) Handle(
	ctx context.Context,
	request GetClubTimeSlotsQuery,
) ([]string, error) {
	if _, found := h.repository.Club(request.ClubID); !found {
		return nil, core.NewNotFoundError("club", request.ClubID)
	}

	return h.repository.TimeSlots(), nil
}
