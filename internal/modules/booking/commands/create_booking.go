package commands

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"path"
	"time"

	"github.com/courtbook/courtbook/internal/modules/booking"
	"github.com/courtbook/courtbook/internal/modules/booking/domain"
	"github.com/courtbook/courtbook/internal/modules/catalog"
	"github.com/courtbook/courtbook/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	ClubID   string   `json:"clubId"`
	Day      int      `json:"day"`
	Time     string   `json:"time"`
	Duration int      `json:"duration"`
	Players  []string `json:"players"`
}

func (c CreateBookingCommand) Validate() error {
	if c.ClubID == "" {
		return fmt.Errorf("invalid ClubID - '%s'", c.ClubID)
	}

	if c.Day < 1 || c.Day > 31 {
		return fmt.Errorf("invalid Day - %d", c.Day)
	}

	if c.Time == "" {
		return fmt.Errorf("invalid Time - '%s'", c.Time)
	}

	if !domain.ValidDuration(c.Duration) {
		return fmt.Errorf("invalid Duration - %d, must be one of %v", c.Duration, domain.AllowedDurations)
	}

	return nil
}

type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
}

func HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateBookingCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateBookingCommand, CreateBookingResponse](
		r.Context(),
		command,
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := path.Join(r.Host, "bookings", response.BookingID)
	core.WriteCreated(w, r, location)
}

type CreateBookingCommandHandler struct {
	state *booking.State
	clubs *catalog.Repository
	now   func() time.Time
}

func NewCreateBookingCommandHandler(
	state *booking.State,
	clubs *catalog.Repository,
	now func() time.Time,
) *CreateBookingCommandHandler {
	return &CreateBookingCommandHandler{state, clubs, now}
}

func (h *CreateBookingCommandHandler) Handle(
	ctx context.Context,
	request CreateBookingCommand,
) (CreateBookingResponse, error) {
	club, found := h.clubs.Club(request.ClubID)
	if !found {
		return CreateBookingResponse{}, core.NewNotFoundError("club", request.ClubID)
	}

	players := request.Players
	if players == nil {
		players = []string{}
	}

	now := h.now()

	b := domain.Booking{
		ID:       uuid.NewString(),
		ClubID:   club.ID,
		Date:     fmt.Sprintf("%04d-%02d-%02d", now.Year(), int(now.Month()), request.Day),
		Time:     request.Time,
		Duration: request.Duration,
		// Assigned uniformly at random from the club's courts. Not
		// checked against existing bookings.
		Court:   rand.Intn(club.Courts) + 1,
		Players: players,
	}

	h.state.Add(ctx, b)

	return CreateBookingResponse{BookingID: b.ID}, nil
}
