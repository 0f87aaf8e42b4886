package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/courtbook/courtbook/internal/config"
	bookingstate "github.com/courtbook/courtbook/internal/modules/booking"
	bookingcommands "github.com/courtbook/courtbook/internal/modules/booking/commands"
	bookingdomain "github.com/courtbook/courtbook/internal/modules/booking/domain"
	bookingqueries "github.com/courtbook/courtbook/internal/modules/booking/queries"
	"github.com/courtbook/courtbook/internal/modules/catalog"
	catalogqueries "github.com/courtbook/courtbook/internal/modules/catalog/queries"
	"github.com/courtbook/courtbook/internal/modules/core"
	profilestate "github.com/courtbook/courtbook/internal/modules/profile"
	profilecommands "github.com/courtbook/courtbook/internal/modules/profile/commands"
	profiledomain "github.com/courtbook/courtbook/internal/modules/profile/domain"
	profilequeries "github.com/courtbook/courtbook/internal/modules/profile/queries"
	"github.com/courtbook/courtbook/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	zap.ReplaceGlobals(config.Logger)

	var store storage.Store
	if config.RedisURL != "" {
		redisStore, err := storage.NewRedisStore(config.RedisURL)
		if err != nil {
			return nil, err
		}
		store = redisStore
	} else {
		store = storage.NewMemoryStore()
	}

	userState := profilestate.NewState(baseCtx, store, config.Logger)
	bookingState := bookingstate.NewState(baseCtx, store, config.Logger, time.Now())
	catalogRepository := catalog.NewRepository()

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	// profile

	loginHandler := profilecommands.NewLoginCommandHandler(userState)
	err := mediator.RegisterRequestHandler[profilecommands.LoginCommand, profiledomain.User](
		loginHandler,
	)
	if err != nil {
		return nil, err
	}

	registerHandler := profilecommands.NewRegisterCommandHandler(userState)
	err = mediator.RegisterRequestHandler[profilecommands.RegisterCommand, profiledomain.User](
		registerHandler,
	)
	if err != nil {
		return nil, err
	}

	logoutHandler := profilecommands.NewLogoutCommandHandler(userState)
	err = mediator.RegisterRequestHandler[profilecommands.LogoutCommand, core.Unit](
		logoutHandler,
	)
	if err != nil {
		return nil, err
	}

	enableLocationHandler := profilecommands.NewEnableLocationCommandHandler(userState)
	err = mediator.RegisterRequestHandler[profilecommands.EnableLocationCommand, core.Unit](
		enableLocationHandler,
	)
	if err != nil {
		return nil, err
	}

	toggleFavoriteHandler := profilecommands.NewToggleFavoriteClubCommandHandler(userState)
	err = mediator.RegisterRequestHandler[profilecommands.ToggleFavoriteClubCommand, profilecommands.ToggleFavoriteClubResponse](
		toggleFavoriteHandler,
	)
	if err != nil {
		return nil, err
	}

	getProfileHandler := profilequeries.NewGetProfileQueryHandler(userState)
	err = mediator.RegisterRequestHandler[profilequeries.GetProfileQuery, profiledomain.User](
		getProfileHandler,
	)
	if err != nil {
		return nil, err
	}

	getFavoriteClubsHandler := profilequeries.NewGetFavoriteClubsQueryHandler(userState)
	err = mediator.RegisterRequestHandler[profilequeries.GetFavoriteClubsQuery, []string](
		getFavoriteClubsHandler,
	)
	if err != nil {
		return nil, err
	}

	// booking

	createBookingHandler := bookingcommands.NewCreateBookingCommandHandler(
		bookingState,
		catalogRepository,
		time.Now,
	)
	err = mediator.RegisterRequestHandler[bookingcommands.CreateBookingCommand, bookingcommands.CreateBookingResponse](
		createBookingHandler,
	)
	if err != nil {
		return nil, err
	}

	cancelBookingHandler := bookingcommands.NewCancelBookingCommandHandler(bookingState)
	err = mediator.RegisterRequestHandler[bookingcommands.CancelBookingCommand, core.Unit](
		cancelBookingHandler,
	)
	if err != nil {
		return nil, err
	}

	setSelectedDayHandler := bookingcommands.NewSetSelectedDayCommandHandler(bookingState)
	err = mediator.RegisterRequestHandler[bookingcommands.SetSelectedDayCommand, core.Unit](
		setSelectedDayHandler,
	)
	if err != nil {
		return nil, err
	}

	setSelectedTimeHandler := bookingcommands.NewSetSelectedTimeCommandHandler(bookingState)
	err = mediator.RegisterRequestHandler[bookingcommands.SetSelectedTimeCommand, core.Unit](
		setSelectedTimeHandler,
	)
	if err != nil {
		return nil, err
	}

	getBookingsHandler := bookingqueries.NewGetBookingsQueryHandler(bookingState, time.Now)
	err = mediator.RegisterRequestHandler[bookingqueries.GetBookingsQuery, bookingqueries.BookingsView](
		getBookingsHandler,
	)
	if err != nil {
		return nil, err
	}

	getBookingHandler := bookingqueries.NewGetBookingQueryHandler(bookingState)
	err = mediator.RegisterRequestHandler[bookingqueries.GetBookingQuery, bookingdomain.Booking](
		getBookingHandler,
	)
	if err != nil {
		return nil, err
	}

	getSelectionHandler := bookingqueries.NewGetSelectionQueryHandler(bookingState)
	err = mediator.RegisterRequestHandler[bookingqueries.GetSelectionQuery, bookingqueries.SelectionView](
		getSelectionHandler,
	)
	if err != nil {
		return nil, err
	}

	// catalog

	getClubsHandler := catalogqueries.NewGetClubsQueryHandler(catalogRepository, userState)
	err = mediator.RegisterRequestHandler[catalogqueries.GetClubsQuery, []catalogqueries.ClubView](
		getClubsHandler,
	)
	if err != nil {
		return nil, err
	}

	getClubHandler := catalogqueries.NewGetClubQueryHandler(catalogRepository, userState)
	err = mediator.RegisterRequestHandler[catalogqueries.GetClubQuery, catalogqueries.ClubView](
		getClubHandler,
	)
	if err != nil {
		return nil, err
	}

	getClubTimeSlotsHandler := catalogqueries.NewGetClubTimeSlotsQueryHandler(catalogRepository)
	err = mediator.RegisterRequestHandler[catalogqueries.GetClubTimeSlotsQuery, []string](
		getClubTimeSlotsHandler,
	)
	if err != nil {
		return nil, err
	}

	getCoachesHandler := catalogqueries.NewGetCoachesQueryHandler(catalogRepository)
	err = mediator.RegisterRequestHandler[catalogqueries.GetCoachesQuery, []catalog.Coach](
		getCoachesHandler,
	)
	if err != nil {
		return nil, err
	}

	getCoachHandler := catalogqueries.NewGetCoachQueryHandler(catalogRepository)
	err = mediator.RegisterRequestHandler[catalogqueries.GetCoachQuery, catalog.Coach](
		getCoachHandler,
	)
	if err != nil {
		return nil, err
	}

	getMatchesHandler := catalogqueries.NewGetMatchesQueryHandler(catalogRepository)
	err = mediator.RegisterRequestHandler[catalogqueries.GetMatchesQuery, []catalog.Match](
		getMatchesHandler,
	)
	if err != nil {
		return nil, err
	}

	getMatchHandler := catalogqueries.NewGetMatchQueryHandler(catalogRepository)
	err = mediator.RegisterRequestHandler[catalogqueries.GetMatchQuery, catalog.Match](
		getMatchHandler,
	)
	if err != nil {
		return nil, err
	}

	// http

	r := chi.NewRouter()
	r.Use(baseContextMiddleware(baseCtx))
	r.Use(core.CorrelationIDHTTPMiddleware)

	r.Post("/auth/login", profilecommands.HandleLogin)
	r.Post("/auth/logout", profilecommands.HandleLogout)
	r.Post("/auth/registrations", profilecommands.HandleRegistration)

	r.Get("/profile", profilequeries.HandleGetProfile)
	r.Get("/profile/favorite-clubs", profilequeries.HandleGetFavoriteClubs)
	r.Post("/profile/actions/enable-location", profilecommands.HandleEnableLocation)

	r.Get("/clubs", catalogqueries.HandleGetClubs)
	r.Get("/clubs/{id}", catalogqueries.HandleGetClub)
	r.Get("/clubs/{id}/time-slots", catalogqueries.HandleGetClubTimeSlots)
	r.Put("/clubs/{id}/actions/toggle-favorite", profilecommands.HandleToggleFavoriteClub)

	r.Get("/coaches", catalogqueries.HandleGetCoaches)
	r.Get("/coaches/{id}", catalogqueries.HandleGetCoach)

	r.Get("/matches", catalogqueries.HandleGetMatches)
	r.Get("/matches/{id}", catalogqueries.HandleGetMatch)

	r.Get("/bookings", bookingqueries.HandleGetBookings)
	r.Post("/bookings", bookingcommands.HandleCreateBooking)
	r.Get("/bookings/{id}", bookingqueries.HandleGetBooking)
	r.Put("/bookings/{id}/actions/cancel", bookingcommands.HandleCancelBooking)

	r.Get("/bookings/selection", bookingqueries.HandleGetSelection)
	r.Put("/bookings/selection/day", bookingcommands.HandleSetSelectedDay)
	r.Put("/bookings/selection/time", bookingcommands.HandleSetSelectedTime)

	server := http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
	}

	return &HTTPServer{server: &server}, nil
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}

func baseContextMiddleware(baseCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			baseCtx := baseCtx

			if v, ok := ctx.Value(http.ServerContextKey).(*http.Server); ok {
				baseCtx = context.WithValue(baseCtx, http.ServerContextKey, v)
			}

			if v, ok := ctx.Value(http.LocalAddrContextKey).(net.Addr); ok {
				baseCtx = context.WithValue(baseCtx, http.LocalAddrContextKey, v)
			}

			next.ServeHTTP(w, r.WithContext(baseCtx))
		})
	}
}
