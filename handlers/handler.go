package handlers

import (
	"context"

	"go.uber.org/zap"

	"tripplanner/database"
	"tripplanner/services"
)

// Store is the persistence the account and feedback handlers need.
type Store interface {
	CreateUser(ctx context.Context, u *database.User) (int64, error)
	UserByEmail(ctx context.Context, email string) (*database.User, error)
	SaveFeedback(ctx context.Context, f *database.Feedback) (int64, error)
	Ping(ctx context.Context) error
}

// RouteFinder looks up map routes.
type RouteFinder interface {
	Routes(ctx context.Context, req services.DirectionsRequest) ([]services.Route, error)
}

// Handler carries the dependencies of every endpoint. Maps and Mailer
// are optional and may be nil.
type Handler struct {
	Planner *services.Planner
	Store   Store
	Maps    RouteFinder
	Mailer  services.Mailer
	Log     *zap.Logger
}

func New(planner *services.Planner, store Store, directions RouteFinder, mailer services.Mailer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Planner: planner,
		Store:   store,
		Maps:    directions,
		Mailer:  mailer,
		Log:     log,
	}
}
