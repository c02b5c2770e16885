package cmd

import (
	"fmt"
	"log/slog"

	"lastmile/internal/adapters/out/device"
	"lastmile/internal/adapters/out/httpapi"
	"lastmile/internal/adapters/out/tokenfile"
	"lastmile/internal/core/application/session"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/application/views"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/ports"
	"lastmile/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	client *httpapi.Client
	tokens ports.TokenStore
	board  *views.Board

	location ports.LocationProvider
	push     ports.PushTokenProvider
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := tokenfile.NewStore(config.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("token store: %w", err)
	}

	location, err := device.NewStaticLocation(config.DeviceLatitude, config.DeviceLongitude)
	if err != nil {
		return nil, fmt.Errorf("device location: %w", err)
	}

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		client:   httpapi.NewClient(config.APIBaseURL, tokens, logger),
		tokens:   tokens,
		board:    views.NewBoard(),
		location: location,
		push:     device.NewStaticToken(config.PushToken),
	}, nil
}

func (c *CompositionRoot) Board() *views.Board {
	return c.board
}

func (c *CompositionRoot) CreateSessionManager() *session.Manager {
	return session.NewManager(c.client, c.tokens, c.push, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.client)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler(refresher commands.ViewRefresher) commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.client, refresher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.client)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.client)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.client)
}

func (c *CompositionRoot) CreatePushLocationCommandHandler() commands.PushLocationCommandHandler {
	return commands.NewPushLocationCommandHandler(c.client, c.location)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.client)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.client)
}

func (c *CompositionRoot) CreateRegisterPushTokenCommandHandler() commands.RegisterPushTokenCommandHandler {
	return commands.NewRegisterPushTokenCommandHandler(c.client, c.push)
}

func (c *CompositionRoot) CreateGetStoreOrdersQueryHandler() queries.GetStoreOrdersQueryHandler {
	return queries.NewGetStoreOrdersQueryHandler(c.client, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.client, c.logger)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.client, c.logger)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.client, c.logger)
}

func (c *CompositionRoot) CreateGetUserDetailQueryHandler() queries.GetUserDetailQueryHandler {
	return queries.NewGetUserDetailQueryHandler(c.client)
}

func (c *CompositionRoot) CreateRefresher(identity *actor.Actor) *jobs.Refresher {
	return jobs.NewRefresher(
		identity,
		c.board,
		c.CreateGetStoreOrdersQueryHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
		c.CreateGetArchivedOrdersQueryHandler(),
		c.config.PollWindowHours,
		c.config.MaxDistanceKm,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(identity *actor.Actor, refresher *jobs.Refresher) *jobs.JobManager {
	return jobs.NewJobManager(
		refresher,
		c.CreatePushLocationCommandHandler(),
		identity,
		jobs.Intervals{
			OrderRefresh: c.config.OrderRefreshInterval,
			LocationPush: c.config.LocationPushInterval,
		},
		c.logger,
	)
}
