package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"cs-hours/api"
	"cs-hours/api/besttime"
	"cs-hours/config"
	"cs-hours/dao/redis"
	"cs-hours/db"
	"cs-hours/server"
	"cs-hours/server/handlers"
	services "cs-hours/service"
	"cs-hours/util"
)

// IN_MEMORY_REDIS_ADDRESS selects the in-memory store instead of a Redis server.
const IN_MEMORY_REDIS_ADDRESS = "memory"

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	BestTimeAPI            besttime.BestTimeAPI
	VenueHoursService      *services.VenueHoursService
	VenuesRefresherService *services.VenuesRefresherService
	VenueHandler           *handlers.VenueHandler
	HoursHandler           *handlers.HoursHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	CrowdSenseHttpServer   *server.CrowdSenseHttpServer

	closeRedis func() error
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.Environment).Msg("Initializing container")

	redisClient, closeRedis, err := newRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	bestTimeApiClient, err := newBestTimeAPI(cfg)
	if err != nil {
		closeRedis()
		return nil, err
	}

	venueHoursService := services.NewVenueHoursService(redisVenueDao, nil)
	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, bestTimeApiClient, cfg.Refresher.VenueIDsPath)

	venueHandler := handlers.NewVenueHandler(venueHoursService)
	hoursHandler := handlers.NewHoursHandler(venueHoursService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, hoursHandler, muxRouter)
	crowdSenseHttpServer := server.NewCrowdSenseHttpServer(router, muxRouter, cfg.Addr())

	return &Container{
		Config:                 cfg,
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		BestTimeAPI:            bestTimeApiClient,
		VenueHoursService:      venueHoursService,
		VenuesRefresherService: venuesRefresherService,
		VenueHandler:           venueHandler,
		HoursHandler:           hoursHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		CrowdSenseHttpServer:   crowdSenseHttpServer,
		closeRedis:             closeRedis,
	}, nil
}

// Close releases the Redis connection.
func (c *Container) Close() error {
	return c.closeRedis()
}

func newRedisClient(ctx context.Context, cfg *config.Config) (db.RedisClient, func() error, error) {
	if cfg.Redis.Address == IN_MEMORY_REDIS_ADDRESS {
		log.Warn().Msg("Using in-memory venue store")
		return db.NewMockRedisClient(), func() error { return nil }, nil
	}

	client := db.NewGeoRedisClient(goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Address, err)
	}
	return client, client.Close, nil
}

func newBestTimeAPI(cfg *config.Config) (besttime.BestTimeAPI, error) {
	if !cfg.IsProd() {
		venues, err := util.ReadVenuesFromJSON(cfg.Refresher.FixturePath)
		if err != nil {
			log.Warn().Err(err).Msg("No venue fixture, mock best time api starts empty")
		}
		log.Info().Int("venues", len(venues)).Msg("Using mock best time api")
		return besttime.NewBestTimeApiClientMock(venues...), nil
	}

	log.Info().Msg("Using prod best time api")
	client := besttime.NewBestTimeApiClient(api.NewHTTPClient(cfg.BestTime.EndpointBase, cfg.BestTimeTimeout()))
	client.SetCredentials(cfg.BestTime.PublicKey, cfg.BestTime.PrivateKey)
	return client, nil
}
