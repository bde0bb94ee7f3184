//go:build wireinject
// +build wireinject

package di

import (
	"backlog/config"
	"backlog/infras/kafka"
	"backlog/infras/otel"
	"backlog/infras/redis"
	todoHandler "backlog/internal/handlers/todo"
	"backlog/shared/cache"
	"backlog/shared/events"
	"backlog/transport/http"
	"backlog/transport/http/middleware"
	"backlog/transport/http/router"

	todoRepository "backlog/internal/domains/todo/repository"
	todoService "backlog/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
