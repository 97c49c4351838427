package di

import (
	"go.uber.org/fx"

	"github.com/chlagouGhassen/pizza-petes/internal/adapter/catalogcache"
	"github.com/chlagouGhassen/pizza-petes/internal/app"
	"github.com/chlagouGhassen/pizza-petes/internal/config"
	"github.com/chlagouGhassen/pizza-petes/internal/logger"
	"github.com/chlagouGhassen/pizza-petes/internal/pkg/auth"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/handlers"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/middleware"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/router"
	"github.com/chlagouGhassen/pizza-petes/internal/storage/postgres"
	"github.com/chlagouGhassen/pizza-petes/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		catalogcache.Module,
		usecase.Module,
		fx.Provide(
			func(facade *app.PizzeriaFacade) handlers.PizzeriaFacade { return facade },
			func(facade *app.PizzeriaFacade) middleware.AccountSource { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
