package di

import (
	"go.uber.org/fx"

	"github.com/printeasy/printeasy/internal/adapter/cloudinary"
	"github.com/printeasy/printeasy/internal/adapter/razorpay"
	"github.com/printeasy/printeasy/internal/app"
	"github.com/printeasy/printeasy/internal/config"
	"github.com/printeasy/printeasy/internal/logger"
	"github.com/printeasy/printeasy/internal/pkg/auth"
	"github.com/printeasy/printeasy/internal/server/http/handlers"
	"github.com/printeasy/printeasy/internal/server/http/router"
	"github.com/printeasy/printeasy/internal/storage/postgres"
	"github.com/printeasy/printeasy/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		cloudinary.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
