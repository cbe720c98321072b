package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/printeasy/printeasy/internal/adapter/cloudinary"
	"github.com/printeasy/printeasy/internal/config"
	"github.com/printeasy/printeasy/internal/domain/repository"
	"github.com/printeasy/printeasy/internal/usecase"
	"github.com/printeasy/printeasy/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newStorefrontFacade,
		newHTTPServer,
		newCleanupWorker,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Auth        *usecase.AuthUseCase
	Carts       *usecase.CartUseCase
	Orders      *usecase.OrderUseCase
	Fulfillment *usecase.FulfillmentUseCase
	Complaints  *usecase.ComplaintUseCase
	Media       cloudinary.Client
	Deletions   repository.MediaDeletionRepository
}

func newStorefrontFacade(p facadeParams) *StorefrontFacade {
	return NewStorefrontFacade(p.Auth, p.Carts, p.Orders, p.Fulfillment, p.Complaints, p.Media, p.Deletions)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newCleanupWorker(p workerParams) *worker.Cleanup {
	return worker.NewCleanup(
		p.Facade,
		p.Config.CleanupPollInterval,
		p.Config.CleanupBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.Cleanup
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting printeasy", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("printeasy stopped")
			return nil
		},
	})
}
