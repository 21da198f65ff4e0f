//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"devstats/internal"
	"devstats/internal/controllers"
	"devstats/internal/providers"
	"devstats/internal/services"
	"devstats/internal/storage"
	"devstats/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewHttpClientProvider,

		services.NewStatsService,
		storage.NewEnquiryStore,
		storage.NewSerializedEnquiryStore,
		controllers.NewStatsController,
		controllers.NewEnquiryController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
