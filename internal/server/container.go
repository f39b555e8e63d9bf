package server

import (
	"fmt"

	"github.com/nfrund/gopang/internal/activity"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/assets"
	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/handlers"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/pubsub"
	"github.com/nfrund/gopang/internal/rendering"
	"github.com/nfrund/gopang/web"
	"github.com/samber/do/v2"
)

// newInjector registers every service the server needs. Services are built
// lazily on first invocation.
func newInjector(cfg config.Provider) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideBus)
	do.Provide(i, provideEmitter)
	do.Provide(i, provideStore)
	do.Provide(i, provideMetrics)
	do.Provide(i, provideAssets)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideHandlerDependencies)
	return i
}

func provideBus(i do.Injector) (*pubsub.Bus, error) {
	return pubsub.NewBus(), nil
}

func provideEmitter(i do.Injector) (*activity.Emitter, error) {
	return activity.NewEmitter(do.MustInvoke[*pubsub.Bus](i)), nil
}

// provideStore builds the UI state store and routes its navigation events
// onto the bus.
func provideStore(i do.Injector) (*app.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	emitter := do.MustInvoke[*activity.Emitter](i)

	store := app.NewStore(cfg.GetStateTTL())
	store.OnNavigate(emitter.Navigated)
	return store, nil
}

func provideMetrics(i do.Injector) (*metrics.Metrics, error) {
	store := do.MustInvoke[*app.Store](i)
	return metrics.New(store.Len), nil
}

func provideAssets(i do.Injector) (*assets.Assets, error) {
	cfg := do.MustInvoke[config.Provider](i)
	switch cfg.GetAssetsMode() {
	case config.AssetsDisk:
		return assets.FromDisk(cfg.GetAssetsDir())
	case config.AssetsEmbed:
		return assets.FromEmbed(web.FS)
	default:
		return nil, fmt.Errorf("unknown assets mode %q", cfg.GetAssetsMode())
	}
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideHandlerDependencies(i do.Injector) (handlers.Dependencies, error) {
	a, err := do.Invoke[*assets.Assets](i)
	if err != nil {
		return handlers.Dependencies{}, fmt.Errorf("failed to load static assets: %w", err)
	}
	return handlers.Dependencies{
		Renderer: do.MustInvoke[rendering.Renderer](i),
		Metrics:  do.MustInvoke[*metrics.Metrics](i),
		Events:   do.MustInvoke[*activity.Emitter](i),
		Assets:   a,
	}, nil
}
