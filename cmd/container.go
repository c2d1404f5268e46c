package cmd

import (
	"go.uber.org/dig"

	"github.com/sagesphinx63920/updatechecker/application"
	"github.com/sagesphinx63920/updatechecker/domain"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher/github"
)

// newFetcherRegistry registers both release-lookup strategies.
func newFetcherRegistry() *fetcher.Registry {
	registry := fetcher.NewRegistry()
	registry.Register(fetcher.ModePublic, func(author, name, _ string) domain.ReleaseFetcher {
		return github.NewPublicFetcher(author, name)
	})
	registry.Register(fetcher.ModeAPI, func(author, name, token string) domain.ReleaseFetcher {
		return github.NewAPIFetcher(author, name, token)
	})
	return registry
}

// injectWatchService wires the service dependencies via DIG.
func injectWatchService() *application.WatchService {
	container := dig.New()

	if err := container.Provide(newFetcherRegistry); err != nil {
		panic(err)
	}
	if err := container.Provide(application.NewWatchService); err != nil {
		panic(err)
	}

	var service *application.WatchService
	if err := container.Invoke(func(s *application.WatchService) {
		service = s
	}); err != nil {
		panic(err)
	}

	return service
}
