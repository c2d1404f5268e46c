package fetcher

import (
	"fmt"

	"github.com/sagesphinx63920/updatechecker/domain"
)

// Mode names for the two release-lookup strategies.
const (
	ModePublic = "public"
	ModeAPI    = "api"
)

// Factory is a constructor function that creates a ReleaseFetcher for a
// repository. The token is empty in public mode.
type Factory func(author, name, token string) domain.ReleaseFetcher

// Registry manages the registered release-fetch strategies.
type Registry struct {
	fetchers map[string]Factory
}

// NewRegistry creates an empty fetcher registry.
func NewRegistry() *Registry {
	return &Registry{
		fetchers: make(map[string]Factory),
	}
}

// Register adds a fetcher factory under the given mode name (e.g. "public").
func (r *Registry) Register(mode string, factory Factory) {
	r.fetchers[mode] = factory
}

// Get returns a configured fetcher for the given mode and repository.
func (r *Registry) Get(mode, author, name, token string) (domain.ReleaseFetcher, error) {
	factory, ok := r.fetchers[mode]
	if !ok {
		return nil, fmt.Errorf("unknown fetch mode: %q", mode)
	}
	return factory(author, name, token), nil
}

// Names returns the list of registered mode names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fetchers))
	for name := range r.fetchers {
		names = append(names, name)
	}
	return names
}
