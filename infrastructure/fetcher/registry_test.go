package fetcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagesphinx63920/updatechecker/domain"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher/github"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a registered fetcher", func(t *testing.T) {
		t.Parallel()

		// given
		registry := fetcher.NewRegistry()
		registry.Register(fetcher.ModePublic, func(author, name, _ string) domain.ReleaseFetcher {
			return github.NewPublicFetcher(author, name)
		})

		// when
		f, err := registry.Get(fetcher.ModePublic, "sage", "plugin", "")

		// then
		require.NoError(t, err)
		assert.IsType(t, &github.PublicFetcher{}, f)
	})

	t.Run("should fail for an unknown mode", func(t *testing.T) {
		t.Parallel()

		// given
		registry := fetcher.NewRegistry()

		// when
		_, err := registry.Get("carrier-pigeon", "sage", "plugin", "")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown fetch mode")
	})

	t.Run("should list registered mode names", func(t *testing.T) {
		t.Parallel()

		// given
		registry := fetcher.NewRegistry()
		registry.Register(fetcher.ModePublic, func(author, name, _ string) domain.ReleaseFetcher {
			return github.NewPublicFetcher(author, name)
		})
		registry.Register(fetcher.ModeAPI, func(author, name, token string) domain.ReleaseFetcher {
			return github.NewAPIFetcher(author, name, token)
		})

		// when
		names := registry.Names()

		// then
		assert.ElementsMatch(t, []string{"public", "api"}, names)
	})
}
