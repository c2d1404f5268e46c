package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/sagesphinx63920/updatechecker/config"
)

// RepositoryConfigBuilder helps create test watch entries with a fluent interface.
type RepositoryConfigBuilder struct {
	*testkit.BaseBuilder
	author      string
	name        string
	version     string
	versionFrom string
	token       string
	message     string
	autoNotify  *bool
}

// NewRepositoryConfigBuilder creates a new builder with sensible defaults.
func NewRepositoryConfigBuilder() *RepositoryConfigBuilder {
	return &RepositoryConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		author:      "sage",
		name:        "plugin",
		version:     "1.0.0",
	}
}

// WithAuthor sets the repository owner.
func (b *RepositoryConfigBuilder) WithAuthor(author string) *RepositoryConfigBuilder {
	b.author = author
	return b
}

// WithName sets the repository name.
func (b *RepositoryConfigBuilder) WithName(name string) *RepositoryConfigBuilder {
	b.name = name
	return b
}

// WithVersion sets the current version string.
func (b *RepositoryConfigBuilder) WithVersion(version string) *RepositoryConfigBuilder {
	b.version = version
	return b
}

// WithVersionFrom sets a local clone path as the version source and clears
// the explicit version.
func (b *RepositoryConfigBuilder) WithVersionFrom(path string) *RepositoryConfigBuilder {
	b.versionFrom = path
	b.version = ""
	return b
}

// WithToken sets the access token, switching the entry to API mode.
func (b *RepositoryConfigBuilder) WithToken(token string) *RepositoryConfigBuilder {
	b.token = token
	return b
}

// WithMessage sets a custom notification template.
func (b *RepositoryConfigBuilder) WithMessage(message string) *RepositoryConfigBuilder {
	b.message = message
	return b
}

// WithAutoNotify sets the auto-notify flag explicitly.
func (b *RepositoryConfigBuilder) WithAutoNotify(notify bool) *RepositoryConfigBuilder {
	b.autoNotify = &notify
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *RepositoryConfigBuilder) Build() interface{} {
	return b.BuildRepositoryConfig()
}

// BuildRepositoryConfig creates the entry with a concrete return type.
func (b *RepositoryConfigBuilder) BuildRepositoryConfig() config.RepositoryConfig {
	return config.RepositoryConfig{
		Author:      b.author,
		Name:        b.name,
		Version:     b.version,
		VersionFrom: b.versionFrom,
		Token:       b.token,
		Message:     b.message,
		AutoNotify:  b.autoNotify,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.author = "sage"
	b.name = "plugin"
	b.version = "1.0.0"
	b.versionFrom = ""
	b.token = ""
	b.message = ""
	b.autoNotify = nil
	return b
}

// Clone creates a deep copy of the RepositoryConfigBuilder.
func (b *RepositoryConfigBuilder) Clone() testkit.Builder {
	return &RepositoryConfigBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		author:      b.author,
		name:        b.name,
		version:     b.version,
		versionFrom: b.versionFrom,
		token:       b.token,
		message:     b.message,
		autoNotify:  b.autoNotify,
	}
}
