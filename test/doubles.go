// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/sagesphinx63920/updatechecker/domain"
)

// SpyFetcher implements domain.ReleaseFetcher as a configurable spy.
// Configure Info/Err for the outcome your test needs, then inspect Calls.
type SpyFetcher struct {
	Info domain.ReleaseInfo
	Err  error

	// spy: number of LatestRelease invocations
	Calls int
}

// LatestRelease returns the configured outcome and records the call.
func (s *SpyFetcher) LatestRelease(_ context.Context) (domain.ReleaseInfo, error) {
	s.Calls++
	if s.Err != nil {
		return domain.ReleaseInfo{}, s.Err
	}
	return s.Info, nil
}

// SpyLogger implements domain.Logger and records every emitted message.
type SpyLogger struct {
	Messages []string
}

// Infof formats and records the message.
func (s *SpyLogger) Infof(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
}

// DummyFetcher implements domain.ReleaseFetcher and fails on use. It exists
// for tests that need a fetcher present but never exercised.
type DummyFetcher struct{}

// LatestRelease panics; a dummy must never be invoked.
func (DummyFetcher) LatestRelease(_ context.Context) (domain.ReleaseInfo, error) {
	panic("DummyFetcher.LatestRelease must not be called")
}
