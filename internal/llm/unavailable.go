package llm

import "context"

// unavailableProvider stands in when no provider is configured. Every call
// fails with ErrProviderUnavailable carrying the configuration error, which
// lets the TUI launch and degrade to placeholder content instead of
// refusing to start.
type unavailableProvider struct {
	err error
}

// NewUnavailableProvider returns a Provider whose calls always fail with
// the given configuration error.
func NewUnavailableProvider(err error) Provider {
	return &unavailableProvider{err: err}
}

func (u *unavailableProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: u.err}
}

func (u *unavailableProvider) ModelID() string {
	return "unconfigured"
}
