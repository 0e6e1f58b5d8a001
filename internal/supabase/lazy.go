package supabase

import "sync"

// Lazy defers client construction until first use and then reuses the same
// client for the life of the process. The client is read-only configuration,
// so no locking beyond the once is needed.
type Lazy struct {
	cfg    Config
	once   sync.Once
	client *Client
	err    error
}

// NewLazy prepares a deferred client for the given configuration.
func NewLazy(cfg Config) *Lazy {
	return &Lazy{cfg: cfg}
}

// Client returns the shared client, constructing it on first call.
func (l *Lazy) Client() (*Client, error) {
	l.once.Do(func() {
		l.client, l.err = New(l.cfg)
	})
	return l.client, l.err
}
