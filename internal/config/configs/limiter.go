package configs

import "time"

// Limiter bounds outbound calls to the backing store. At most MaxRequests
// calls are issued in any trailing Window. A blocked caller sleeps at least
// MinBackoff between attempts.
type Limiter struct {
	MaxRequests int           `env:"MAX_REQUESTS" envDefault:"120"`
	Window      time.Duration `env:"WINDOW" envDefault:"60s"`
	MinBackoff  time.Duration `env:"MIN_BACKOFF" envDefault:"50ms"`
}
