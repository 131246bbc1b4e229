package configs

import "time"

// Monitor configures the monthly rollup cache.
type Monitor struct {
	// RefreshTimeout bounds one recomputation. A refresh keeps running when
	// the caller that started it goes away, so it needs its own deadline.
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT" envDefault:"5m"`
}
