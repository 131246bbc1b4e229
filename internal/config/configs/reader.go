package configs

import "time"

// Reader configures paginated reads of dynamic tables.
type Reader struct {
	// PageSize is used when the caller does not ask for a page size.
	PageSize int `env:"PAGE_SIZE" envDefault:"500"`
	// MaxPageSize caps caller supplied page sizes.
	MaxPageSize int `env:"MAX_PAGE_SIZE" envDefault:"2000"`
	// MaxRetries is the number of retries of a transient failure before it
	// is surfaced.
	MaxRetries uint64 `env:"MAX_RETRIES" envDefault:"3"`
	// RetryInterval is the first backoff interval; it grows exponentially
	// up to RetryMaxInterval.
	RetryInterval    time.Duration `env:"RETRY_INTERVAL" envDefault:"200ms"`
	RetryMaxInterval time.Duration `env:"RETRY_MAX_INTERVAL" envDefault:"5s"`
}
