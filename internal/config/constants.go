package config

import "time"

// Defaults applied when the matching environment variable is unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "alion"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 25
	DefaultDBMaxConnIdleTime = 30 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultReconcileMaxRetries = 5

	DefaultUserCacheSize = 1000
	DefaultUserCacheTTL  = 5 * time.Minute
	DefaultTribeCacheTTL = time.Hour
)
