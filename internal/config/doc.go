// Package config manages application configuration for the MainGen API.
//
// # Configuration Loading
//
// Values are layered, later sources winning:
//
//  1. built-in defaults (Default)
//  2. a YAML file named by CONFIG_FILE, if set
//  3. environment variables
//
//	cfg, err := config.Load()
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - AuthConfig: bcrypt cost, hashing concurrency, password policy
//   - RateLimitConfig: token bucket for the signup and signin endpoints
//   - LogConfig: slog level and handler format
//
// # Environment Variables
//
//	SERVER_PORT                 - HTTP server port (default: 8080)
//	SERVER_ENV                  - development, production or test
//	SERVER_READ_TIMEOUT         - e.g. 15s
//	SERVER_WRITE_TIMEOUT        - e.g. 15s
//	SERVER_SHUTDOWN_TIMEOUT     - graceful shutdown budget (default: 30s)
//	CORS_ALLOWED_ORIGINS        - comma separated
//	AUTH_BCRYPT_COST            - bcrypt work factor (default: 10)
//	AUTH_MAX_CONCURRENT_HASHES  - parallel bcrypt computations (default: 4)
//	AUTH_MIN_PASSWORD_LENGTH    - signup minimum (default: 6)
//	RATE_LIMIT_ENABLED          - true/false
//	RATE_LIMIT_RATE             - requests refilled per window
//	RATE_LIMIT_WINDOW           - e.g. 1m
//	RATE_LIMIT_BURST            - bucket capacity
//	LOG_LEVEL                   - debug, info, warn, error
//	LOG_FORMAT                  - json or text
package config
