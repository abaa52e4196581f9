package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8001"`
	// AppName identifies this instance in logs and metrics.
	AppName string `mapstructure:"app_name" default:"stocktake"`
	// JWTSecret signs the session tokens issued at login.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLHours is the lifetime of issued session tokens in hours.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"12"`
}

// TokenTTL returns the configured token lifetime. A zero or negative
// configuration falls back to twelve hours.
func (c Config) TokenTTL() time.Duration {
	if c.TokenTTLHours <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.TokenTTLHours) * time.Hour
}
