// Package config loads runtime configuration from files and the environment.
package config

import "os"

// Environment variables read by the frontends.
const (
	EnvConfigPath  = "ASTEROIDS_CONFIG"
	EnvHost        = "SSH_HOST"
	EnvPort        = "SSH_PORT"
	EnvHostKeyPath = "SSH_HOST_KEY"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyEnv overrides the SSH listener settings from the environment.
func (c *Config) ApplyEnv() {
	c.Server.Host = GetEnv(EnvHost, c.Server.Host)
	c.Server.Port = GetEnv(EnvPort, c.Server.Port)
	c.Server.HostKeyPath = GetEnv(EnvHostKeyPath, c.Server.HostKeyPath)
}
