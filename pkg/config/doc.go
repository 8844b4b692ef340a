// Package config holds client configuration for cucmapi.
//
// A Config can come from three places, usually layered: built-in defaults,
// a YAML file, and CUCM_* environment variables. The same Config drives
// every service client, so credentials and TLS settings are stated once.
//
//	cfg := config.Default()
//	cfg.Host = "cucm01.example.com"
//	cfg.Username = "axluser"
//	cfg.Password = os.Getenv("CUCM_PASSWORD")
//	if err := cfg.Validate(); err != nil { ... }
package config
