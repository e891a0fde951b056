// Package config provides configuration management for seqqc.
//
// Configuration comes from three layers, lowest precedence first:
// built-in defaults, the optional .seqqc.yaml file, and CLI flags.
// The resulting Config struct is validated once after CLI parsing and
// passed through the application via dependency injection.
package config
