// Package config loads nameredact configuration from local YAML files.
// It is internal; CLI code maps flags and files into engine configuration.
package config
