// Package config loads the application configuration with viper (YAML file
// plus LINSYS_* environment overrides) and builds the logrus logger shared
// by the server, the batch runner and the CLI.
package config
