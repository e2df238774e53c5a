// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Feed URLs and the server port may be overridden through environment
// variables for containerized deployments.
package config
