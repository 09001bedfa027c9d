// Package config manages user-level settings stored at ~/.pagesmith/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the skill source and destination path overrides used by the sync pipeline.
package config
