// Package config holds the options of a run and the optional YAML
// configuration file. Flags are parsed into a Config, the file is merged
// with File.Apply, and Validate rejects conflicting or missing input.
package config
