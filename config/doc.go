// Package config builds a registry from a declarative TOML or YAML file,
// so deployments can rewire destinations without recompiling.
package config
