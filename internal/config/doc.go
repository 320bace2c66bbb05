// Package config defines vboxctl's configuration structures and the layered
// loading logic that merges built-in defaults with user and project level
// YAML files.
package config
