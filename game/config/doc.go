// Package config loads and caches game configurations.
//
// A Manager serves the built-in default configuration and, when a config
// directory is set, named configurations from its JSON files. Loaded files
// are validated against the engine's limits and cached; SaveConfig writes a
// configuration back to disk and refreshes the cache.
package config
