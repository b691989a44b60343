// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct using env tags and caches
//     the result per type, so every later Load of that type is a map lookup.
//   - MustLoad and MustLoadEnv panic on failure.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// Packages in this module expose their own Config structs (postoffice.Config,
// executor.Config, logger.Config) and nest them with envPrefix where needed:
//
//	var cfg postoffice.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfigType: the target is not a struct.
//   - ErrConfigNotLoaded: the cache has no value after loading.
//   - ErrNilPointer: a nil pointer was passed to Load.
package config
