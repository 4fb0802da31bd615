// Package config loads settings from dotenv files and the process environment
// into tagged structs.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for parsing variables into struct fields:
//
//	type Settings struct {
//	    Env    string `env:"ENV" envDefault:"development"`
//	    Length int    `env:"LENGTH" envDefault:"32"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("XD_")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// A `.env` file in the working directory is read when present. Variables
// exported in the process environment take precedence over file contents.
// Files named with WithEnvFiles must exist. WithEnvironment swaps the process
// environment for a fixed map, which keeps tests independent of each other.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a dotenv file is missing or malformed.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
