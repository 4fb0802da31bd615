package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	prefix  string
	files   []string
	environ map[string]string
}

// WithPrefix only considers variables starting with prefix; field tags are
// written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given dotenv files instead of the optional ".env".
// Every listed file must exist. Later files override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load parses environment variables into the struct pointed to by v, using
// `env` and `envDefault` field tags.
//
// Values come from dotenv files first (".env" in the working directory when
// present, or the files given with WithEnvFiles) and the process environment
// second, so exported variables always win over file contents.
//
// Example:
//
//	type Settings struct {
//		Layout string `env:"DATE_FORMAT" envDefault:"{yyyy}-{MM}-{dd}"`
//		Length int    `env:"LENGTH" envDefault:"32"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("XD_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	files := o.files
	if len(files) == 0 {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			files = []string{defaultEnvFile}
		}
	}

	vars := make(map[string]string)
	if len(files) > 0 {
		fileVars, err := godotenv.Read(files...)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}

	environ := o.environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	for k, val := range environ {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
