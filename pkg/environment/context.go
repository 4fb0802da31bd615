package environment

import (
	"context"
	"strings"
)

// Environment represents the deployment environment the CLI runs in.
type Environment string

const (
	// Development for local runs.
	Development Environment = "development"
	// Production for scripted runs where logs are collected.
	Production Environment = "production"
	// Staging for pre-production runs.
	Staging Environment = "staging"
)

// Parse maps a name or its short alias (dev, stage, prod) to an Environment.
// Unknown and empty names resolve to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

// WithContext adds environment to context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production.
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is development.
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}
