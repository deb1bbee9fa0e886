package signature

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds Binder settings. Defaults can be loaded via envdecode.
type Config struct {
	// AllowUnknownArguments drops named arguments matching no parameter
	// instead of rejecting the call. ENV: SMARTINVOKER_ALLOW_UNKNOWN_ARGS
	AllowUnknownArguments bool `env:"SMARTINVOKER_ALLOW_UNKNOWN_ARGS,default=false"`
	// SkipValidation coerces arguments without running validation rules.
	// ENV: SMARTINVOKER_SKIP_VALIDATION
	SkipValidation bool `env:"SMARTINVOKER_SKIP_VALIDATION,default=false"`
}

// ConfigFromEnv populates a Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("signature: load config: %w", err)
	}
	return cfg, nil
}
