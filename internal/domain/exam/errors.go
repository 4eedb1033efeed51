package exam

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey         = errors.New("missing required key")
	ErrInvalidPullPolicy  = errors.New("invalid image pull policy")
	ErrInvalidResource    = errors.New("invalid resource specification")
	ErrInvalidVolume      = errors.New("invalid volume definition")
	ErrInvalidPathSegment = errors.New("value cannot be used as a path segment")
)

// ConfigurationError reports a malformed or incomplete configuration file.
// It is fatal: a hub cannot spawn servers from a config it failed to load.
type ConfigurationError struct {
	File string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.File, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
