package kdtree

import (
	"errors"
	"fmt"

	"github.com/flier/kdtree/pkg/xerrors"
)

// Sentinel errors for Tree construction: three error kinds, each a
// configuration mistake reported before any partitioning work begins.
var (
	// ErrZeroCapacity indicates a bucket capacity of zero was requested.
	ErrZeroCapacity = errors.New("kdtree: bucket capacity must be >= 1")

	// ErrNonPowerOfTwoCapacity indicates a bucket capacity that is not a
	// power of two was requested.
	ErrNonPowerOfTwoCapacity = errors.New("kdtree: bucket capacity must be a power of two")

	// ErrInvalidDimension indicates a point dimension of less than 1.
	ErrInvalidDimension = errors.New("kdtree: dimension must be >= 1")
)

// ConfigError wraps one of the sentinels above with the offending value,
// for callers that want more than a string to act on. Build always
// returns one of these (never a bare sentinel), so a caller can still
// compare with errors.Is against the sentinels or recover the structured
// form with AsConfigError.
type ConfigError struct {
	Err error
	Got int
}

func (e *ConfigError) Error() string { return fmt.Sprintf("%s (got %d)", e.Err, e.Got) }
func (e *ConfigError) Unwrap() error { return e.Err }

// AsConfigError recovers the structured *ConfigError from err, if it is
// one, via pkg/xerrors.AsA (a generic wrapper over errors.As for
// recovering a concrete error type from a wrapped chain).
func AsConfigError(err error) (*ConfigError, bool) {
	return xerrors.AsA[*ConfigError](err)
}
