// internal/flow/errors.go
package flow

import "fmt"

// ConfigError reports an ambiguous or contradictory run configuration,
// such as a cryo argument that does not match the discovered library.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Configf builds a ConfigError.
func Configf(format string, a ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}

// LookupError reports a directory listing that was empty or absent where
// exactly one entry was required.
type LookupError struct {
	Dir string
	Msg string
}

func (e *LookupError) Error() string { return fmt.Sprintf("%s: %s", e.Dir, e.Msg) }

// VerificationError reports check content that failed its pass condition.
// Diff, when non-empty, holds a unified diff for the CI log.
type VerificationError struct {
	Check string
	Msg   string
	Diff  string
}

func (e *VerificationError) Error() string { return fmt.Sprintf("%s failed: %s", e.Check, e.Msg) }

// Verifyf builds a VerificationError without a diff.
func Verifyf(check, format string, a ...any) *VerificationError {
	return &VerificationError{Check: check, Msg: fmt.Sprintf(format, a...)}
}
