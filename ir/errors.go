package ir

import "github.com/pkg/errors"

// The three failure classes of IR construction. All of them indicate a bug
// in the caller's lowering logic rather than an environmental condition, so
// they are reported eagerly and never coerced into best-effort output.
var (
	// ErrType marks an operand whose type disagrees with the opcode's
	// contract.
	ErrType = errors.New("type mismatch")
	// ErrStructure marks a malformed construct: a misplaced terminator, a
	// reference to a block or symbol that does not exist, a name collision.
	ErrStructure = errors.New("structural error")
	// ErrModule marks a cross-function consistency failure detected by
	// Module.Finish.
	ErrModule = errors.New("module consistency error")
)

func typeErrf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrType, format, args...)
}

func structErrf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrStructure, format, args...)
}

func moduleErrf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrModule, format, args...)
}
