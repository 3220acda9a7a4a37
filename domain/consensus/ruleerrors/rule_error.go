package ruleerrors

import (
	"fmt"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrCheckpointMismatch indicates a block at a checkpointed height does
	// not have the recorded checkpoint hash. Such a block must be rejected
	// regardless of any other check.
	ErrCheckpointMismatch = newRuleError("ErrCheckpointMismatch")

	// ErrForkBlockMismatch indicates a block at the recorded activation
	// height of a fork does not have the hash pinned for that fork.
	ErrForkBlockMismatch = newRuleError("ErrForkBlockMismatch")

	// ErrUnexpectedDifficulty indicates specified bits decode to a target
	// outside the network's allowed range.
	ErrUnexpectedDifficulty = newRuleError("ErrUnexpectedDifficulty")

	// ErrInvalidBits indicates specified bits are not a valid compact target.
	ErrInvalidBits = newRuleError("ErrInvalidBits")

	// ErrBadGenesis indicates a genesis header that does not hash to the
	// network's recorded genesis hash.
	ErrBadGenesis = newRuleError("ErrBadGenesis")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block failed due to one of the consensus rules. The caller
// can use errors.As to determine if a failure was specifically due to a rule
// violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrUnexpectedBlockHash holds the hash a block was expected to have at a
// pinned height and the hash it actually has.
type ErrUnexpectedBlockHash struct {
	Height   uint32
	Expected *externalapi.DomainHash
	Actual   *externalapi.DomainHash
}

func (e ErrUnexpectedBlockHash) Error() string {
	return fmt.Sprintf("block at height %d has hash %s, expected %s", e.Height, e.Actual, e.Expected)
}

// NewErrCheckpointMismatch creates an ErrUnexpectedBlockHash wrapped in
// ErrCheckpointMismatch
func NewErrCheckpointMismatch(height uint32, expected, actual *externalapi.DomainHash) error {
	return errors.WithStack(RuleError{
		message: ErrCheckpointMismatch.message,
		inner:   ErrUnexpectedBlockHash{Height: height, Expected: expected, Actual: actual},
	})
}

// NewErrForkBlockMismatch creates an ErrUnexpectedBlockHash wrapped in
// ErrForkBlockMismatch
func NewErrForkBlockMismatch(forkName string, height uint32, expected, actual *externalapi.DomainHash) error {
	return errors.Wrapf(RuleError{
		message: ErrForkBlockMismatch.message,
		inner:   ErrUnexpectedBlockHash{Height: height, Expected: expected, Actual: actual},
	}, "fork %s", forkName)
}

// Is reports whether target is a RuleError with the same message, so that
// errors.Is(err, ErrCheckpointMismatch) matches errors built by the
// constructors above.
func (e RuleError) Is(target error) bool {
	other, ok := target.(RuleError)
	return ok && other.message == e.message
}
