package dcc

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrorID is the decoder's per-instruction status code. These are routine
// outcomes a caller checks after every scan, not exceptional failures, so
// they stay a plain comparable value instead of a wrapped error the way
// structural failures below do.
type ErrorID int

const (
	NoErr ErrorID = iota
	IPOutOfRange
	InvalidOpcode
	Invalid386Op
	FunnySegOvr
	FunnyRep
)

func (e ErrorID) String() string {
	switch e {
	case NoErr:
		return "no error"
	case IPOutOfRange:
		return "instruction pointer out of range"
	case InvalidOpcode:
		return "invalid opcode"
	case Invalid386Op:
		return "80386+ opcode, not decoded"
	case FunnySegOvr:
		return "segment override not used by the instruction"
	case FunnyRep:
		return "REP prefix on a non-string opcode"
	default:
		return "unknown error"
	}
}

// IsWarning reports whether e is survivable: the decoder still produced
// an I-code, just flagged something unusual about it.
func (e ErrorID) IsWarning() bool {
	return e == FunnySegOvr || e == FunnyRep
}

// AnalysisError wraps a structural failure in one of the later analysis
// phases (CFG construction, call-graph discovery, argument recovery) with
// the procedure and, where known, the I-code index it happened at. These
// are the fatal conditions that stop analysis of a procedure rather than
// just annotate one instruction.
type AnalysisError struct {
	Phase string
	Proc  string
	Index int
	Err   error
}

func (e *AnalysisError) Error() string {
	if e.Index >= 0 {
		return e.Phase + ": " + e.Proc + ": icode " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
	}
	return e.Phase + ": " + e.Proc + ": " + e.Err.Error()
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// NewAnalysisError constructs an AnalysisError, stack-annotated via
// pkg/errors so the host can log a useful trace without this package
// depending on any particular logger.
func NewAnalysisError(phase, proc string, index int, cause error) *AnalysisError {
	return &AnalysisError{Phase: phase, Proc: proc, Index: index, Err: errors.WithStack(cause)}
}
