package match

import (
	"reflect"

	"automap/internal/surface"
)

// Reasons attached to a Verdict. They double as diagnostic codes.
const (
	ReasonIdentical     = "identical"
	ReasonWrap          = "wrap"
	ReasonUnwrap        = "unwrap"
	ReasonAbsent        = "absent"
	ReasonBareMismatch  = "bare_mismatch"
	ReasonBothWrapped   = "both_wrapped"
	ReasonInnerMismatch = "inner_mismatch"
)

// Verdict is the full decision for one destination member.
type Verdict struct {
	Directive  Directive
	Conversion Conversion
	Reason     string
}

// Copy reports whether the member is copied.
func (v Verdict) Copy() bool {
	return v.Directive == DirectiveCopy
}

func copyVerdict(c Conversion, reason string) Verdict {
	return Verdict{Directive: DirectiveCopy, Conversion: c, Reason: reason}
}

func ignoreVerdict(reason string) Verdict {
	return Verdict{Directive: DirectiveIgnore, Reason: reason}
}

// Decide returns the directive for destination member name of type dstType
// against the source surface.
func Decide(name string, dstType reflect.Type, source *surface.Surface) Directive {
	return Analyze(name, dstType, source).Directive
}

// Analyze is Decide with the conversion and reason.
func Analyze(name string, dstType reflect.Type, source *surface.Surface) Verdict {
	if source == nil {
		return ignoreVerdict(ReasonAbsent)
	}

	member, ok := source.Lookup(name)
	if !ok {
		return ignoreVerdict(ReasonAbsent)
	}

	return Classify(member.Type, dstType)
}

// Classify decides whether a value of type src may fill a member of type dst.
func Classify(src, dst reflect.Type) Verdict {
	if src == nil || dst == nil {
		return ignoreVerdict(ReasonAbsent)
	}

	if src == dst {
		return copyVerdict(ConversionAssign, ReasonIdentical)
	}

	sw, srcWrapped := WrapperOf(src)
	dw, dstWrapped := WrapperOf(dst)

	switch {
	case srcWrapped && dstWrapped:
		return ignoreVerdict(ReasonBothWrapped)
	case !srcWrapped && !dstWrapped:
		return ignoreVerdict(ReasonBareMismatch)
	case dstWrapped && dw.Inner == src:
		return copyVerdict(ConversionWrap, ReasonWrap)
	case srcWrapped && sw.Inner == dst:
		return copyVerdict(ConversionUnwrap, ReasonUnwrap)
	default:
		return ignoreVerdict(ReasonInnerMismatch)
	}
}
