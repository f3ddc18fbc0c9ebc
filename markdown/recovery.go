package markdown

import "fmt"

type RecoveryKind int

const (
	// RecoveryHeaderTooDeep: more than MaxHeaderLevel markers before a space.
	RecoveryHeaderTooDeep RecoveryKind = iota
	// RecoveryHeaderNoSpace: a marker run followed by neither space nor text.
	RecoveryHeaderNoSpace
	// RecoveryHeaderFused: a marker run glued to a word, as in "#tag".
	RecoveryHeaderFused
	RecoveryUnclosedItalic
	RecoveryUnclosedBold
)

var recoveryKindNames = map[RecoveryKind]string{
	RecoveryHeaderTooDeep:  "header-too-deep",
	RecoveryHeaderNoSpace:  "header-no-space",
	RecoveryHeaderFused:    "header-fused",
	RecoveryUnclosedItalic: "unclosed-italic",
	RecoveryUnclosedBold:   "unclosed-bold",
}

func (k RecoveryKind) String() string {
	if name, ok := recoveryKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Recovery records a construct the parser degraded to literal text. Literal
// is the marker text that ended up in the tree.
type Recovery struct {
	Kind    RecoveryKind
	Line    int
	Literal string
}

func (r Recovery) Message() string {
	switch r.Kind {
	case RecoveryHeaderTooDeep:
		return fmt.Sprintf("%q is deeper than %d levels, treated as text", r.Literal, MaxHeaderLevel)
	case RecoveryHeaderNoSpace:
		return fmt.Sprintf("%q is not followed by a space, treated as text", r.Literal)
	case RecoveryHeaderFused:
		return fmt.Sprintf("%q is attached to the following word, treated as text", r.Literal)
	case RecoveryUnclosedItalic, RecoveryUnclosedBold:
		return fmt.Sprintf("%q has no closing marker on this line, treated as text", r.Literal)
	default:
		return r.Kind.String()
	}
}
