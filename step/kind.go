package step

import "fmt"

// Kind identifies the type of a step event. The set is closed.
type Kind uint8

const (
	// KindInvalid is the zero Kind and never appears in a valid Event.
	KindInvalid Kind = iota

	KindInit         // algorithm started
	KindInitVars     // auxiliary state (P, C, R) initialized
	KindTransform    // Manacher transformed string built
	KindLoopI        // brute force outer loop advanced
	KindLoopLen      // dp moved to the next window length
	KindSelect       // a candidate substring [i, j] was selected
	KindSelectCenter // Manacher picked the next center in T
	KindCheck        // palindrome check of the selected substring starts
	KindCenter       // expand-center picked a (possibly even) center
	KindCalcMirror   // Manacher computed the mirror index
	KindMirror       // Manacher seeded P[i] from its mirror
	KindCompare      // two characters are about to be compared
	KindMatch        // the compared characters are equal
	KindMismatch     // the compared characters differ
	KindExpand       // expand-center widened the window
	KindFound        // a palindrome not longer than the best was found
	KindDPUpdate     // a dp table cell was written
	KindDPCheck      // the inner dp cell was read
	KindUpdateCenter // Manacher moved C and R
	KindUpdateMax    // a new best palindrome was recorded
	KindResult       // the final answer; closes the sequence

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:      "invalid",
	KindInit:         "init",
	KindInitVars:     "init_vars",
	KindTransform:    "transform",
	KindLoopI:        "loop_i",
	KindLoopLen:      "loop_len",
	KindSelect:       "select",
	KindSelectCenter: "select_center",
	KindCheck:        "check",
	KindCenter:       "center",
	KindCalcMirror:   "calc_mirror",
	KindMirror:       "mirror",
	KindCompare:      "compare",
	KindMatch:        "match",
	KindMismatch:     "mismatch",
	KindExpand:       "expand",
	KindFound:        "found",
	KindDPUpdate:     "dp_update",
	KindDPCheck:      "dp_check",
	KindUpdateCenter: "update_center",
	KindUpdateMax:    "update_max",
	KindResult:       "result",
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInit; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k belongs to the closed enumeration.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// String returns the wire name of k.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidEvent, uint8(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindInit; k < kindCount; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, s)
}
