package step

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidEvent indicates an event that violates the kind/payload contract.
	ErrInvalidEvent = errors.New("step: invalid event")

	// ErrTraceUnavailable indicates that the trace could not be completed.
	// The solver result is unaffected; only the event sequence is withheld.
	ErrTraceUnavailable = errors.New("step: trace unavailable")
)

// Payload is the kind-specific part of an Event. The set of implementations
// is closed: Span, Cell, Center, MirrorSeed, MirrorCalc, Boundary and
// Transformed.
type Payload interface {
	payloadName() string
	validate() error
}

// Span describes an inclusive range of the input text.
// Used by KindUpdateMax and KindResult. The empty answer is Start=0, End=-1.
type Span struct {
	Start  int
	End    int
	Length int
}

// Cell is one dp table cell: dp[Row][Col] == Value.
// Used by KindDPUpdate and KindDPCheck.
type Cell struct {
	Row   int
	Col   int
	Value bool
}

// Center marks the position a center-based scan is working on.
// Used by KindSelectCenter and by odd centers of KindCenter.
type Center struct {
	Index int
}

// MirrorSeed records P[Index] seeded from P[MirrorIndex]. Used by KindMirror.
type MirrorSeed struct {
	Index       int
	MirrorIndex int
	Value       int
}

// MirrorCalc records mirror = 2*C - Index. MirrorIndex may be negative
// while C is still at the left sentinel. Used by KindCalcMirror.
type MirrorCalc struct {
	Index       int
	MirrorIndex int
}

// Boundary records the new center and exclusive right boundary of the
// rightmost-reaching palindrome. Used by KindUpdateCenter.
type Boundary struct {
	Center int
	Right  int
}

// Transformed carries the printable form of the Manacher string T.
// Used by KindTransform.
type Transformed struct {
	String string
}

func (Span) payloadName() string        { return "span" }
func (Cell) payloadName() string        { return "cell" }
func (Center) payloadName() string      { return "center" }
func (MirrorSeed) payloadName() string  { return "mirror_seed" }
func (MirrorCalc) payloadName() string  { return "mirror_calc" }
func (Boundary) payloadName() string    { return "boundary" }
func (Transformed) payloadName() string { return "transformed" }

func (p Span) validate() error {
	if p.Start < 0 || p.Length < 0 || p.End != p.Start+p.Length-1 {
		return fmt.Errorf("%w: span start=%d end=%d length=%d", ErrInvalidEvent, p.Start, p.End, p.Length)
	}

	return nil
}

func (p Cell) validate() error {
	if p.Row < 0 || p.Col < p.Row {
		return fmt.Errorf("%w: cell (%d,%d)", ErrInvalidEvent, p.Row, p.Col)
	}

	return nil
}

func (p Center) validate() error {
	if p.Index < 0 {
		return fmt.Errorf("%w: center i=%d", ErrInvalidEvent, p.Index)
	}

	return nil
}

func (p MirrorSeed) validate() error {
	if p.Index < 0 || p.MirrorIndex < 0 || p.Value < 0 {
		return fmt.Errorf("%w: mirror seed i=%d mirror=%d value=%d", ErrInvalidEvent, p.Index, p.MirrorIndex, p.Value)
	}

	return nil
}

func (p MirrorCalc) validate() error {
	if p.Index < 0 {
		return fmt.Errorf("%w: mirror calc i=%d", ErrInvalidEvent, p.Index)
	}

	return nil
}

func (p Boundary) validate() error {
	if p.Center < 0 || p.Right < p.Center {
		return fmt.Errorf("%w: boundary center=%d right=%d", ErrInvalidEvent, p.Center, p.Right)
	}

	return nil
}

func (Transformed) validate() error { return nil }

// payloadFor lists the payload each kind requires; "" means no payload.
var payloadFor = [kindCount]string{
	KindTransform:    "transformed",
	KindSelectCenter: "center",
	KindCenter:       "center",
	KindCalcMirror:   "mirror_calc",
	KindMirror:       "mirror_seed",
	KindDPUpdate:     "cell",
	KindDPCheck:      "cell",
	KindUpdateCenter: "boundary",
	KindUpdateMax:    "span",
	KindResult:       "span",
}

// payloadOptional lists kinds whose payload may be omitted. Even centers of
// KindCenter sit between two positions and carry them as Positions instead.
var payloadOptional = [kindCount]bool{
	KindCenter: true,
}

// Event is one recorded decision point of a solver run. Line is the
// 1-based pseudocode line the event belongs to; 0 means none.
type Event struct {
	Kind        Kind
	Line        int
	Description string
	Positions   []int
	Payload     Payload
}

// New builds a validated Event. It rejects unknown kinds, negative
// positions, and payloads that are missing, unexpected, or of the wrong
// variant for the kind.
func New(kind Kind, description string, payload Payload, positions ...int) (Event, error) {
	if !kind.Valid() {
		return Event{}, fmt.Errorf("%w: kind %d", ErrInvalidEvent, uint8(kind))
	}
	for _, p := range positions {
		if p < 0 {
			return Event{}, fmt.Errorf("%w: %s has negative position %d", ErrInvalidEvent, kind, p)
		}
	}

	want := payloadFor[kind]
	switch {
	case want == "" && payload != nil:
		return Event{}, fmt.Errorf("%w: %s takes no payload, got %s", ErrInvalidEvent, kind, payload.payloadName())
	case want != "" && payload == nil && !payloadOptional[kind]:
		return Event{}, fmt.Errorf("%w: %s requires a %s payload", ErrInvalidEvent, kind, want)
	case payload != nil && payload.payloadName() != want:
		return Event{}, fmt.Errorf("%w: %s requires a %s payload, got %s", ErrInvalidEvent, kind, want, payload.payloadName())
	}
	if payload != nil {
		if err := payload.validate(); err != nil {
			return Event{}, fmt.Errorf("%s: %w", kind, err)
		}
	}

	var pos []int
	if len(positions) > 0 {
		pos = append(make([]int, 0, len(positions)), positions...)
	}

	return Event{Kind: kind, Description: description, Positions: pos, Payload: payload}, nil
}

// At returns a copy of e attached to pseudocode line. Negative lines are rejected.
func (e Event) At(line int) (Event, error) {
	if line < 0 {
		return Event{}, fmt.Errorf("%w: %s has negative line %d", ErrInvalidEvent, e.Kind, line)
	}
	e.Line = line

	return e, nil
}

// wireEvent is the flat JSON record consumed by the visualizer.
type wireEvent struct {
	Type        Kind    `json:"type"`
	Line        int     `json:"line,omitempty"`
	Description string  `json:"description"`
	Indices     []int   `json:"indices,omitempty"`
	Start       *int    `json:"start,omitempty"`
	End         *int    `json:"end,omitempty"`
	Length      *int    `json:"length,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Col         *int    `json:"col,omitempty"`
	Value       any     `json:"value,omitempty"`
	Index       *int    `json:"index,omitempty"`
	MirrorIndex *int    `json:"mirror_index,omitempty"`
	Center      *int    `json:"center,omitempty"`
	Right       *int    `json:"right,omitempty"`
	String      *string `json:"string,omitempty"`
}

// MarshalJSON flattens the payload into the visualizer record.
func (e Event) MarshalJSON() ([]byte, error) {
	w := wireEvent{Type: e.Kind, Line: e.Line, Description: e.Description, Indices: e.Positions}
	switch p := e.Payload.(type) {
	case nil:
	case Span:
		w.Start, w.End, w.Length = &p.Start, &p.End, &p.Length
	case Cell:
		w.Row, w.Col, w.Value = &p.Row, &p.Col, p.Value
	case Center:
		w.Index = &p.Index
	case MirrorSeed:
		w.Index, w.MirrorIndex, w.Value = &p.Index, &p.MirrorIndex, p.Value
	case MirrorCalc:
		w.Index, w.MirrorIndex = &p.Index, &p.MirrorIndex
	case Boundary:
		w.Center, w.Right = &p.Center, &p.Right
	case Transformed:
		w.String = &p.String
	default:
		return nil, fmt.Errorf("%w: unsupported payload %T", ErrInvalidEvent, p)
	}

	return json.Marshal(w)
}
