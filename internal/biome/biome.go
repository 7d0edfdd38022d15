package biome

import (
	"errors"
	"fmt"
)

// Kind identifies one of the five terrain bands. The numeric order is the
// classification order.
type Kind int

const (
	Water Kind = iota
	Sand
	Grass
	Forest
	Mountain

	kindCount = 5
)

var kindNames = [kindCount]string{"water", "sand", "grass", "forest", "mountain"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names one of the five bands.
func (k Kind) Valid() bool {
	return k >= Water && k <= Mountain
}

var (
	ErrBandCount = errors.New("biome: table needs exactly five bands")
	ErrBandOrder = errors.New("biome: bands out of order")
	ErrBandRange = errors.New("biome: min height must be below max height")
)

// Band maps a height range onto a color gradient.
type Band struct {
	Kind      Kind
	MinHeight float64
	MaxHeight float64
	MinColor  Color
	MaxColor  Color
	// LerpFactor is added to the normalized height before blending and may
	// push the result past either color endpoint.
	LerpFactor float64
}

// Normalize returns v's progress through the band, saturating to 0 below
// MinHeight and to 1 above MaxHeight.
func (b Band) Normalize(v float64) float64 {
	return Normalize(v, b.MinHeight, b.MaxHeight)
}

// ColorAt blends the band's gradient for noise value v.
func (b Band) ColorAt(v float64) Color {
	return Lerp(b.MinColor, b.MaxColor, b.Normalize(v)+b.LerpFactor)
}

// Normalize maps value into [0,1] relative to [min, max]. It saturates
// piecewise rather than clamping value first.
func Normalize(value, min, max float64) float64 {
	if value > max {
		return 1
	}
	if value < min {
		return 0
	}
	return (value - min) / (max - min)
}

// Table is the fixed, ordered set of bands used to classify a noise field.
// It is immutable once built.
type Table struct {
	bands [kindCount]Band
}

// NewTable validates and freezes bands. They must be supplied as water,
// sand, grass, forest, mountain and each must have MinHeight < MaxHeight.
func NewTable(bands ...Band) (*Table, error) {
	if len(bands) != kindCount {
		return nil, fmt.Errorf("%w: got %d", ErrBandCount, len(bands))
	}
	t := &Table{}
	for i, b := range bands {
		if b.Kind != Kind(i) {
			return nil, fmt.Errorf("%w: position %d holds %s, want %s", ErrBandOrder, i, b.Kind, Kind(i))
		}
		if !(b.MinHeight < b.MaxHeight) {
			return nil, fmt.Errorf("%w: %s has [%g, %g]", ErrBandRange, b.Kind, b.MinHeight, b.MaxHeight)
		}
		t.bands[i] = b
	}
	return t, nil
}

// DefaultBands returns the stock band definitions. Ranges overlap on purpose
// (sand and grass both start at 0.4); classification order settles it.
func DefaultBands() []Band {
	return []Band{
		{Kind: Water, MinHeight: 0.2, MaxHeight: 0.4, MinColor: RGB(30, 176, 251), MaxColor: RGB(40, 255, 255)},
		{Kind: Sand, MinHeight: 0.4, MaxHeight: 0.45, MinColor: RGB(255, 210, 0), MaxColor: RGB(255, 255, 11), LerpFactor: 0.3},
		{Kind: Grass, MinHeight: 0.4, MaxHeight: 0.6, MinColor: RGB(110, 255, 50), MaxColor: RGB(80, 210, 110)},
		{Kind: Forest, MinHeight: 0.6, MaxHeight: 0.7, MinColor: RGB(0, 200, 0), MaxColor: RGB(0, 110, 0), LerpFactor: -0.5},
		{Kind: Mountain, MinHeight: 0.7, MaxHeight: 0.75, MinColor: RGB(0, 10, 0), MaxColor: RGB(255, 255, 255), LerpFactor: 0.4},
	}
}

// DefaultTable builds a Table from DefaultBands.
func DefaultTable() *Table {
	t, err := NewTable(DefaultBands()...)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the first band whose MaxHeight is strictly above v, or
// Mountain when none is. MinHeight is never consulted.
func (t *Table) Classify(v float64) Kind {
	for i := range t.bands {
		if v < t.bands[i].MaxHeight {
			return t.bands[i].Kind
		}
	}
	return Mountain
}

// ColorAt blends kind's gradient at v.
func (t *Table) ColorAt(kind Kind, v float64) Color {
	return t.Band(kind).ColorAt(v)
}

// Resolve classifies v and returns the matching display color.
func (t *Table) Resolve(v float64) (Kind, Color) {
	k := t.Classify(v)
	return k, t.bands[k].ColorAt(v)
}

// Band returns the definition for kind. Unknown kinds fall back to Mountain.
func (t *Table) Band(kind Kind) Band {
	if !kind.Valid() {
		return t.bands[Mountain]
	}
	return t.bands[kind]
}

// Bands returns a copy of the bands in classification order.
func (t *Table) Bands() []Band {
	out := make([]Band, kindCount)
	copy(out, t.bands[:])
	return out
}
