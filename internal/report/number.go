// Package report evaluates geometry over a layout snapshot.
package report

import (
	"math"
	"strconv"
)

// Number is a float64 that encodes NaN and infinities as JSON strings.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// XY is an encoded point or percentage pair.
type XY struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// LeftTop is an encoded element offset.
type LeftTop struct {
	Left Number `json:"left"`
	Top  Number `json:"top"`
}

// Extent is an encoded element size.
type Extent struct {
	Width  Number `json:"width"`
	Height Number `json:"height"`
}
