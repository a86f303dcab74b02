package world

// Coordinate addresses a grid cell by row and column.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Less orders coordinates by row, then column.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Range is a half-open integer interval [Start, End).
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of values in the interval, never negative.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// FloatRange is a half-open float interval [Start, End).
type FloatRange struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}
