// Package types holds the small value types shared across tidecore packages.
package types

import "fmt"

// Position is a location in a buffer.
// Row is the 0-based line index; Col is the 0-based byte column within the
// line, never counting the line terminator.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// ScrollOffsets is the top-left of a viewport in rows and visual columns.
type ScrollOffsets struct {
	Row int
	Col int
}
