package domain

import "strings"

// PageOptions sizes the printed document. Dimensions are in inches.
type PageOptions struct {
	Format       string
	Width        float64
	Height       float64
	MarginInches float64
}

var paperSizes = map[string][2]float64{
	"A4":     {8.27, 11.69},
	"LETTER": {8.5, 11},
	"LEGAL":  {8.5, 14},
}

// DefaultPageOptions is A4 with half-inch margins.
var DefaultPageOptions = NewPageOptions("A4", 0.5)

// NewPageOptions resolves a paper size by name. Unknown names fall back to A4
// and negative margins to zero.
func NewPageOptions(format string, margin float64) PageOptions {
	name := strings.ToUpper(strings.TrimSpace(format))
	size, ok := paperSizes[name]
	if !ok {
		name = "A4"
		size = paperSizes[name]
	}
	if margin < 0 {
		margin = 0
	}
	return PageOptions{Format: name, Width: size[0], Height: size[1], MarginInches: margin}
}
