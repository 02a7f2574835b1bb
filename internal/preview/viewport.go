package preview

import (
	"fmt"
	"strings"
)

// Viewport is a simulated device width.
type Viewport string

const (
	Desktop Viewport = "desktop"
	Tablet  Viewport = "tablet"
	Mobile  Viewport = "mobile"
)

// Viewports lists the viewports from widest to narrowest.
func Viewports() []Viewport {
	return []Viewport{Desktop, Tablet, Mobile}
}

// ParseViewport resolves a viewport name case-insensitively.
func ParseViewport(name string) (Viewport, error) {
	candidate := Viewport(strings.ToLower(strings.TrimSpace(name)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown viewport %q (expected desktop, tablet or mobile)", name)
}

// Valid reports whether the viewport is known.
func (v Viewport) Valid() bool {
	switch v {
	case Desktop, Tablet, Mobile:
		return true
	default:
		return false
	}
}

// Width returns the total wireframe width in cells.
func (v Viewport) Width() int {
	switch v {
	case Mobile:
		return 40
	case Tablet:
		return 60
	default:
		return 84
	}
}

// Next cycles desktop, tablet, mobile and back.
func (v Viewport) Next() Viewport {
	switch v {
	case Desktop:
		return Tablet
	case Tablet:
		return Mobile
	default:
		return Desktop
	}
}
