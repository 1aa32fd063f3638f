package tmpfmt

import (
	"fmt"
	"math"
)

// opacityReset forces full opacity again after a SetOpacity region.
const opacityReset = "<alpha=#FF>"

// opacityTag scales opacity from [0,1] to a byte, truncating, and
// formats it as upper-case hex. Out of range values are not clamped; NaN
// maps to 00 since its integer conversion is platform dependent.
func opacityTag(opacity float32) string {
	if math.IsNaN(float64(opacity)) {
		opacity = 0
	}
	return fmt.Sprintf("<alpha=#%02X>", int(opacity*255))
}
