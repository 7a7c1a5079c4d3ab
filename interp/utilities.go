package interp

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

func ptstring(v r3.Vec) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(v.X), round(v.Y), round(v.Z))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
