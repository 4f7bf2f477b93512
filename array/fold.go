package array

import (
	"fmt"

	"github.com/viterin/vek"
)

// fold sequentially reduces one chunk, seeded from the operator's
// identity. Flat float64 aggregation is delegated to vek, which uses
// SIMD where the CPU supports it. The vek aggregates reject empty
// slices, hence the guard.
func (op Op) fold(chunk []float64) float64 {
	if len(chunk) == 0 {
		return op.Identity()
	}
	switch op {
	case Sum:
		return vek.Sum(chunk)
	case Product:
		return vek.Prod(chunk)
	case Max:
		return vek.Max(chunk)
	case Min:
		return vek.Min(chunk)
	}
	// Reduce validates op before spawning any work.
	panic(fmt.Sprintf("array: fold with invalid operator %d", int(op)))
}
