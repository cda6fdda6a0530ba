package rho

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/kpotier/rhow/pkg/grid"
)

// ErrNonFinite is returned in strict mode when a volume gives an infinite or
// NaN density (e.g. a volume of 0).
var ErrNonFinite = errors.New("non-finite density")

// Rho structure contains the information needed to compute the water density
// of every block of every condition of a grid.
type Rho struct {
	Grid grid.Grid

	// Root is the directory containing the salt directories (nascn, kscn, ...).
	Root string

	// Strict rejects non-finite densities instead of writing them.
	Strict bool

	// Progress receives the progress messages. It can be nil.
	Progress io.Writer

	// Cells is the number of blocks processed by Perform.
	Cells int
}

// Perform reads the volume of each block, computes the water density and
// writes it next to the volume. It stops at the first error. The files
// written before the error are kept.
func (r *Rho) Perform() error {
	r.Cells = 0
	blocks := r.Grid.Blocks()
	r.print(len(blocks))

	for _, cat := range r.Grid.Cations {
		r.print("loop 1")

		for _, an := range r.Grid.Anions {
			r.print("loop 2")

			for _, c := range r.Grid.Concs {
				r.print("loop 3")
				dir := grid.Condition{Cation: cat, Anion: an, Conc: c.Conc}.Dir(r.Root)

				nw, err := r.Grid.Count(c.Conc)
				if err != nil {
					return err
				}

				for _, b := range blocks {
					r.print("loop 4")

					err := r.block(dir, b, nw)
					if err != nil {
						return err
					}
					r.Cells++
				}
			}
		}
	}

	return nil
}

// block computes the density of one block. The output file is not touched if
// the volume cannot be read.
func (r *Rho) block(dir string, b int, nw int) error {
	in := grid.VolumePath(dir, b)
	vol, err := ReadScalar(in)
	if err != nil {
		return fmt.Errorf("ReadScalar: %w", err)
	}
	r.print(grid.Repr(vol))

	rho := Density(nw, vol)
	r.print(grid.Repr(rho))

	if r.Strict && (math.IsInf(rho, 0) || math.IsNaN(rho)) {
		return fmt.Errorf("%s: volume %s: %w", in, grid.Repr(vol), ErrNonFinite)
	}

	return grid.WriteScalar(grid.DensityPath(dir, b), rho)
}

func (r *Rho) print(a ...any) {
	if r.Progress != nil {
		fmt.Fprintln(r.Progress, a...)
	}
}

// Density returns the number density of nw molecules in the volume vol. A
// volume of 0 gives +Inf (or NaN if nw is 0).
func Density(nw int, vol float64) float64 {
	return float64(nw) / vol
}
