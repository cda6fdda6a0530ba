package vol

import (
	"fmt"

	"github.com/kpotier/rhow/pkg/grid"
)

// Method is an interface that will be used by the trajectory readers.
type Method interface {
	// Boxes returns the edge lengths of the box of each configuration.
	Boxes() ([][3]float64, error)
}

// Vol structure contains the information needed to split a trajectory into
// blocks and to write the mean box volume of each block.
type Vol struct {
	Method Method

	Traj string
	Dir  string // Directory of the V_ files, with a trailing separator

	First  int // Index of the first block
	Blocks int

	Res []float64
}

// Perform reads the boxes and averages their volume over each block. The
// configurations that don't fill a whole block at the end of the trajectory
// are dropped.
func (v *Vol) Perform() error {
	if v.Blocks <= 0 {
		return fmt.Errorf("the number of blocks must be greater than 0")
	}

	boxes, err := v.Method.Boxes()
	if err != nil {
		return err
	}

	size := len(boxes) / v.Blocks
	if size == 0 {
		return fmt.Errorf("%d configurations cannot fill %d blocks", len(boxes), v.Blocks)
	}

	v.Res = make([]float64, v.Blocks)
	for b := 0; b < v.Blocks; b++ {
		for _, box := range boxes[b*size : (b+1)*size] {
			v.Res[b] += box[0] * box[1] * box[2]
		}
		v.Res[b] /= float64(size)
	}

	return nil
}

// Write writes the volume of each block into Dir.
func (v *Vol) Write() error {
	for b, res := range v.Res {
		err := grid.WriteScalar(grid.VolumePath(v.Dir, v.First+b), res)
		if err != nil {
			return err
		}
	}
	return nil
}
