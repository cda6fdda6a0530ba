package lammpstrj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpotier/rhow/pkg/vol"
)

// Vol is a structure specific to a Lammps Trajectory file.
type Vol struct {
	*vol.Vol
}

// New returns an instance of the Vol structure for a Lammps Trajectory file.
func New(v *vol.Vol) *Vol {
	return &Vol{v}
}

// Boxes is part of the Method interface in the vol package. It reads the size
// of the box of each configuration and skips the atoms.
func (v *Vol) Boxes() ([][3]float64, error) {
	f, err := os.Open(v.Traj)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBoxes(bufio.NewReader(f))
}

func readBoxes(r *bufio.Reader) ([][3]float64, error) {
	var boxes [][3]float64

	for {
		eof, err := skipBlank(r)
		if err != nil {
			return nil, err
		}
		if eof {
			return boxes, nil
		}

		box, at, err := header(r)
		if err != nil {
			return nil, fmt.Errorf("header (configuration %d): %w", len(boxes), err)
		}
		boxes = append(boxes, box)

		for l := 0; l < at; l++ {
			b, err := r.ReadBytes('\n')
			if err != nil && !(errors.Is(err, io.EOF) && l == at-1 && len(b) > 0) {
				return nil, fmt.Errorf("configuration %d is truncated", len(boxes)-1)
			}
		}
	}
}

// skipBlank discards the white spaces and the empty lines before the next
// configuration. It returns true if the end of the file is reached.
func skipBlank(r *bufio.Reader) (bool, error) {
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}

		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return false, r.UnreadByte()
	}
}

// header corresponds to the lines specific to a Lammps trajectory file, from
// ITEM: TIMESTEP to ITEM: ATOMS. It contains the number of atoms and the size
// of the box.
func header(r *bufio.Reader) (box [3]float64, at int, err error) {
	var lines [9]string
	for l := 0; l < 9; l++ {
		var b []byte
		b, err = r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		lines[l] = string(b)
		if err != nil && l < 8 {
			err = fmt.Errorf("unexpected end of file")
			return
		}
		err = nil
	}

	if !strings.HasPrefix(lines[2], "ITEM: NUMBER OF ATOMS") {
		err = fmt.Errorf("cannot find ITEM: NUMBER OF ATOMS")
		return
	}

	at, err = strconv.Atoi(strings.TrimSpace(lines[3]))
	if err != nil {
		err = fmt.Errorf("number of atoms: %w", err)
		return
	}

	if !strings.HasPrefix(lines[4], "ITEM: BOX BOUNDS") {
		err = fmt.Errorf("cannot find ITEM: BOX BOUNDS")
		return
	}

	// Size of the box
	for k := 0; k < 3; k++ {
		fields := strings.Fields(lines[5+k])
		if len(fields) != 2 {
			err = fmt.Errorf("unable to get the size of the box")
			return
		}

		var lmin, lmax float64
		lmin, err = strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return
		}
		lmax, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return
		}

		box[k] = lmax - lmin
	}

	return
}
