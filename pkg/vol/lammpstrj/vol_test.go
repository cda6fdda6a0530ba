package lammpstrj

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpotier/rhow/pkg/vol"
)

// traj returns a trajectory with one configuration per box edge length. Each
// configuration contains at atoms.
func traj(edges []float64, at int) string {
	var sb strings.Builder
	for i, l := range edges {
		fmt.Fprintf(&sb, "ITEM: TIMESTEP\n%d\nITEM: NUMBER OF ATOMS\n%d\n", i*1000, at)
		fmt.Fprintf(&sb, "ITEM: BOX BOUNDS pp pp pp\n0 %g\n-1 %g\n0.5 %g\n", l, l-1, l+0.5)
		sb.WriteString("ITEM: ATOMS id type x y z\n")
		for a := 0; a < at; a++ {
			fmt.Fprintf(&sb, "%d 1 0.1 0.2 0.3\n", a+1)
		}
	}
	return sb.String()
}

func TestBoxes(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dump.lammpstrj")
	if err := os.WriteFile(p, []byte(traj([]float64{10, 20, 30}, 3)), 0o644); err != nil {
		t.Fatal(err)
	}

	boxes, err := New(&vol.Vol{Traj: p}).Boxes()
	if err != nil {
		t.Fatalf("Boxes: %v", err)
	}

	if len(boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %d", len(boxes))
	}

	for i, l := range []float64{10, 20, 30} {
		want := [3]float64{l, l, l}
		if boxes[i] != want {
			t.Errorf("box %d: expected %v, got %v", i, want, boxes[i])
		}
	}
}

func TestBoxesNoFinalNewLine(t *testing.T) {
	s := strings.TrimSuffix(traj([]float64{10, 12}, 2), "\n")
	boxes, err := readBoxes(bufio.NewReader(strings.NewReader(s)))
	if err != nil {
		t.Fatalf("readBoxes: %v", err)
	}
	if len(boxes) != 2 {
		t.Errorf("expected 2 boxes, got %d", len(boxes))
	}
}

func TestBoxesTrailingBlankLines(t *testing.T) {
	s := traj([]float64{10, 12}, 2) + "\n  \n"
	boxes, err := readBoxes(bufio.NewReader(strings.NewReader(s)))
	if err != nil {
		t.Fatalf("readBoxes: %v", err)
	}
	if len(boxes) != 2 {
		t.Errorf("expected 2 boxes, got %d", len(boxes))
	}
}

func TestBoxesLongAtomLine(t *testing.T) {
	long := "1 1 0.1 0.2 0.3" + strings.Repeat(" 0.123456789", 600) + "\n"
	s := strings.Replace(traj([]float64{10, 12}, 1), "1 1 0.1 0.2 0.3\n", long, -1)
	if len(long) <= 4096 {
		t.Fatalf("the atom line must exceed the reader buffer, got %d bytes", len(long))
	}

	boxes, err := readBoxes(bufio.NewReader(strings.NewReader(s)))
	if err != nil {
		t.Fatalf("readBoxes: %v", err)
	}
	if len(boxes) != 2 || boxes[1] != [3]float64{12, 12, 12} {
		t.Errorf("unexpected boxes %v", boxes)
	}
}

func TestBoxesErrors(t *testing.T) {
	full := traj([]float64{10}, 2)
	tests := []struct {
		name string
		traj string
	}{
		{"truncated atoms", strings.TrimSuffix(full, "2 1 0.1 0.2 0.3\n")},
		{"truncated header", "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n"},
		{"no atoms item", strings.Replace(full, "ITEM: NUMBER OF ATOMS", "ITEM: ATOMS", 1)},
		{"bad number of atoms", strings.Replace(full, "ATOMS\n2\n", "ATOMS\ntwo\n", 1)},
		{"no box item", strings.Replace(full, "ITEM: BOX BOUNDS pp pp pp", "ITEM: BOX", 1)},
		{"triclinic", strings.Replace(full, "0 10\n", "0 10 0.5\n", 1)},
		{"bad bound", strings.Replace(full, "0 10\n", "0 ten\n", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readBoxes(bufio.NewReader(strings.NewReader(tt.traj)))
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBoxesMissing(t *testing.T) {
	_, err := New(&vol.Vol{Traj: filepath.Join(t.TempDir(), "dump.lammpstrj")}).Boxes()
	if err == nil {
		t.Error("expected an error")
	}
}
