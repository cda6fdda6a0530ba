package grid

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Conc pairs a salt concentration (mol/L) with the number of water molecules
// in the simulation box at this concentration.
type Conc struct {
	Conc float64 `yaml:"conc"`
	NW   int     `yaml:"nw"`
}

// Grid is the set of simulated conditions. The concentrations are walked in
// the order of Concs.
type Grid struct {
	Cations []string `yaml:"cations"`
	Anions  []string `yaml:"anions"`
	Concs   []Conc   `yaml:"concs"`

	// First and Last are the first and the last block index. Both are
	// processed. Blocks are numbered from 1.
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Default returns the grid of the NaSCN and KSCN simulations (TIP4P/Ew).
func Default() Grid {
	return Grid{
		Cations: []string{"Na", "K"},
		Anions:  []string{"SCN"},
		Concs: []Conc{
			{0.5, 12384},
			{1.0, 11347},
			{1.5, 10491},
			{2.0, 9760},
			{2.5, 9214},
			{3.0, 8674},
		},
		First: 1,
		Last:  18,
	}
}

// Check checks if the Grid is usable. It returns an error if a field doesn't
// meet the requirements.
func (g Grid) Check() error {
	if len(g.Cations) == 0 || len(g.Anions) == 0 {
		return errors.New("at least one cation and one anion are required")
	}

	if len(g.Concs) == 0 {
		return errors.New("at least one concentration is required")
	}

	seen := make(map[float64]bool, len(g.Concs))
	for _, c := range g.Concs {
		if seen[c.Conc] {
			return fmt.Errorf("concentration %s is listed twice", Repr(c.Conc))
		}
		seen[c.Conc] = true

		if c.NW <= 0 {
			return fmt.Errorf("the number of water molecules at %sm must be greater than 0", Repr(c.Conc))
		}
	}

	if g.First < 1 || g.Last < g.First {
		return fmt.Errorf("invalid block range %d..%d", g.First, g.Last)
	}

	return nil
}

// Blocks returns the block indices, First and Last included.
func (g Grid) Blocks() []int {
	if g.Last < g.First {
		return nil
	}
	b := make([]int, 0, g.Last-g.First+1)
	for i := g.First; i <= g.Last; i++ {
		b = append(b, i)
	}
	return b
}

// Count returns the number of water molecules for the concentration c.
func (g Grid) Count(c float64) (int, error) {
	for _, v := range g.Concs {
		if v.Conc == c {
			return v.NW, nil
		}
	}
	return 0, fmt.Errorf("no water count for concentration %s", Repr(c))
}

// Condition is one simulated salt solution.
type Condition struct {
	Cation string
	Anion  string
	Conc   float64
}

// Conditions returns every condition of the grid: cations first, then anions,
// then concentrations.
func (g Grid) Conditions() []Condition {
	var cs []Condition
	for _, cat := range g.Cations {
		for _, an := range g.Anions {
			for _, c := range g.Concs {
				cs = append(cs, Condition{cat, an, c.Conc})
			}
		}
	}
	return cs
}

// Salt returns the lower case name of the salt, e.g. nascn.
func (c Condition) Salt() string {
	return strings.ToLower(c.Cation) + strings.ToLower(c.Anion)
}

// Dir returns the directory of the condition relative to root, with a
// trailing separator (e.g. root/nascn/0.5m/).
func (c Condition) Dir(root string) string {
	dir := c.Salt() + "/" + Repr(c.Conc) + "m/"
	if root == "" {
		return dir
	}
	return filepath.Join(root, dir) + string(filepath.Separator)
}

// VolumePath returns the path of the volume file of a block.
func VolumePath(dir string, block int) string {
	return dir + "V_" + strconv.Itoa(block)
}

// DensityPath returns the path of the density file of a block.
func DensityPath(dir string, block int) string {
	return dir + "rho_w_" + strconv.Itoa(block)
}
