package cfg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/kpotier/rhow/pkg/grid"
	"github.com/kpotier/rhow/pkg/rho"
	"github.com/kpotier/rhow/pkg/vol"
	"github.com/kpotier/rhow/pkg/vol/lammpstrj"
)

// Type is the type of the trajectory
type Type string

// Here are the accepted types. Lammpstrj is a Lammps Trajectory file.
var (
	TLammpstrj Type = "lammpstrj"
)

// Cfg is a structure containing the parameters specified in the configuration
// file. It can be instanced through New, Default or by "hand". If it is
// instanced by hand, please use the Check method to check if the Cfg meets the
// requirements.
type Cfg struct {
	// Root is the directory containing the salt directories (nascn, kscn...)
	Root string `yaml:"root"`

	// Strict stops the calculation when a density is infinite or NaN
	// instead of writing it
	Strict bool `yaml:"strict"`

	// Traj is the name of the trajectory file in each condition directory.
	// It is only used to compute the volumes
	Traj string `yaml:"traj"`

	// Type is the type of trajectory (e.g: lammpstrj)
	Type Type `yaml:"type"`

	// Grid contains the conditions and the blocks. The missing fields take
	// the values of grid.Default
	Grid grid.Grid `yaml:"grid"`
}

// overrides are the environment variables that take precedence over the
// configuration file.
type overrides struct {
	Root   *string `env:"RHOW_ROOT"`
	Strict *bool   `env:"RHOW_STRICT"`
}

// Default returns the configuration of the TIP4P/Ew simulations: the default
// grid in the current directory.
func Default() *Cfg {
	return &Cfg{Type: TLammpstrj, Grid: grid.Default()}
}

// New opens and decodes the specified configuration file. The file must be
// a YAML file. This method automatically calls the Check method to check the
// integrity of Cfg.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	err = dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.fill()

	err = c.Env()
	if err != nil {
		return nil, err
	}

	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}

	return &c, nil
}

// fill sets the missing fields to their default value.
func (c *Cfg) fill() {
	d := grid.Default()
	if c.Grid.Cations == nil {
		c.Grid.Cations = d.Cations
	}
	if c.Grid.Anions == nil {
		c.Grid.Anions = d.Anions
	}
	if c.Grid.Concs == nil {
		c.Grid.Concs = d.Concs
	}
	if c.Grid.First == 0 {
		c.Grid.First = d.First
	}
	if c.Grid.Last == 0 {
		c.Grid.Last = d.Last
	}
	if c.Type == "" {
		c.Type = TLammpstrj
	}
}

// Env applies the environment variables RHOW_ROOT and RHOW_STRICT.
func (c *Cfg) Env() error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Root != nil {
		c.Root = *o.Root
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	return nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Cfg) Check() error {
	if c.Root != "" {
		fi, err := os.Stat(c.Root)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", c.Root)
		}
	}

	if c.Type != TLammpstrj {
		return fmt.Errorf("unsupported type %q", c.Type)
	}

	return c.Grid.Check()
}

// Rho calculates the water density of each block and writes it next to the
// volume of the block. The progress is written into w.
func (c *Cfg) Rho(w io.Writer) (int, error) {
	r := &rho.Rho{Grid: c.Grid, Root: c.Root, Strict: c.Strict, Progress: w}
	err := r.Perform()
	return r.Cells, err
}

// Vol calculates the mean volume of the box of each block from the
// trajectory of each condition and writes the V_ files.
func (c *Cfg) Vol() error {
	if c.Traj == "" {
		return fmt.Errorf("traj must be specified")
	}

	nb := len(c.Grid.Blocks())
	for _, cond := range c.Grid.Conditions() {
		dir := cond.Dir(c.Root)
		v := &vol.Vol{Traj: dir + c.Traj, Dir: dir, First: c.Grid.First, Blocks: nb}

		switch c.Type {
		case TLammpstrj:
			v.Method = lammpstrj.New(v)
		default:
			return fmt.Errorf("unsupported type")
		}

		err := v.Perform()
		if err != nil {
			return fmt.Errorf("%s: %w", v.Traj, err)
		}

		err = v.Write()
		if err != nil {
			return err
		}
	}

	return nil
}
