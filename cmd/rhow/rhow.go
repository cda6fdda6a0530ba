package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kpotier/rhow/pkg/cfg"
)

func main() {
	c, err := load()
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Calculating the water density of each block")
	n, err := c.Rho(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Done (%d blocks)\n", n)
}

// load reads the configuration file given in the arguments. Without
// arguments, the default grid is used.
func load() (*cfg.Cfg, error) {
	switch len(os.Args) {
	case 1:
		log.Println("No configuration file, using the default grid")
		c := cfg.Default()
		err := c.Env()
		if err != nil {
			return nil, err
		}
		err = c.Check()
		if err != nil {
			return nil, fmt.Errorf("Check: %w", err)
		}
		return c, nil
	case 2:
		log.Printf("Reading configuration file `%s`\n", os.Args[1])
		c, err := cfg.New(os.Args[1])
		if err != nil {
			return nil, fmt.Errorf("newInput: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("at most one configuration file can be specified in the arguments")
	}
}
