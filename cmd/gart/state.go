package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/gart/gallery"
)

func loadState(path string) (gallery.State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return gallery.State{}, err
	}
	var st gallery.State
	if err := yaml.Unmarshal(b, &st); err != nil {
		return gallery.State{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return st, nil
}

func saveState(path string, st gallery.State) error {
	b, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0664)
}
