// Package config loads and validates model architecture configuration for
// the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/strand-ml/strand/internal/nn"
	"github.com/strand-ml/strand/internal/shape"
)

// Config describes a model to build: the shape fed into it, the widths of
// its dense layers, and the activations to apply.
type Config struct {
	InputShape       []int   `json:"inputShape"`
	Architecture     []int   `json:"architecture"`
	HiddenActivation string  `json:"hiddenActivation"`
	OutputActivation string  `json:"outputActivation"`
	Seed             *uint64 `json:"seed,omitempty"`
}

// Default returns a config for the classic MNIST classifier.
func Default() Config {
	return Config{
		InputShape:       []int{28, 28},
		Architecture:     []int{784, 250, 100, 10},
		HiddenActivation: string(nn.ActivationReLU),
		OutputActivation: string(nn.ActivationSoftmax),
	}
}

// Load reads a config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ParseArchitecture parses a whitespace-separated width string, e.g.
// "784 250 100 10", into a slice of layer widths.
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(archStr)
	if len(archParts) == 0 {
		return nil, fmt.Errorf("architecture string is empty")
	}
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("architecture entry %q: %w", s, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// ParseShape parses a comma-separated dimension string, e.g. "28,28".
func ParseShape(shapeStr string) ([]int, error) {
	parts := strings.Split(shapeStr, ",")
	dims := make([]int, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("shape entry %q: %w", s, err)
		}
		dims = append(dims, n)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("shape string is empty")
	}
	return dims, nil
}

// Validate checks the config before it is turned into layer specs.
func (c Config) Validate() error {
	if err := shape.Shape(c.InputShape).Validate(); err != nil {
		return fmt.Errorf("input shape: %w", err)
	}
	if len(c.Architecture) == 0 {
		return fmt.Errorf("architecture must name at least one layer width")
	}
	for i, width := range c.Architecture {
		if width <= 0 {
			return fmt.Errorf("architecture width at index %d: %d (must be > 0)", i, width)
		}
	}
	if _, err := nn.ParseActivation(c.HiddenActivation); err != nil {
		return fmt.Errorf("hidden activation: %w", err)
	}
	if _, err := nn.ParseActivation(c.OutputActivation); err != nil {
		return fmt.Errorf("output activation: %w", err)
	}
	return nil
}

// LayerSpecs converts the config into an ordered spec list: a flattening
// reshape when the input shape is multi-dimensional, then one dense layer
// per architecture width, with the hidden activation on all but the last
// and the output activation on the last.
func (c Config) LayerSpecs() ([]nn.LayerSpec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hidden, _ := nn.ParseActivation(c.HiddenActivation)
	output, _ := nn.ParseActivation(c.OutputActivation)

	specs := make([]nn.LayerSpec, 0, len(c.Architecture)+1)
	if len(c.InputShape) > 1 {
		specs = append(specs, nn.Flatten(c.InputShape...))
	}

	for i, width := range c.Architecture {
		activation := hidden
		if i == len(c.Architecture)-1 {
			activation = output
		}
		spec := nn.Dense(width, activation)
		if len(specs) == 0 && i == 0 {
			spec = spec.WithInput(c.InputShape...)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// BuildOptions returns the build options implied by the config (currently
// only the optional deterministic seed).
func (c Config) BuildOptions() []nn.BuildOption {
	if c.Seed == nil {
		return nil
	}
	return []nn.BuildOption{nn.WithSeed(*c.Seed)}
}
