// SPDX-License-Identifier: MIT
// Package config loads and validates netrobust run settings.
//
// Settings come from an optional YAML file; command-line flags are applied on
// top by the cli package. Validation uses struct tags and reports the YAML key
// of the first offending field.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netrobust/bipartite"
	"github.com/katalvlaran/netrobust/robustness"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultOutput      = "robustness_results.xlsx"
	DefaultPlotFormat  = "png"
	DefaultDenominator = "plants"
)

// Config is the full set of run settings.
type Config struct {
	// Input is the workbook or csv file holding the interaction matrices.
	Input string `yaml:"input" validate:"required"`
	// Sheets restricts the run to these tables; empty means all.
	Sheets []string `yaml:"sheets" validate:"omitempty,dive,required"`
	// Output is the result file; its extension selects xlsx or csv.
	Output string `yaml:"output" validate:"required,resultfile"`
	// PlotDir, when set, receives one chart per table.
	PlotDir    string `yaml:"plot_dir"`
	PlotFormat string `yaml:"plot_format" validate:"omitempty,oneof=png svg pdf"`
	// Workers bounds concurrent tables; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`
	// Denominator of X: "plants" (|A|) or "pollinators" (|B₀|).
	Denominator string `yaml:"denominator" validate:"required,oneof=plants pollinators"`
	// NonZeroEdges treats any finite non-zero cell as an edge instead of exactly 1.
	NonZeroEdges bool `yaml:"nonzero_edges"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("resultfile", isResultFile); err != nil {
		panic(err)
	}

	return v
}

// isResultFile accepts paths ending in .xlsx or .csv.
func isResultFile(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".xlsx", ".csv":
		return true
	}

	return false
}

// Default returns a Config with every optional field filled in.
func Default() Config {
	return Config{
		Output:      DefaultOutput,
		PlotFormat:  DefaultPlotFormat,
		Denominator: DefaultDenominator,
	}
}

// Load reads path over Default. Unknown keys are rejected. The result is not
// validated, so flags can still fill required fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r over Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}

	return cfg, nil
}

// Validate checks c against its tags.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalidConfig)
	}

	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required: %w", e.Field(), ErrInvalidConfig)
	case "oneof":
		return fmt.Errorf("%s: %q is not one of [%s]: %w", e.Field(), e.Value(), e.Param(), ErrInvalidConfig)
	case "gte", "lte":
		return fmt.Errorf("%s: %v out of range (%s %s): %w", e.Field(), e.Value(), e.Tag(), e.Param(), ErrInvalidConfig)
	case "resultfile":
		return fmt.Errorf("%s: %q must end in .xlsx or .csv: %w", e.Field(), e.Value(), ErrInvalidConfig)
	default:
		return fmt.Errorf("%s: validation failed (%s): %w", e.Field(), e.Tag(), ErrInvalidConfig)
	}
}

// EngineOptions translates the settings into robustness options.
func (c Config) EngineOptions() []robustness.Option {
	if c.Denominator == robustness.ByClassB.String() {
		return []robustness.Option{robustness.WithRemovedClassDenominator()}
	}

	return nil
}

// BuilderOptions translates the settings into bipartite options.
func (c Config) BuilderOptions() []bipartite.Option {
	if c.NonZeroEdges {
		return []bipartite.Option{bipartite.WithNonZeroEdges()}
	}

	return nil
}
