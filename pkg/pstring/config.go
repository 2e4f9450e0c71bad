// Package pstring implements the probabilistic edit-distance scoring of
// SPEC_FULL.md §4.8 (C7): a memoized 3-D DP recurrence over terms
// re-interpreted as flat strings of atoms, yielding a natural-log
// probability. It is independent of pkg/rewrite's rewriting engine and uses
// pkg/term/pkg/rewrite only for the term⇄string conversion.
package pstring

import (
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SubKind selects how p_incorrect_sub is modeled.
type SubKind int

const (
	// Constant applies a fixed probability to every incorrect substitution.
	Constant SubKind = iota
	// Bounded applies a triangular-shaped weight over an integer range
	// [Low, High], for atoms whose display parses as an integer.
	Bounded
)

// SubDist is p_incorrect_sub: either a flat Constant or a Bounded
// triangular distribution.
type SubDist struct {
	Kind     SubKind `yaml:"kind"`
	Constant float64 `yaml:"constant,omitempty"`
	Low      int     `yaml:"low,omitempty"`
	High     int     `yaml:"high,omitempty"`
	Weight   float64 `yaml:"weight,omitempty"`
}

// Config is the PStringDist record of SPEC_FULL.md §3. It is
// (de)serializable via YAML (gopkg.in/yaml.v3, adopted from
// kanso-lang-kanso/theRebelliousNerd-codenerd's stacks) so tuning can live
// in a config file; SPEC_FULL.md treats persistence as otherwise
// out-of-scope, and this is the one exception it names.
type Config struct {
	Beta          float64 `yaml:"beta"`
	PInsertion    float64 `yaml:"p_insertion"`
	PDeletion     float64 `yaml:"p_deletion"`
	PCorrectSub   float64 `yaml:"p_correct_sub"`
	PIncorrectSub SubDist `yaml:"p_incorrect_sub"`
}

// Load decodes a Config from YAML.
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "pstring: decode config")
	}
	return c, nil
}

// Dump encodes c as YAML.
func (c Config) Dump() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "pstring: encode config")
	}
	return out, nil
}

// Validate checks the probability-sum identity of SPEC_FULL.md §3:
// p_deletion + p_correct_sub + sum(p_incorrect_sub) = 1.0. SPEC_FULL.md is
// explicit that this identity is advisory and not enforced by construction
// (Config is a plain struct); Validate is an opt-in check a caller may run
// before trusting a loaded config.
func (c Config) Validate() error {
	const epsilon = 1e-6

	mass := c.PDeletion + c.PCorrectSub
	switch c.PIncorrectSub.Kind {
	case Constant:
		mass += c.PIncorrectSub.Constant
	case Bounded:
		mass += c.PIncorrectSub.Weight
	}

	if math.Abs(mass-1.0) > epsilon {
		return errors.Errorf("pstring: probability mass sums to %g, want 1.0", mass)
	}
	return nil
}
