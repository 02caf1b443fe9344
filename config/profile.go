// SPDX-License-Identifier: MIT
// Package: symgraph/config
//
// profile.go — Profile schema, decoding and validation.

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile wraps every decoding or validation failure.
var ErrInvalidProfile = errors.New("config: invalid profile")

//go:embed w33.yaml
var defaultProfile []byte

// ID schemes accepted by Profile.IDScheme.
const (
	IDCoordinates = "coordinates"
	IDDecimal     = "decimal"
	IDPrefixed    = "prefixed"
)

// Profile is one verification setup.
type Profile struct {
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description,omitempty"`
	Form        Form    `yaml:"form"`
	Rule        string  `yaml:"rule,omitempty" validate:"omitempty,oneof=orthogonal non-orthogonal"`
	IDScheme    string  `yaml:"id_scheme,omitempty" validate:"omitempty,oneof=coordinates decimal prefixed"`
	IDPrefix    string  `yaml:"id_prefix,omitempty" validate:"required_if=IDScheme prefixed"`
	Expect      Targets `yaml:"expect"`
	Search      Search  `yaml:"search,omitempty"`
}

// Form describes the alternating form by skew pairs or by Gram matrix.
// Exactly one of the two must be set.
type Form struct {
	Pairs [][2]int `yaml:"pairs,omitempty" validate:"required_without=Gram,excluded_with=Gram,max=2,dive,dive,gte=0,lte=3"`
	Gram  [][]int  `yaml:"gram,omitempty" validate:"omitempty,len=4,dive,len=4,dive,gte=0,lte=2"`
}

// Targets are the expected invariants. Zero values disable the optional
// targets (eigenvalues, automorphism order, diameter, isotropic lines).
type Targets struct {
	VertexCount            int          `yaml:"vertex_count" validate:"gte=0"`
	Degree                 int          `yaml:"degree" validate:"gte=0"`
	Lambda                 int          `yaml:"lambda" validate:"gte=0"`
	Mu                     int          `yaml:"mu" validate:"gte=0"`
	Eigenvalues            []Eigenvalue `yaml:"eigenvalues,omitempty" validate:"dive"`
	AutomorphismGroupOrder string       `yaml:"automorphism_group_order,omitempty" validate:"omitempty,number"`
	Diameter               int          `yaml:"diameter,omitempty" validate:"gte=0"`
	IsotropicLines         int          `yaml:"isotropic_lines,omitempty" validate:"gte=0"`
}

// Eigenvalue is one expected eigenvalue with multiplicity.
type Eigenvalue struct {
	Value        float64 `yaml:"value"`
	Multiplicity int     `yaml:"multiplicity" validate:"gt=0"`
}

// Search bounds the automorphism computation.
type Search struct {
	MaxNodes          int  `yaml:"max_nodes" validate:"gte=0"`
	SkipAutomorphisms bool `yaml:"skip_automorphisms,omitempty"`
}

var profileValidate *validator.Validate

func init() {
	profileValidate = validator.New()
	profileValidate.RegisterStructValidation(validateTargets, Targets{})
}

// validateTargets requires eigenvalue multiplicities to sum to vertex_count.
func validateTargets(sl validator.StructLevel) {
	t := sl.Current().Interface().(Targets)
	if len(t.Eigenvalues) == 0 {
		return
	}
	sum := 0
	for _, e := range t.Eigenvalues {
		sum += e.Multiplicity
	}
	if sum != t.VertexCount {
		sl.ReportError(t.Eigenvalues, "Eigenvalues", "eigenvalues", "multiplicity_sum", fmt.Sprint(t.VertexCount))
	}
}

// Validate checks struct tags and the cross-field rules.
func (p *Profile) Validate() error {
	if err := profileValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidProfile, p.Name, err)
	}

	return nil
}

// Parse decodes and validates a YAML profile. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML profile from r.
func Decode(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads a profile from path.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Default returns the embedded w33 profile.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		// The embedded profile is a package constant.
		panic(err)
	}

	return p
}

// Load returns the embedded profile when path is empty, else LoadFile(path).
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// YAML renders the profile.
func (p *Profile) YAML() ([]byte, error) {
	return yaml.Marshal(p)
}
