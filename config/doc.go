// Package config loads verification profiles from YAML.
//
// A profile fixes everything a run depends on: the alternating form (skew
// pairs or an explicit Gram matrix), the adjacency rule, the vertex-ID
// scheme and the expected invariants. Profiles are decoded strictly
// (unknown keys are errors) and validated with struct tags; Default returns
// the embedded "w33" profile.
package config
