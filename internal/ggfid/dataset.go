// Package ggfid scores Golden Gate overhang sets against empirically measured
// ligation frequencies: which junctions will ligate correctly, which will
// cross-react, and which replacement overhangs would raise the odds of a
// one-pot assembly coming together.
package ggfid

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed data/ligation.json
var dataFS embed.FS

// ErrUnknownEnzyme is returned when an enzyme name fails alias resolution
// against the loaded ligation dataset
var ErrUnknownEnzyme = errors.New("unknown enzyme")

// aliases maps the enzyme names users actually type to the canonical dataset
// keys. A bare name resolves to its high-fidelity variant
var aliases = map[string]string{
	"BsaI":  "BsaI-HFv2",
	"BbsI":  "BbsI-HF",
	"BpiI":  "BbsI-HF", // Thermo's name for BbsI
	"BsmBI": "BsmBI-v2",
	"Esp3I": "BsmBI-v2",
}

// LigationMatrix is the read-only pairwise ligation-frequency table for one
// enzyme. Lookups are total: a cell absent from the reference data is a
// measured-zero, not an error
type LigationMatrix struct {
	freqs map[string]map[string]float64
}

// Frequency returns the measured rate at which overhang a ligates with the
// single-stranded sequence b, 0 if the pairing was never observed
func (m *LigationMatrix) Frequency(a, b string) float64 {
	if m == nil || m.freqs == nil {
		return 0
	}
	return m.freqs[a][b]
}

// EnzymeProfile is everything the dataset knows about one enzyme: its matrix,
// the full set of overhangs it can generate, and a per-overhang fidelity
// reference measured against that full set
type EnzymeProfile struct {
	// Name is the canonical dataset key, e.g. "BsaI-HFv2"
	Name string

	// Matrix is the enzyme's ligation-frequency table
	Matrix *LigationMatrix

	// Overhangs is the enzyme's full valid-overhang universe
	Overhangs []string

	// Baseline maps each overhang to its reference fidelity, used to judge
	// whether a replacement is an improvement
	Baseline map[string]float64
}

// enzymeEntry mirrors one enzyme's block in data/ligation.json
type enzymeEntry struct {
	Overhangs        []string                      `json:"overhangs"`
	Frequencies      map[string]map[string]float64 `json:"frequencies"`
	BaselineFidelity map[string]float64            `json:"baselineFidelity"`
}

// dataset is the versioned ligation reference data shipped with the binary
type dataset struct {
	Version string                 `json:"version"`
	Enzymes map[string]enzymeEntry `json:"enzymes"`
}

var (
	loadOnce sync.Once
	refData  *dataset
)

// reference parses the embedded dataset once and reuses it for the life of
// the process. The data is never mutated after load
func reference() *dataset {
	loadOnce.Do(func() {
		b, err := dataFS.ReadFile("data/ligation.json")
		if err != nil {
			panic(fmt.Sprintf("ligation dataset missing from binary: %v", err))
		}

		var d dataset
		if err := json.Unmarshal(b, &d); err != nil {
			panic(fmt.Sprintf("ligation dataset unreadable: %v", err))
		}
		refData = &d
	})

	return refData
}

// canonicalEnzyme resolves synonyms to the canonical dataset key. Resolution
// is idempotent: canonical keys pass through unchanged
func canonicalEnzyme(name string) (string, error) {
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if _, ok := reference().Enzymes[name]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}
	return name, nil
}

// ResolveMatrix maps an enzyme name, through the alias table, to its
// ligation-frequency matrix
func ResolveMatrix(enzyme string) (*LigationMatrix, error) {
	key, err := canonicalEnzyme(enzyme)
	if err != nil {
		return nil, err
	}
	return &LigationMatrix{freqs: reference().Enzymes[key].Frequencies}, nil
}

// ResolveProfile resolves an enzyme name to its full profile: matrix,
// overhang universe, and baseline fidelity reference
func ResolveProfile(enzyme string) (*EnzymeProfile, error) {
	key, err := canonicalEnzyme(enzyme)
	if err != nil {
		return nil, err
	}

	entry := reference().Enzymes[key]
	return &EnzymeProfile{
		Name:      key,
		Matrix:    &LigationMatrix{freqs: entry.Frequencies},
		Overhangs: entry.Overhangs,
		Baseline:  entry.BaselineFidelity,
	}, nil
}

// DatasetVersion is the version tag of the embedded ligation reference data
func DatasetVersion() string {
	return reference().Version
}

// EnzymeNames returns the canonical enzyme keys in the dataset, unordered
func EnzymeNames() []string {
	names := make([]string, 0, len(reference().Enzymes))
	for name := range reference().Enzymes {
		names = append(names, name)
	}
	return names
}

// Aliases returns the synonyms that resolve to the given canonical key
func Aliases(canonical string) (synonyms []string) {
	for alias, target := range aliases {
		if target == canonical {
			synonyms = append(synonyms, alias)
		}
	}
	return synonyms
}
