package ggfid

import "math"

// junction status tiers, fixed thresholds on the fidelity ratio
const (
	StatusExcellent  = "excellent"  // >= 0.99
	StatusGood       = "good"       // >= 0.95
	StatusAcceptable = "acceptable" // >= 0.90
	StatusMarginal   = "marginal"   // >= 0.80
	StatusPoor       = "poor"
)

// DefaultScreeningFactor is the expected number of colonies to pick per unit
// of inverse fidelity when estimating screening effort
const DefaultScreeningFactor = 10

// ColoniesUnbounded is the ColoniesToScreen sentinel when overall fidelity is
// zero: no number of colonies rescues an assembly that can't come together
const ColoniesUnbounded = -1

// JunctionFidelity scores one overhang's odds of ligating its intended
// partner rather than anything else in the set
type JunctionFidelity struct {
	// Overhang and its reverse complement, the intended duplex
	Overhang   string `json:"overhang"`
	Complement string `json:"complement"`

	// Correct sums both ligation orientations of the intended pairing
	Correct float64 `json:"correct"`

	// Total sums every duplex-end pairing between this overhang's two
	// strands and every set member's two strands
	Total float64 `json:"total"`

	// Fidelity is Correct / Total, 0 when nothing ligates at all
	Fidelity float64 `json:"fidelity"`

	// WorstPartner is the set member this overhang most readily
	// mis-ligates with, empty when there is no cross-reaction
	WorstPartner string `json:"worstPartner,omitempty"`

	// WorstFreq is the summed mis-ligation frequency with WorstPartner
	WorstFreq float64 `json:"worstFreq,omitempty"`

	Status string `json:"status"`
}

// AssemblyFidelityReport scores a whole overhang set
type AssemblyFidelityReport struct {
	Junctions []JunctionFidelity `json:"junctions"`

	// Weakest and Strongest are the lowest- and highest-fidelity junctions
	Weakest   JunctionFidelity `json:"weakest"`
	Strongest JunctionFidelity `json:"strongest"`

	// OverallFidelity is the product of the per-junction fidelities,
	// treating junctions as independent events
	OverallFidelity float64 `json:"overallFidelity"`

	// ColoniesToScreen estimates how many colonies to pick to find a
	// correct assembly, ColoniesUnbounded when OverallFidelity is 0
	ColoniesToScreen int `json:"coloniesToScreen"`
}

// ScoreFidelity converts ligation frequencies into per-junction and
// whole-assembly fidelity scores for an overhang set under the named enzyme
func ScoreFidelity(overhangs []string, enzyme string) (*AssemblyFidelityReport, error) {
	matrix, err := ResolveMatrix(enzyme)
	if err != nil {
		return nil, err
	}
	return scoreFidelity(matrix, overhangs), nil
}

func scoreFidelity(matrix *LigationMatrix, overhangs []string) *AssemblyFidelityReport {
	set := canonicalAll(overhangs)
	junctions := scoreJunctions(matrix, set)
	overall := overallFidelity(junctions)

	report := &AssemblyFidelityReport{
		Junctions:        junctions,
		OverallFidelity:  overall,
		ColoniesToScreen: ColoniesToScreen(overall, DefaultScreeningFactor),
	}

	for i, j := range junctions {
		if i == 0 || j.Fidelity < report.Weakest.Fidelity {
			report.Weakest = j
		}
		if i == 0 || j.Fidelity > report.Strongest.Fidelity {
			report.Strongest = j
		}
	}

	return report
}

// scoreJunctions computes every overhang's fidelity within the set. Both
// strands of each duplex end are counted: an overhang can mis-ligate via its
// top strand or its bottom strand, against either strand of every other end
func scoreJunctions(matrix *LigationMatrix, set []string) []JunctionFidelity {
	junctions := make([]JunctionFidelity, len(set))

	for i, oh := range set {
		rc := revComp(oh)

		correct := matrix.Frequency(oh, rc) + matrix.Frequency(rc, oh)

		total := 0.0
		worst, worstFreq := "", 0.0
		for _, other := range set {
			ro := revComp(other)
			total += matrix.Frequency(oh, other) +
				matrix.Frequency(oh, ro) +
				matrix.Frequency(rc, other) +
				matrix.Frequency(rc, ro)

			if other == oh {
				continue
			}

			// cross-reaction strength against this particular set member,
			// ties keep the first candidate in input order
			cross := matrix.Frequency(oh, ro) + matrix.Frequency(rc, other)
			if cross > worstFreq {
				worst, worstFreq = other, cross
			}
		}

		fidelity := 0.0
		if total > 0 {
			fidelity = correct / total
		}

		junctions[i] = JunctionFidelity{
			Overhang:     oh,
			Complement:   rc,
			Correct:      correct,
			Total:        total,
			Fidelity:     fidelity,
			WorstPartner: worst,
			WorstFreq:    worstFreq,
			Status:       statusFor(fidelity),
		}
	}

	return junctions
}

// overallFidelity is the product across junctions: the assembly succeeds only
// if every junction ligates correctly
func overallFidelity(junctions []JunctionFidelity) float64 {
	overall := 1.0
	for _, j := range junctions {
		overall *= j.Fidelity
	}
	if len(junctions) == 0 {
		return 0
	}
	return overall
}

// ColoniesToScreen estimates screening effort as ceil(factor / overall),
// ColoniesUnbounded when overall is 0
func ColoniesToScreen(overall float64, factor int) int {
	if overall <= 0 {
		return ColoniesUnbounded
	}
	return int(math.Ceil(float64(factor) / overall))
}

func statusFor(fidelity float64) string {
	switch {
	case fidelity >= 0.99:
		return StatusExcellent
	case fidelity >= 0.95:
		return StatusGood
	case fidelity >= 0.90:
		return StatusAcceptable
	case fidelity >= 0.80:
		return StatusMarginal
	default:
		return StatusPoor
	}
}
