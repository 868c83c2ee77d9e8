package ggfid

import "sort"

// Severity tiers a cross-ligation issue by its cross/correct ratio
type Severity string

// severity tiers, strict ordered thresholds on the cross/correct ratio
const (
	SeverityHigh   Severity = "high"   // ratio >= 0.10
	SeverityMedium Severity = "medium" // ratio >= 0.05
	SeverityLow    Severity = "low"    // ratio > 0.01
)

// issueFloor is the ratio below which a cross-ligation isn't worth reporting
const issueFloor = 0.01

// CrossLigationIssue is one overhang pairing that ligates when it shouldn't
type CrossLigationIssue struct {
	// Overhang is the source overhang (the heatmap row)
	Overhang string `json:"overhang"`

	// Partner is the unintended strand it sticks to, the reverse complement
	// of the offending column's overhang
	Partner string `json:"partner"`

	// CrossFreq is the measured frequency of the unintended ligation
	CrossFreq float64 `json:"crossFreq"`

	// CorrectFreq is the overhang's own correct-ligation frequency
	CorrectFreq float64 `json:"correctFreq"`

	// Ratio is CrossFreq / CorrectFreq
	Ratio float64 `json:"ratio"`

	Severity Severity `json:"severity"`
}

// HeatmapResult is the pairwise ligation picture for one overhang set
type HeatmapResult struct {
	// Overhangs is the canonicalized input set, in input order
	Overhangs []string `json:"overhangs"`

	// Complements holds the reverse complement of each overhang
	Complements []string `json:"complements"`

	// Matrix[i][j] is the frequency of overhang i ligating with the reverse
	// complement strand contributed by overhang j
	Matrix [][]float64 `json:"matrix"`

	// Normalized is Matrix min-max scaled over the strictly positive cells
	Normalized [][]float64 `json:"normalized"`

	// MinFreq and MaxFreq are the smallest and largest strictly positive
	// cells, both 0 when the matrix has no positive cell
	MinFreq float64 `json:"minFreq"`
	MaxFreq float64 `json:"maxFreq"`

	// Issues is every off-diagonal problem worth reporting, worst first
	Issues []CrossLigationIssue `json:"crossLigationIssues"`

	// HasCriticalIssues is true iff any issue is high severity
	HasCriticalIssues bool `json:"hasCriticalIssues"`
}

// BuildHeatmap builds the pairwise ligation-frequency matrix for an overhang
// set under the named enzyme, normalizes it, and flags cross-ligation
// problems. The only error is an unresolvable enzyme name
func BuildHeatmap(overhangs []string, enzyme string) (*HeatmapResult, error) {
	matrix, err := ResolveMatrix(enzyme)
	if err != nil {
		return nil, err
	}
	return buildHeatmap(matrix, overhangs), nil
}

func buildHeatmap(matrix *LigationMatrix, overhangs []string) *HeatmapResult {
	set := canonicalAll(overhangs)
	n := len(set)

	comps := make([]string, n)
	for i, oh := range set {
		comps[i] = revComp(oh)
	}

	// row i is overhang i attempting ligation; column j is the reverse
	// complement strand overhang j contributes. That's the actual
	// donor/acceptor geometry of a sticky-end ligation
	cells := make([][]float64, n)
	minFreq, maxFreq := 0.0, 0.0
	for i := range set {
		cells[i] = make([]float64, n)
		for j := range set {
			v := matrix.Frequency(set[i], comps[j])
			cells[i][j] = v

			if v > 0 {
				if minFreq == 0 || v < minFreq {
					minFreq = v
				}
				if v > maxFreq {
					maxFreq = v
				}
			}
		}
	}

	// min-max scale the positive cells. Zero cells stay zero and the
	// denominator is floored at 1 so a uniform matrix doesn't divide by zero
	span := maxFreq - minFreq
	if span < 1 {
		span = 1
	}
	norm := make([][]float64, n)
	for i := range cells {
		norm[i] = make([]float64, n)
		for j, v := range cells[i] {
			if v > 0 {
				norm[i][j] = (v - minFreq) / span
			}
		}
	}

	issues := crossIssues(set, comps, cells)

	return &HeatmapResult{
		Overhangs:         set,
		Complements:       comps,
		Matrix:            cells,
		Normalized:        norm,
		MinFreq:           minFreq,
		MaxFreq:           maxFreq,
		Issues:            issues,
		HasCriticalIssues: anyCritical(issues),
	}
}

// crossIssues flags each off-diagonal cell whose frequency is a meaningful
// fraction of the row's correct-ligation frequency. Rows with a zero diagonal
// have no baseline to compare against and are skipped, so a cross-reaction on
// such a row goes unreported
func crossIssues(set, comps []string, cells [][]float64) []CrossLigationIssue {
	var issues []CrossLigationIssue

	for i := range set {
		correct := cells[i][i]
		if correct <= 0 {
			continue
		}

		for j := range set {
			if i == j || cells[i][j] <= 0 {
				continue
			}

			ratio := cells[i][j] / correct
			if ratio <= issueFloor {
				continue
			}

			issues = append(issues, CrossLigationIssue{
				Overhang:    set[i],
				Partner:     comps[j],
				CrossFreq:   cells[i][j],
				CorrectFreq: correct,
				Ratio:       ratio,
				Severity:    severityFor(ratio),
			})
		}
	}

	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].Ratio > issues[b].Ratio
	})

	return issues
}

func severityFor(ratio float64) Severity {
	switch {
	case ratio >= 0.10:
		return SeverityHigh
	case ratio >= 0.05:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func anyCritical(issues []CrossLigationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityHigh {
			return true
		}
	}
	return false
}
