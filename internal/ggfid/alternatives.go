package ggfid

import "sort"

// DefaultTopN is the number of alternative overhangs returned when the
// caller doesn't ask for a specific count
const DefaultTopN = 5

// AlternativeCandidate is one replacement overhang and what the assembly
// would look like with it swapped in
type AlternativeCandidate struct {
	// Overhang is the proposed replacement
	Overhang string `json:"overhang"`

	// Junction is the replacement's own fidelity under substitution
	Junction JunctionFidelity `json:"junction"`

	// OverallFidelity is the whole assembly's fidelity with the
	// substitution in place
	OverallFidelity float64 `json:"overallFidelity"`

	// Improvement is the candidate's junction fidelity minus the replaced
	// overhang's baseline reference fidelity
	Improvement float64 `json:"improvement"`
}

// FindAlternatives searches the enzyme's overhang universe for replacements
// for the overhang at problemIndex that raise whole-assembly fidelity.
// Results are ordered best assembly first and truncated to topN; topN <= 0
// means DefaultTopN. An out-of-range problemIndex yields no candidates
func FindAlternatives(current []string, problemIndex int, enzyme string, topN int) ([]AlternativeCandidate, error) {
	profile, err := ResolveProfile(enzyme)
	if err != nil {
		return nil, err
	}
	return findAlternatives(profile, current, problemIndex, topN), nil
}

func findAlternatives(profile *EnzymeProfile, current []string, problemIndex, topN int) []AlternativeCandidate {
	set := canonicalAll(current)
	if problemIndex < 0 || problemIndex >= len(set) {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	// the replaced overhang's reference fidelity, 0 if the dataset has no
	// baseline for it
	baseline := profile.Baseline[set[problemIndex]]

	// exclude the current set and its complements: reusing either strand of
	// an end already in the assembly creates the exact cross-ligation this
	// search is trying to remove
	used := make(map[string]bool, 2*len(set))
	for _, oh := range set {
		used[oh] = true
		used[revComp(oh)] = true
	}

	var candidates []AlternativeCandidate
	trial := make([]string, len(set))
	for _, candidate := range profile.Overhangs {
		candidate = canonical(candidate)
		if used[candidate] || selfComplementary(candidate) {
			continue
		}

		// substituting one overhang changes every junction's interaction
		// totals, so the whole set is re-scored, not just the swapped slot
		copy(trial, set)
		trial[problemIndex] = candidate
		junctions := scoreJunctions(profile.Matrix, trial)

		candidates = append(candidates, AlternativeCandidate{
			Overhang:        candidate,
			Junction:        junctions[problemIndex],
			OverallFidelity: overallFidelity(junctions),
			Improvement:     junctions[problemIndex].Fidelity - baseline,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].OverallFidelity > candidates[b].OverallFidelity
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
