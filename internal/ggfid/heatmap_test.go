package ggfid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildHeatmap(t *testing.T) {
	h, err := BuildHeatmap([]string{"ggag", "AATG", "GCTT"}, "BsaI")
	if err != nil {
		t.Fatal(err)
	}

	wantSet := []string{"GGAG", "AATG", "GCTT"}
	wantComps := []string{"CTCC", "CATT", "AAGC"}
	if diff := cmp.Diff(wantSet, h.Overhangs); diff != "" {
		t.Errorf("overhangs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantComps, h.Complements); diff != "" {
		t.Errorf("complements mismatch (-want +got):\n%s", diff)
	}

	// diagonal cells are each overhang's self-ligation lookup against its
	// own reverse complement
	wantDiag := []float64{574, 678, 452}
	for i, want := range wantDiag {
		if h.Matrix[i][i] != want {
			t.Errorf("Matrix[%d][%d] = %v, want %v", i, i, h.Matrix[i][i], want)
		}
	}

	// this particular trio has no measured cross-talk
	for i := range h.Matrix {
		for j := range h.Matrix[i] {
			if i != j && h.Matrix[i][j] != 0 {
				t.Errorf("Matrix[%d][%d] = %v, want 0", i, j, h.Matrix[i][j])
			}
		}
	}

	if h.MinFreq != 452 || h.MaxFreq != 678 {
		t.Errorf("min/max = %v/%v, want 452/678", h.MinFreq, h.MaxFreq)
	}
	if len(h.Issues) != 0 || h.HasCriticalIssues {
		t.Errorf("unexpected issues: %+v", h.Issues)
	}

	// min-max scaling: the largest positive cell lands on 1, the smallest
	// on 0, everything stays in [0,1]
	if h.Normalized[1][1] != 1 {
		t.Errorf("Normalized[1][1] = %v, want 1", h.Normalized[1][1])
	}
	if h.Normalized[2][2] != 0 {
		t.Errorf("Normalized[2][2] = %v, want 0", h.Normalized[2][2])
	}
	for i := range h.Normalized {
		for j, v := range h.Normalized[i] {
			if v < 0 || v > 1 {
				t.Errorf("Normalized[%d][%d] = %v, outside [0,1]", i, j, v)
			}
		}
	}
}

func TestBuildHeatmap_synonyms(t *testing.T) {
	set := []string{"GGAG", "ATCC", "GTCC", "CTAC"}

	bare, err := BuildHeatmap(set, "BsaI")
	if err != nil {
		t.Fatal(err)
	}
	qualified, err := BuildHeatmap(set, "BsaI-HFv2")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(qualified, bare); diff != "" {
		t.Errorf("synonym produced a different result (-qualified +bare):\n%s", diff)
	}
}

func TestBuildHeatmap_issues(t *testing.T) {
	h, err := BuildHeatmap([]string{"GGAG", "ATCC", "GTCC", "CTAC"}, "BsaI")
	if err != nil {
		t.Fatal(err)
	}

	if len(h.Issues) == 0 {
		t.Fatal("expected cross-ligation issues")
	}

	for i, issue := range h.Issues {
		if issue.Ratio <= issueFloor {
			t.Errorf("issue %d ratio %v at or below the reporting floor", i, issue.Ratio)
		}
		if issue.Severity != severityFor(issue.Ratio) {
			t.Errorf("issue %d severity %s doesn't match ratio %v", i, issue.Severity, issue.Ratio)
		}
		if i > 0 && issue.Ratio > h.Issues[i-1].Ratio {
			t.Errorf("issues not sorted descending at %d: %v > %v", i, issue.Ratio, h.Issues[i-1].Ratio)
		}
	}

	worst := h.Issues[0]
	if worst.Overhang != "ATCC" || worst.Partner != "GGAC" || worst.CrossFreq != 39 {
		t.Errorf("worst issue = %+v, want ATCC × GGAC at 39", worst)
	}
	if worst.Severity != SeverityMedium {
		t.Errorf("worst severity = %s, want medium", worst.Severity)
	}
	if h.HasCriticalIssues {
		t.Error("no high-severity issue in this set")
	}
}

func Test_crossIssues(t *testing.T) {
	// row AAAC: correct 1000, crosses at exactly the 0.10 and 0.05
	// boundaries plus one sitting exactly on the reporting floor.
	// row AAAG: zero diagonal, its cross-reaction goes unreported
	matrix := &LigationMatrix{freqs: map[string]map[string]float64{
		"AAAC": {
			"GTTT": 1000,
			"CTTT": 100, // vs AAAG, ratio 0.10
			"ATTT": 50,  // vs AAAT, ratio 0.05
			"CCTT": 10,  // vs AAGG, ratio 0.01, below floor
		},
		"AAAG": {
			"GTTT": 500,
		},
	}}

	h := buildHeatmap(matrix, []string{"AAAC", "AAAG", "AAAT", "AAGG"})

	if len(h.Issues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(h.Issues), h.Issues)
	}

	// boundary inclusivity: 0.10 is high, 0.05 is medium
	if h.Issues[0].Ratio != 0.10 || h.Issues[0].Severity != SeverityHigh {
		t.Errorf("issue 0 = %+v, want ratio 0.10 high", h.Issues[0])
	}
	if h.Issues[1].Ratio != 0.05 || h.Issues[1].Severity != SeverityMedium {
		t.Errorf("issue 1 = %+v, want ratio 0.05 medium", h.Issues[1])
	}

	if !h.HasCriticalIssues {
		t.Error("HasCriticalIssues should be true with a high-severity issue")
	}

	for _, issue := range h.Issues {
		if issue.Overhang == "AAAG" {
			t.Error("zero-diagonal row should produce no issues")
		}
	}
}

func Test_buildHeatmap_allZero(t *testing.T) {
	matrix := &LigationMatrix{freqs: map[string]map[string]float64{}}
	h := buildHeatmap(matrix, []string{"GGAG", "AATG"})

	if h.MinFreq != 0 || h.MaxFreq != 0 {
		t.Errorf("min/max = %v/%v, want 0/0 with no positive cells", h.MinFreq, h.MaxFreq)
	}
	for i := range h.Normalized {
		for j, v := range h.Normalized[i] {
			if v != 0 {
				t.Errorf("Normalized[%d][%d] = %v, want 0", i, j, v)
			}
		}
	}
	if len(h.Issues) != 0 {
		t.Errorf("unexpected issues: %+v", h.Issues)
	}
}

func TestBuildHeatmap_unknownEnzyme(t *testing.T) {
	if _, err := BuildHeatmap([]string{"GGAG"}, "NotARealEnzyme"); err == nil {
		t.Fatal("expected an error for an unknown enzyme")
	}
}
