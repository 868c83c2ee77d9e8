package ggfid

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// outputMeta is stamped onto every JSON result file
type outputMeta struct {
	// Time, ex: "2026/01/01 20:41:00"
	Time string `json:"time"`

	// DatasetVersion of the ligation reference data the result came from
	DatasetVersion string `json:"datasetVersion"`

	// Enzyme is the canonical enzyme key used
	Enzyme string `json:"enzyme"`
}

func newOutputMeta(enzyme string) outputMeta {
	t := time.Now()
	return outputMeta{
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		DatasetVersion: DatasetVersion(),
		Enzyme:         enzyme,
	}
}

// writeJSON marshals a result payload and writes it to the filename requested
func writeJSON(filename string, payload interface{}) error {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, b, 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", filename)
	return nil
}

// printHeatmap logs the raw matrix and any cross-ligation issues
func printHeatmap(w io.Writer, h *HeatmapResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	fmt.Fprint(tw, "\t")
	for _, comp := range h.Complements {
		fmt.Fprintf(tw, "%s\t", comp)
	}
	fmt.Fprint(tw, "\n")

	for i, oh := range h.Overhangs {
		fmt.Fprintf(tw, "%s\t", oh)
		for _, v := range h.Matrix[i] {
			fmt.Fprintf(tw, "%g\t", v)
		}
		fmt.Fprint(tw, "\n")
	}
	tw.Flush()

	if len(h.Issues) == 0 {
		fmt.Fprintln(w, "\nno cross-ligation issues")
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "overhang\tpartner\tcross\tcorrect\tratio\tseverity\n")
	for _, issue := range h.Issues {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%.3f\t%s\n",
			issue.Overhang, issue.Partner, issue.CrossFreq, issue.CorrectFreq, issue.Ratio, issue.Severity)
	}
	tw.Flush()

	if h.HasCriticalIssues {
		fmt.Fprintln(w, "\nWARNING: high-severity cross-ligation found, consider swapping overhangs")
	}
}

// printReport logs per-junction fidelities and the whole-assembly outlook
func printReport(w io.Writer, r *AssemblyFidelityReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "overhang\tcomplement\tfidelity\tstatus\tworst partner\n")
	for _, j := range r.Junctions {
		worst := "-"
		if j.WorstPartner != "" {
			worst = fmt.Sprintf("%s (%g)", j.WorstPartner, j.WorstFreq)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%s\t%s\n",
			j.Overhang, j.Complement, j.Fidelity, j.Status, worst)
	}
	tw.Flush()

	fmt.Fprintf(w, "\noverall fidelity: %.4f\n", r.OverallFidelity)
	if r.ColoniesToScreen == ColoniesUnbounded {
		fmt.Fprintln(w, "colonies to screen: n/a (assembly cannot succeed)")
	} else {
		fmt.Fprintf(w, "colonies to screen: %d\n", r.ColoniesToScreen)
	}
}

// printAlternatives logs ranked replacement overhangs for one position
func printAlternatives(w io.Writer, replaced string, candidates []AlternativeCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintf(w, "no alternatives found for %s\n", replaced)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "overhang\tjunction fidelity\tassembly fidelity\timprovement\n")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%+.4f\n",
			c.Overhang, c.Junction.Fidelity, c.OverallFidelity, c.Improvement)
	}
	tw.Flush()
}
