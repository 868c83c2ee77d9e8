package ggfid

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"ggfid/config"

	"github.com/spf13/cobra"
)

// EnzymesCmd lists the enzymes in the ligation dataset along with their
// synonyms and overhang-universe sizes. Useful for if the user doesn't know
// which enzymes are available
func EnzymesCmd(cmd *cobra.Command, args []string) {
	names := EnzymeNames()
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "enzyme\taliases\toverhangs\n")
	for _, name := range names {
		profile, err := ResolveProfile(name)
		if err != nil {
			stderr.Fatalln(err)
		}

		synonyms := Aliases(name)
		sort.Strings(synonyms)

		fmt.Fprintf(tw, "%s\t%s\t%d\n", name, strings.Join(synonyms, ", "), len(profile.Overhangs))
	}
	tw.Flush()

	fmt.Printf("\nligation dataset %s\n", DatasetVersion())
}

// HeatmapCmd builds and logs the cross-ligation heatmap for the overhangs
// passed as arguments
func HeatmapCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	set := parseOverhangs(cmd, args)

	h, err := BuildHeatmap(set, conf.Enzyme)
	if err != nil {
		stderr.Fatalln(err)
	}

	printHeatmap(os.Stdout, h)

	if conf.Out != "" {
		renderable := ToRenderable(h, conf.Scale, conf.CellSize, conf.Padding)
		payload := struct {
			outputMeta
			Heatmap    *HeatmapResult     `json:"heatmap"`
			Renderable *RenderableHeatmap `json:"renderable"`
		}{newOutputMeta(conf.Enzyme), h, renderable}

		if err := writeJSON(conf.Out, payload); err != nil {
			stderr.Fatalln(err)
		}
	}
}

// ScoreCmd logs per-junction and whole-assembly fidelity for the overhangs
// passed as arguments
func ScoreCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	set := parseOverhangs(cmd, args)

	report, err := ScoreFidelity(set, conf.Enzyme)
	if err != nil {
		stderr.Fatalln(err)
	}

	if conf.ScreeningFactor != DefaultScreeningFactor {
		report.ColoniesToScreen = ColoniesToScreen(report.OverallFidelity, conf.ScreeningFactor)
	}

	printReport(os.Stdout, report)

	if conf.Out != "" {
		payload := struct {
			outputMeta
			Report *AssemblyFidelityReport `json:"report"`
		}{newOutputMeta(conf.Enzyme), report}

		if err := writeJSON(conf.Out, payload); err != nil {
			stderr.Fatalln(err)
		}
	}
}

// SwapCmd logs ranked replacements for the overhang at --index
func SwapCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	set := parseOverhangs(cmd, args)

	if conf.Index < 0 || conf.Index >= len(set) {
		stderr.Fatalf("--index %d is out of range for %d overhangs\n", conf.Index, len(set))
	}

	candidates, err := FindAlternatives(set, conf.Index, conf.Enzyme, conf.TopN)
	if err != nil {
		stderr.Fatalln(err)
	}

	replaced := canonical(set[conf.Index])
	fmt.Printf("alternatives for %s (position %d):\n\n", replaced, conf.Index)
	printAlternatives(os.Stdout, replaced, candidates)
}

// parseOverhangs canonicalizes the overhang arguments and rejects sets that
// can't direct an ordered assembly: duplicates and palindromes
func parseOverhangs(cmd *cobra.Command, args []string) []string {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno overhangs passed")
	}

	set := canonicalAll(args)
	seen := make(map[string]bool, len(set))
	for _, oh := range set {
		if seen[oh] {
			stderr.Fatalf("duplicate overhang: %s\n", oh)
		}
		seen[oh] = true

		if selfComplementary(oh) {
			stderr.Fatalf("%s is self-complementary and cannot direct assembly order\n", oh)
		}
	}

	return set
}
