package ggfid

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultScale is the color scale used when the requested name is unknown
const DefaultScale = "viridis"

// Cell is one heatmap square, positioned and colored for a renderer
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`

	// X and Y are the cell's top-left corner in the grid's coordinate space
	X float64 `json:"x"`
	Y float64 `json:"y"`

	RawValue   float64 `json:"rawValue"`
	Normalized float64 `json:"normalized"`

	// Color is a hex RGB string, e.g. "#440154"
	Color string `json:"color"`

	// Diagonal marks the intended (correct) ligation cells
	Diagonal bool `json:"diagonal"`

	Tooltip string `json:"tooltip"`
}

// Label is positioned text for a row or column header
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Legend describes the color ramp so a renderer can draw its own key
type Legend struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`

	// Stops samples the scale at even intervals, low to high
	Stops []string `json:"stops"`
}

// RenderableHeatmap is HeatmapResult flattened into geometry and color,
// carrying no domain logic of its own
type RenderableHeatmap struct {
	Cells     []Cell  `json:"cells"`
	RowLabels []Label `json:"rowLabels"`
	ColLabels []Label `json:"colLabels"`
	Legend    Legend  `json:"legend"`

	// Width and Height are the grid's total extent including padding
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Scale is the color-scale name actually used after fallback
	Scale    string  `json:"scale"`
	CellSize float64 `json:"cellSize"`
	Padding  float64 `json:"padding"`
}

// colorScale maps a normalized value in [0,1] to a hex color
type colorScale func(t float64) string

// scales is the fixed set of supported color scales. A lookup table of pure
// functions, not a growable strategy registry
var scales = map[string]colorScale{
	// perceptually even, the default
	"viridis": gradient(
		[]string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	),
	// green = quiet cell, red = strong ligation where there shouldn't be one
	"stoplight": gradient(
		[]string{"#1a9850", "#ffffbf", "#d73027"},
	),
}

// gradient builds a scale that blends evenly spaced anchor colors in Luv
// space, which keeps perceived brightness changing smoothly
func gradient(anchors []string) colorScale {
	colors := make([]colorful.Color, len(anchors))
	for i, hex := range anchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("bad gradient anchor %q: %v", hex, err))
		}
		colors[i] = c
	}

	return func(t float64) string {
		if t <= 0 {
			return colors[0].Hex()
		}
		if t >= 1 {
			return colors[len(colors)-1].Hex()
		}

		span := 1.0 / float64(len(colors)-1)
		i := int(t / span)
		frac := (t - float64(i)*span) / span
		return colors[i].BlendLuv(colors[i+1], frac).Clamped().Hex()
	}
}

// ToRenderable turns a heatmap into renderer-ready cells, labels, and a
// legend. An unrecognized scale name falls back to DefaultScale
func ToRenderable(h *HeatmapResult, scaleName string, cellSize, padding float64) *RenderableHeatmap {
	scale, ok := scales[scaleName]
	if !ok {
		scaleName = DefaultScale
		scale = scales[scaleName]
	}

	n := len(h.Overhangs)
	step := cellSize + padding

	cells := make([]Cell, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw := h.Matrix[i][j]
			norm := h.Normalized[i][j]

			kind := "cross"
			if i == j {
				kind = "correct"
			}

			cells = append(cells, Cell{
				Row:        i,
				Col:        j,
				X:          float64(j) * step,
				Y:          float64(i) * step,
				RawValue:   raw,
				Normalized: norm,
				Color:      scale(norm),
				Diagonal:   i == j,
				Tooltip: fmt.Sprintf("%s × %s: %g (%s)",
					h.Overhangs[i], h.Complements[j], raw, kind),
			})
		}
	}

	rowLabels := make([]Label, n)
	colLabels := make([]Label, n)
	for i := 0; i < n; i++ {
		rowLabels[i] = Label{
			Text: h.Overhangs[i],
			X:    -padding,
			Y:    float64(i)*step + cellSize/2,
		}
		colLabels[i] = Label{
			Text: h.Complements[i],
			X:    float64(i)*step + cellSize/2,
			Y:    -padding,
		}
	}

	const legendStops = 10
	stops := make([]string, legendStops)
	for i := range stops {
		stops[i] = scale(float64(i) / float64(legendStops-1))
	}

	extent := 0.0
	if n > 0 {
		extent = float64(n)*step - padding
	}

	return &RenderableHeatmap{
		Cells:     cells,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Legend: Legend{
			Min:   h.MinFreq,
			Max:   h.MaxFreq,
			Label: "ligation frequency",
			Stops: stops,
		},
		Width:    extent,
		Height:   extent,
		Scale:    scaleName,
		CellSize: cellSize,
		Padding:  padding,
	}
}
