package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()

	c := New()
	if c.Enzyme != "BsaI" {
		t.Errorf("default enzyme = %s, want BsaI", c.Enzyme)
	}
	if c.TopN != 5 {
		t.Errorf("default top = %d, want 5", c.TopN)
	}
	if c.ScreeningFactor != 10 {
		t.Errorf("default screening-factor = %d, want 10", c.ScreeningFactor)
	}
	if c.Scale != "viridis" {
		t.Errorf("default scale = %s, want viridis", c.Scale)
	}
	if c.CellSize != 40 || c.Padding != 2 {
		t.Errorf("default cell-size/padding = %v/%v, want 40/2", c.CellSize, c.Padding)
	}
	if c.Out != "" {
		t.Errorf("default out = %q, want empty", c.Out)
	}
}

func TestNew_overrides(t *testing.T) {
	viper.Reset()
	viper.Set("enzyme", "BsmBI")
	viper.Set("top", 8)
	defer viper.Reset()

	c := New()
	if c.Enzyme != "BsmBI" {
		t.Errorf("enzyme = %s, want BsmBI", c.Enzyme)
	}
	if c.TopN != 8 {
		t.Errorf("top = %d, want 8", c.TopN)
	}
}
