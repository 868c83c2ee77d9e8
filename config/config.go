// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of defaults and values
// bound from command line flags
type Config struct {
	// the enzyme generating the overhangs
	Enzyme string `mapstructure:"enzyme"`

	// the number of alternative overhangs to suggest
	TopN int `mapstructure:"top"`

	// the position of the overhang to swap out
	Index int `mapstructure:"index"`

	// the numerator in the colony screening estimate
	ScreeningFactor int `mapstructure:"screening-factor"`

	// the heatmap color scale name
	Scale string `mapstructure:"scale"`

	// heatmap cell edge length, in renderer units
	CellSize float64 `mapstructure:"cell-size"`

	// gap between heatmap cells, in renderer units
	Padding float64 `mapstructure:"padding"`

	// path to write a JSON result file to, empty for none
	Out string `mapstructure:"out"`
}

// New returns a new Config struct populated by Viper settings and/or
// command line arguments
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

func setDefaults() {
	viper.SetDefault("enzyme", "BsaI")
	viper.SetDefault("top", 5)
	viper.SetDefault("index", 0)
	viper.SetDefault("screening-factor", 10)
	viper.SetDefault("scale", "viridis")
	viper.SetDefault("cell-size", 40.0)
	viper.SetDefault("padding", 2.0)
	viper.SetDefault("out", "")
}
