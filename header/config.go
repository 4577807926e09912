package header

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/hjson/hjson-go"

	"honnef.co/go/track"
)

// Config describes the ranges a collapsing header moves through. Every range
// goes from the expanded state (Start) to the collapsed state (Finish).
type Config struct {
	// Collapsible is the height of the whole header.
	Collapsible track.Interval[float64] `json:"collapsible"`
	// Image is the height of the header image. It is driven by the same
	// height as Collapsible, but stops shrinking earlier.
	Image track.Interval[float64] `json:"image"`
	// LabelLead is the label's leading offset, coupled to the image's
	// progress.
	LabelLead track.Interval[float64] `json:"label-lead"`
	// LabelTop is the label's top offset, coupled like LabelLead.
	LabelTop track.Interval[float64] `json:"label-top"`
	// MenuFade is the range of header heights over which menu items fade
	// out.
	MenuFade track.Interval[float64] `json:"menu-fade"`
	// GreetingFade is the range over which the greeting fades in. It is
	// sampled at the unclamped header height that drives the image, not at
	// the image's clamped height.
	GreetingFade track.Interval[float64] `json:"greeting-fade"`
}

// DefaultConfig returns the layout of the demo header.
func DefaultConfig() Config {
	const (
		maxHeaderHeight = 560
		minHeaderHeight = 80
		maxImageHeight  = 320
		minImageHeight  = 80
	)
	return Config{
		Collapsible:  track.Iv[float64](maxHeaderHeight, minHeaderHeight),
		Image:        track.Iv[float64](maxImageHeight, minImageHeight),
		LabelLead:    track.Iv[float64](300, 40),
		LabelTop:     track.Iv[float64](0, 0),
		MenuFade:     track.Iv[float64](maxHeaderHeight-80, maxImageHeight),
		GreetingFade: track.Iv[float64](280, 200),
	}
}

// Validate reports whether all values are finite and the image range lies
// within the header range.
func (conf Config) Validate() error {
	ivs := []struct {
		name string
		iv   track.Interval[float64]
	}{
		{"collapsible", conf.Collapsible},
		{"image", conf.Image},
		{"label-lead", conf.LabelLead},
		{"label-top", conf.LabelTop},
		{"menu-fade", conf.MenuFade},
		{"greeting-fade", conf.GreetingFade},
	}
	for _, e := range ivs {
		for _, v := range []float64{e.iv.Start, e.iv.Finish} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: %v is not a finite number", e.name, v)
			}
		}
	}
	if !conf.Collapsible.Contains(conf.Image.Start) || !conf.Collapsible.Contains(conf.Image.Finish) {
		return fmt.Errorf("image range %v exceeds collapsible range %v", conf.Image, conf.Collapsible)
	}
	return nil
}

// ParseConfig parses an HJSON document. Ranges missing from the document keep
// their values from [DefaultConfig].
func ParseConfig(data []byte) (Config, error) {
	conf := DefaultConfig()
	var mdat map[string]interface{}
	if err := hjson.Unmarshal(data, &mdat); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	b, err := json.Marshal(mdat)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := json.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return conf, nil
}

// LoadConfig reads and parses the HJSON file at path.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return ParseConfig(b)
}
