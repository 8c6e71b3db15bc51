// Package content holds the marketing copy rendered into the page:
// service cards, process steps, and impact stats. A YAML file can
// override the built-in defaults so copy edits don't need a rebuild.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ProcessStep struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Content struct {
	Tagline  string        `yaml:"tagline"`
	Services []Service     `yaml:"services"`
	Steps    []ProcessStep `yaml:"steps"`
	Stats    []Stat        `yaml:"stats"`
}

// Default returns the built-in marketing copy.
func Default() *Content {
	return &Content{
		Tagline: "Sell your scrap from your doorstep. Best rates, instant payment, zero hassle.",
		Services: []Service{
			{Icon: "🚚", Title: "Doorstep Pickup", Description: "Schedule a pickup and a verified Kabaadiwala partner comes to you - no hauling, no waiting."},
			{Icon: "⚖️", Title: "Fair Weighing", Description: "Digital scales at your door. You see the weight, you see the rate, before anything leaves your house."},
			{Icon: "💸", Title: "Instant Payment", Description: "Cash or UPI on the spot, the moment your scrap is weighed."},
			{Icon: "🌱", Title: "Responsible Recycling", Description: "Everything we collect goes to authorized recyclers, not landfills."},
		},
		Steps: []ProcessStep{
			{Title: "Schedule a pickup", Description: "Fill the form below or chat with us. Pick a day that suits you."},
			{Title: "We collect and weigh", Description: "Our partner sorts and weighs your scrap on a digital scale in front of you."},
			{Title: "Get paid instantly", Description: "Payment lands in your hand before our partner leaves."},
		},
		Stats: []Stat{
			{Value: "10K+", Label: "Pickups completed"},
			{Value: "50+", Label: "Kabaadiwala partners"},
			{Value: "120T", Label: "Scrap recycled"},
		},
	}
}

// Load returns the defaults, overridden by the YAML file at path when
// one is configured.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing content file %s: %w", path, err)
	}
	return c, nil
}
