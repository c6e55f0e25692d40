// ABOUTME: Theme service picks a brochure color scheme from environment keywords
// ABOUTME: Pure keyword counting over merged text, defaulting to the urban scheme

package services

import (
	"strings"

	"brochure-app-api/core/domain"
	"brochure-app-api/core/interfaces"
)

// themeProfile pairs a color scheme with the environment keywords that
// select it.
type themeProfile struct {
	keywords []string
	scheme   domain.ColorScheme
}

// themeProfiles is walked in order; the highest keyword hit count wins and
// earlier profiles win ties.
var themeProfiles = []themeProfile{
	{
		keywords: []string{"beach", "coast", "ocean", "island", "sea", "tropical", "bay", "reef"},
		scheme: domain.ColorScheme{
			Name:       "coastal",
			Primary:    "#0277bd",
			Secondary:  "#4fc3f7",
			Accent:     "#ffb74d",
			Background: "#e1f5fe",
			Text:       "#01579b",
			Highlights: []string{"#ff8a65", "#fff176"},
		},
	},
	{
		keywords: []string{"mountain", "alpine", "ski", "peak", "snow", "glacier", "highland", "summit"},
		scheme: domain.ColorScheme{
			Name:       "alpine",
			Primary:    "#37474f",
			Secondary:  "#78909c",
			Accent:     "#81d4fa",
			Background: "#eceff1",
			Text:       "#263238",
			Highlights: []string{"#b0bec5", "#e1f5fe"},
		},
	},
	{
		keywords: []string{"desert", "dune", "arid", "canyon", "oasis", "sand"},
		scheme: domain.ColorScheme{
			Name:       "desert",
			Primary:    "#bf360c",
			Secondary:  "#ff8a65",
			Accent:     "#ffd54f",
			Background: "#fff3e0",
			Text:       "#3e2723",
			Highlights: []string{"#ffab91", "#ffe082"},
		},
	},
	{
		keywords: []string{"forest", "jungle", "rainforest", "woodland", "valley", "garden", "nature"},
		scheme: domain.ColorScheme{
			Name:       "forest",
			Primary:    "#2e7d32",
			Secondary:  "#81c784",
			Accent:     "#ffca28",
			Background: "#e8f5e9",
			Text:       "#1b5e20",
			Highlights: []string{"#a5d6a7", "#fff59d"},
		},
	},
}

// urbanScheme is the fallback when no environment dominates.
var urbanScheme = domain.ColorScheme{
	Name:       "urban",
	Primary:    "#283593",
	Secondary:  "#5c6bc0",
	Accent:     "#ff7043",
	Background: "#e8eaf6",
	Text:       "#1a237e",
	Highlights: []string{"#9fa8da", "#ffab91"},
}

// ThemeService selects a brochure color scheme from the fused content.
type ThemeService struct {
	deps interfaces.Dependencies
}

// NewThemeService creates a new theme service.
func NewThemeService(deps interfaces.Dependencies) *ThemeService {
	return &ThemeService{deps: deps}
}

// SelectScheme implements interfaces.ThemeSelector. It counts environment
// keyword occurrences over the location name and merged text and returns
// the best-matching scheme, urban when nothing matches.
func (s *ThemeService) SelectScheme(location, environmentText string) domain.ColorScheme {
	text := strings.ToLower(location + " " + environmentText)

	best := urbanScheme
	bestHits := 0

	for _, profile := range themeProfiles {
		hits := 0
		for _, kw := range profile.keywords {
			hits += strings.Count(text, kw)
		}
		if hits > bestHits {
			best = profile.scheme
			bestHits = hits
		}
	}

	s.deps.Logger.Debug("Selected brochure theme", map[string]interface{}{
		"location": location,
		"theme":    best.Name,
	})

	return best
}
