package places

import "fmt"

type colorScheme struct {
	start string
	end   string
	icon  string
}

var colorSchemes = map[string]colorScheme{
	"Museum":     {"#667eea", "#764ba2", "🏛️"},
	"Restaurant": {"#f093fb", "#f5576c", "🍽️"},
	"Park":       {"#4facfe", "#00f2fe", "🌳"},
	"Attraction": {"#43e97b", "#38f9d7", "🎭"},
	"Hotel":      {"#fa709a", "#fee140", "🏨"},
	"Beach":      {"#30cfd0", "#330867", "🏖️"},
	"Mountain":   {"#a8edea", "#fed6e3", "⛰️"},
	"Temple":     {"#ff9a9e", "#fecfef", "⛩️"},
	"Church":     {"#ffecd2", "#fcb69f", "⛪"},
}

// PlaceholderSVG renders a gradient placeholder image for a destination.
// Unknown categories fall back to the Attraction scheme.
func PlaceholderSVG(category, name string) string {
	scheme, ok := colorSchemes[category]
	if !ok {
		scheme = colorSchemes["Attraction"]
	}

	if runes := []rune(name); len(runes) > 40 {
		name = string(runes[:40]) + "..."
	}

	return fmt.Sprintf(`<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%s;stop-opacity:1" />
    </linearGradient>
    <filter id="shadow">
      <feDropShadow dx="0" dy="4" stdDeviation="8" flood-opacity="0.3"/>
    </filter>
    <pattern id="pattern" x="0" y="0" width="40" height="40" patternUnits="userSpaceOnUse">
      <circle cx="10" cy="10" r="2" fill="white"/>
      <circle cx="30" cy="30" r="2" fill="white"/>
    </pattern>
  </defs>
  <rect width="800" height="600" fill="url(#grad)"/>
  <circle cx="150" cy="100" r="80" fill="white" opacity="0.1"/>
  <circle cx="700" cy="500" r="120" fill="white" opacity="0.1"/>
  <circle cx="650" cy="150" r="60" fill="white" opacity="0.15"/>
  <circle cx="400" cy="250" r="100" fill="white" opacity="0.2" filter="url(#shadow)"/>
  <text x="400" y="290" font-size="80" text-anchor="middle" opacity="0.9">%s</text>
  <text x="400" y="380" font-family="system-ui, -apple-system, sans-serif" font-size="24" font-weight="600" fill="white" text-anchor="middle" opacity="0.95">%s</text>
  <text x="400" y="420" font-family="system-ui, -apple-system, sans-serif" font-size="18" fill="white" text-anchor="middle" opacity="0.8">%s</text>
  <rect width="800" height="600" fill="url(#pattern)" opacity="0.05"/>
</svg>`, scheme.start, scheme.end, scheme.icon, category, name)
}
