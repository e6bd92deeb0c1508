package title

import (
	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// Render draws the title screen: the banner, the game name and the tagline
// inside the cabinet frame.
func Render(name, tagline string, width int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	if name != "" {
		sections = append(sections, theme.Title.Render(name))
	}
	if tagline != "" {
		sections = append(sections, theme.Tagline.Render(tagline))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.CabinetFrame(content, min(width, 64))
}
