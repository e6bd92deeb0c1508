package title

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ █████╗ ██╗████████╗
 ██║    ██║██╔══██╗██║╚══██╔══╝
 ██║ █╗ ██║███████║██║   ██║
 ██║███╗██║██╔══██║██║   ██║
 ╚███╔███╔╝██║  ██║██║   ██║
  ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝   ╚═╝
 ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗
    ██║   ██████╔╝██║██║   ██║██║███████║
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "W A I T · T R I V I A"

// bannerMinWidth is the narrowest terminal the block letters fit in.
const bannerMinWidth = 44

// RenderBanner returns the game banner in the marquee color. Uses a compact
// fallback for terminals narrower than the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(strings.TrimPrefix(bannerArt, "\n"))
}
