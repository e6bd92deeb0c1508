package textpage

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	view := Render("Credits", "Questions by The Trivia API\n", 80)

	if !strings.Contains(view, "Credits") {
		t.Error("heading should be visible")
	}
	if !strings.Contains(view, "The Trivia API") {
		t.Error("body should be visible")
	}
}
