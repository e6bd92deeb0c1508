package question

import (
	"strings"
	"testing"

	"github.com/berke-bakar/smart-byte-quiz/internal/session"
)

func TestRenderHeader(t *testing.T) {
	p := session.Prompt{Number: 3, Total: 10, Text: "?", Choices: []string{"a", "b"}}
	view := RenderHeader(p, Labels{App: "Wait Trivia", Category: "Science", Difficulty: "Hard"}, 80)

	for _, want := range []string{"Wait Trivia", "Question 3", "3/10", "Science · Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderHeaderWithoutLabels(t *testing.T) {
	p := session.Prompt{Number: 1, Total: 1}
	view := RenderHeader(p, Labels{}, 40)

	if !strings.Contains(view, "Question 1") {
		t.Error("question number should be visible")
	}
	if strings.Contains(view, "·") {
		t.Error("no tag line expected without labels")
	}
}
