// Package tui implements game.UI on top of inline Bubble Tea prompts and
// lipgloss-rendered screens.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"golang.org/x/term"

	"github.com/berke-bakar/smart-byte-quiz/internal/catalog"
	"github.com/berke-bakar/smart-byte-quiz/internal/game"
	"github.com/berke-bakar/smart-byte-quiz/internal/screens/question"
	"github.com/berke-bakar/smart-byte-quiz/internal/screens/result"
	"github.com/berke-bakar/smart-byte-quiz/internal/screens/textpage"
	"github.com/berke-bakar/smart-byte-quiz/internal/screens/title"
	"github.com/berke-bakar/smart-byte-quiz/internal/session"
	"github.com/berke-bakar/smart-byte-quiz/internal/store"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/components"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/layout"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/prompt"
	"github.com/berke-bakar/smart-byte-quiz/internal/ui/theme"
)

// Prompt texts.
const (
	MenuPrompt       = "What do you want to do?"
	DifficultyPrompt = "Select question difficulties:"
	CategoryPrompt   = "Select question categories:"
	LimitPrompt      = "Number of questions per game? (1-50)"
	PlayAgainPrompt  = "Play again?"
)

// Options selects the terminal. Nil fields mean stdin and stdout.
type Options struct {
	Input  io.Reader
	Output io.Writer

	// Width overrides terminal size detection when non-zero.
	Width int
}

// Terminal is the interactive game.UI.
type Terminal struct {
	out     io.Writer
	prompts prompt.Options
	catalog *catalog.Catalog
	width   int
}

var _ game.UI = (*Terminal)(nil)

// New creates a Terminal. cat supplies the labels for tags and the game name.
func New(cat *catalog.Catalog, opts Options) *Terminal {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		out:     out,
		prompts: prompt.Options{Input: opts.Input, Output: opts.Output},
		catalog: cat,
		width:   opts.Width,
	}
}

// Width returns the usable terminal width.
func (t *Terminal) Width() int {
	if t.width > 0 {
		return t.width
	}
	if w, ok := terminalWidth(t.out); ok {
		return w
	}
	return layout.DefaultWidth
}

func terminalWidth(w io.Writer) (int, bool) {
	fder, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(fder.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// interrupted translates a prompt abort into the controller's quit signal.
func interrupted(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return game.ErrInterrupted
	}
	return err
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.out, s)
}

func (t *Terminal) ShowTitle(ctx context.Context, name, tagline string) error {
	if ctx.Err() != nil {
		return game.ErrInterrupted
	}
	t.println(title.Render(name, tagline, t.Width()))
	return nil
}

func (t *Terminal) ChooseMenu(ctx context.Context, options []game.MenuOption) (game.MenuOption, error) {
	items := make([]components.MenuItem, len(options))
	for i, opt := range options {
		items[i] = components.MenuItem{Key: opt.Key(), Label: opt.Label()}
	}
	idx, err := prompt.Select(ctx, t.prompts, MenuPrompt, items)
	if err != nil {
		return 0, interrupted(err)
	}
	return options[idx], nil
}

func (t *Terminal) EditSettings(ctx context.Context, current store.Settings, cat *catalog.Catalog) (store.Settings, bool, error) {
	edited := current

	difficulties, ok, err := t.pickTags(ctx, DifficultyPrompt, cat.Difficulties, current.Difficulties)
	if err != nil || !ok {
		return current, false, err
	}
	edited.Difficulties = difficulties

	categories, ok, err := t.pickTags(ctx, CategoryPrompt, cat.Categories, current.Categories)
	if err != nil || !ok {
		return current, false, err
	}
	edited.Categories = categories

	value, ok, err := prompt.Input(ctx, t.prompts, prompt.InputConfig{
		Label:       LimitPrompt,
		Initial:     strconv.Itoa(current.Limit),
		NumericOnly: true,
		MaxLength:   2,
		Validate: func(s string) error {
			_, err := store.ParseLimit(s)
			return err
		},
	})
	if err != nil || !ok {
		return current, false, interrupted(err)
	}
	limit, err := store.ParseLimit(value)
	if err != nil {
		return current, false, err
	}
	edited.Limit = limit

	return edited, true, nil
}

// pickTags shows a checklist over tags with selected pre-ticked and returns
// the ticked ids.
func (t *Terminal) pickTags(ctx context.Context, label string, tags []catalog.Tag, selected []string) ([]string, bool, error) {
	checked, ok, err := prompt.Checklist(ctx, t.prompts, label, tagItems(tags, selected))
	if err != nil || !ok {
		return nil, false, interrupted(err)
	}
	return tagIDs(tags, checked), true, nil
}

func tagItems(tags []catalog.Tag, selected []string) []components.ChecklistItem {
	items := make([]components.ChecklistItem, len(tags))
	for i, tag := range tags {
		items[i] = components.ChecklistItem{
			Label:   tag.Label,
			Checked: slices.Contains(selected, tag.ID),
		}
	}
	return items
}

func tagIDs(tags []catalog.Tag, checked []int) []string {
	ids := make([]string, 0, len(checked))
	for _, i := range checked {
		ids = append(ids, tags[i].ID)
	}
	return ids
}

func (t *Terminal) ShowText(ctx context.Context, heading, body string) error {
	return interrupted(prompt.Pager(ctx, t.prompts, textpage.Render(heading, body, t.Width())))
}

func (t *Terminal) AskQuestion(ctx context.Context, p session.Prompt) (string, error) {
	header := question.RenderHeader(p, question.Labels{
		App:        t.catalog.Title,
		Category:   t.catalog.CategoryLabel(p.Category),
		Difficulty: t.catalog.DifficultyLabel(p.Difficulty),
	}, t.Width())

	answer, err := prompt.Question(ctx, t.prompts, header, p.Text, p.Choices)
	if err != nil {
		return "", interrupted(err)
	}
	return answer, nil
}

func (t *Terminal) ShowResult(ctx context.Context, v game.ResultView) (bool, error) {
	t.println(result.Render(v, t.Width()))
	again, err := prompt.Confirm(ctx, t.prompts, PlayAgainPrompt, true)
	if err != nil {
		return false, interrupted(err)
	}
	return again, nil
}

func (t *Terminal) Notify(msg string) {
	t.println(theme.Notice.Render("» " + msg))
}
