package game

// MenuOption is an entry of the main menu.
type MenuOption int

const (
	MenuPlay MenuOption = iota
	MenuHowTo
	MenuSettings
	MenuCredits
	MenuQuit
	numMenuOptions
)

type menuEntry struct {
	key   string
	label string
	event Event
}

var menuEntries = [numMenuOptions]menuEntry{
	MenuPlay:     {key: "1", label: "Play", event: EventSelectPlay},
	MenuHowTo:    {key: "2", label: "How to Play?", event: EventSelectHowTo},
	MenuSettings: {key: "3", label: "Settings", event: EventSelectSettings},
	MenuCredits:  {key: "4", label: "Credits", event: EventSelectCredits},
	MenuQuit:     {key: "5", label: "Quit", event: EventSelectQuit},
}

// MenuOptions returns the menu in display order.
func MenuOptions() []MenuOption {
	out := make([]MenuOption, numMenuOptions)
	for i := range out {
		out[i] = MenuOption(i)
	}
	return out
}

// Valid reports whether o is a known menu entry.
func (o MenuOption) Valid() bool {
	return o >= 0 && o < numMenuOptions
}

// Key is the hotkey that selects the option.
func (o MenuOption) Key() string {
	if !o.Valid() {
		return ""
	}
	return menuEntries[o].key
}

// Label is the text shown in the menu.
func (o MenuOption) Label() string {
	if !o.Valid() {
		return ""
	}
	return menuEntries[o].label
}

// Event is what choosing the option emits.
func (o MenuOption) Event() Event {
	if !o.Valid() {
		return eventInvalid
	}
	return menuEntries[o].event
}

func (o MenuOption) String() string {
	return o.Label()
}
