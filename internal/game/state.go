package game

// State is one screen of the game. Exactly one is active at a time.
type State int

const (
	stateInvalid State = iota
	StateTitle
	StateMenu
	StateSettings
	StateHowTo
	StatePlay
	StateResult
	StateCredits
	StateQuit
	numStates
)

var stateNames = [numStates]string{
	stateInvalid:  "Invalid",
	StateTitle:    "Title",
	StateMenu:     "Menu",
	StateSettings: "Settings",
	StateHowTo:    "HowTo",
	StatePlay:     "Play",
	StateResult:   "Result",
	StateCredits:  "Credits",
	StateQuit:     "Quit",
}

func (s State) String() string {
	if s < 0 || s >= numStates {
		return stateNames[stateInvalid]
	}
	return stateNames[s]
}

// Valid reports whether s is one of the playable states.
func (s State) Valid() bool {
	return s > stateInvalid && s < numStates
}

// AllStates returns every valid state in declaration order.
func AllStates() []State {
	out := make([]State, 0, numStates-1)
	for s := StateTitle; s < numStates; s++ {
		out = append(out, s)
	}
	return out
}

// Event is the outcome of a state's action.
type Event int

const (
	eventInvalid Event = iota
	EventDone
	EventSelectPlay
	EventSelectHowTo
	EventSelectSettings
	EventSelectCredits
	EventSelectQuit
	EventNoQuestions
	EventSessionComplete
	EventPlayAgain
	EventDecline
	EventInterrupt
	numEvents
)

var eventNames = [numEvents]string{
	eventInvalid:         "Invalid",
	EventDone:            "Done",
	EventSelectPlay:      "SelectPlay",
	EventSelectHowTo:     "SelectHowTo",
	EventSelectSettings:  "SelectSettings",
	EventSelectCredits:   "SelectCredits",
	EventSelectQuit:      "SelectQuit",
	EventNoQuestions:     "NoQuestions",
	EventSessionComplete: "SessionComplete",
	EventPlayAgain:       "PlayAgain",
	EventDecline:         "Decline",
	EventInterrupt:       "Interrupt",
}

func (e Event) String() string {
	if e < 0 || e >= numEvents {
		return eventNames[eventInvalid]
	}
	return eventNames[e]
}

// AllEvents returns every valid event in declaration order.
func AllEvents() []Event {
	out := make([]Event, 0, numEvents-1)
	for e := EventDone; e < numEvents; e++ {
		out = append(out, e)
	}
	return out
}

type edge struct {
	from State
	on   Event
}

var transitions = map[edge]State{
	{StateTitle, EventDone}: StateMenu,

	{StateMenu, EventSelectPlay}:     StatePlay,
	{StateMenu, EventSelectHowTo}:    StateHowTo,
	{StateMenu, EventSelectSettings}: StateSettings,
	{StateMenu, EventSelectCredits}:  StateCredits,
	{StateMenu, EventSelectQuit}:     StateQuit,

	{StateSettings, EventDone}: StateTitle,
	{StateHowTo, EventDone}:    StateTitle,
	{StateCredits, EventDone}:  StateTitle,

	{StatePlay, EventNoQuestions}:     StateTitle,
	{StatePlay, EventSessionComplete}: StateResult,

	{StateResult, EventPlayAgain}: StatePlay,
	{StateResult, EventDecline}:   StateTitle,
}

// Transition returns the state that follows s when e happens. It is total:
// Interrupt always leads to Quit, Quit is terminal, and any pair without an
// explicit rule falls back to Title.
func Transition(s State, e Event) State {
	if s == StateQuit || e == EventInterrupt {
		return StateQuit
	}
	if next, ok := transitions[edge{s, e}]; ok {
		return next
	}
	return StateTitle
}
