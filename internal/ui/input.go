package ui

import "gioui.org/io/pointer"

// Action is what a completed click asks of the game.
type Action uint8

const (
	ActionNone Action = iota
	ActionReveal
	ActionFlag
)

var actionNames = map[Action]string{
	ActionNone:   "None",
	ActionReveal: "Reveal",
	ActionFlag:   "Flag",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Action(?)"
}

// clickTracker turns pointer press/release pairs into board actions. Only a
// button that was seen pressed and is now released triggers, so holding a
// button down across frames yields one action.
type clickTracker struct {
	pressed pointer.Buttons
}

// Update feeds one pointer event and reports the action it completes.
func (t *clickTracker) Update(ev pointer.Event) Action {
	switch ev.Kind {
	case pointer.Press:
		t.pressed |= ev.Buttons
	case pointer.Release:
		if t.pressed == 0 {
			return ActionNone
		}
		// Release events carry the buttons still held.
		released := t.pressed &^ ev.Buttons
		if released == 0 {
			released = t.pressed
		}
		t.pressed &^= released
		switch {
		case released.Contain(pointer.ButtonPrimary):
			return ActionReveal
		case released.Contain(pointer.ButtonSecondary):
			return ActionFlag
		}
	case pointer.Cancel:
		t.pressed = 0
	}
	return ActionNone
}
