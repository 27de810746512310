package core

import "testing"

func TestCharNormalization(t *testing.T) {
	tests := []struct {
		name     string
		in       rune
		action   Action
		expected rune
	}{
		{"lowercase letter", 'a', ActionChar, 'A'},
		{"uppercase letter", 'Z', ActionChar, 'Z'},
		{"digit", '7', ActionChar, '7'},
		{"space", ' ', ActionChar, ' '},
		{"punctuation rejected", '!', ActionNone, 0},
		{"unicode rejected", 'é', ActionNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Char(tc.in)
			if got.Action != tc.action {
				t.Errorf("Char(%q).Action = %v, expected %v", tc.in, got.Action, tc.action)
			}
			if got.Rune != tc.expected {
				t.Errorf("Char(%q).Rune = %q, expected %q", tc.in, got.Rune, tc.expected)
			}
		})
	}
}

func TestActionIsMovement(t *testing.T) {
	movement := []Action{ActionLeft, ActionRight, ActionSoftDrop, ActionRotate, ActionHardDrop}
	for _, a := range movement {
		if !a.IsMovement() {
			t.Errorf("%v.IsMovement() = false, expected true", a)
		}
	}

	other := []Action{ActionNone, ActionPause, ActionBack, ActionConfirm, ActionErase, ActionChar, ActionQuit}
	for _, a := range other {
		if a.IsMovement() {
			t.Errorf("%v.IsMovement() = true, expected false", a)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionHardDrop.String() != "HardDrop" {
		t.Errorf("ActionHardDrop.String() = %q", ActionHardDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
