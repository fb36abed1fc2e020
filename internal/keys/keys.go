// Package keys holds the key strings aegis matches against, taken from
// tea.KeyPressMsg{...}.String() so they always agree with what Bubble Tea
// reports at runtime.
//
// Printable single characters ("/", "f", "g", "?") are matched literally and
// are not listed here.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Editing and focus
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	AltEnter  = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String() // "alt+enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Drive actions
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c" quit
	CtrlB = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String() // "ctrl+b" explorer drawer
	CtrlP = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String() // "ctrl+p" preview panel
	CtrlO = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o" open chat suggestion
	CtrlU = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u" upload
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l" lock
	CtrlK = (tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl}).String() // "ctrl+k" quick open
	CtrlX = (tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}).String() // "ctrl+x" dismiss notice
)
