// Package ui provides the user interface components for the aegis TUI.
//
// # Overview
//
// The ui package implements the visual components of aegis using the Bubble Tea
// framework and Lipgloss styling library. Components render state they are
// handed; the drive's rules live in the view, layout and chat packages.
//
// # Layout System
//
// On a desktop-class terminal the layout is three columns:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├────────────┬──────────────────────┬─────────────────┤
//	│            │                      │                 │
//	│  Explorer  │        Chat          │    Preview      │
//	│  (~1/4)    │                      │    (1/3, when   │
//	│            │                      │     open)       │
//	├────────────┴──────────────────────┴─────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// On a mobile-class terminal chat fills the width and the explorer or the
// preview slides in as a drawer on the left, with the chat dimmed behind it.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Application title, active filter and viewport class on a gradient.
//
// Footer: Context-aware keyboard shortcuts and transient flash messages.
//
// Explorer: Filter tabs, search line and the visible entries as a list or grid.
//
// Chat: Transcript viewport with markdown rendering and a textarea for input.
//
// Preview: Visualizer and Metadata tabs for the selected file.
//
// Login: The access card shown while the session is locked.
//
// Modal: Popup dialogs whose states live in the modals subpackage.
//
// # Styles
//
// Styles are declared in styles.go and assigned from the active Theme in
// theme.go. Switching themes regenerates every style, including the modal
// palette.
package ui
