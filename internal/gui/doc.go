// Package gui is the fyne desktop shell of kidcards. It renders the view
// models pushed by the navigation engine and forwards every tap, swipe and
// keystroke back to it; no card or progress state lives here.
package gui
