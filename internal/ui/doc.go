// Package ui is the Bubble Tea front end of gudang.
//
// Core abstractions:
//   - View: a screen region or modal with its own Init/Update/View (Elm-style)
//   - AppModel: root state; its adapter's Update is the only place the
//     catalog store changes and the only place remote mutations start
//   - OverlayStack: modals (forms, confirmations, alerts) on top of the main screen
//   - FocusManager: Tab rotation across sidebar, item list and search box
//   - KeybindRegistry / KeyHandler: single keys plus SPC leader sequences
//
// Every successful mutation is followed by a full catalog refresh; list
// responses are tagged with a store generation so stale ones are dropped.
package ui
