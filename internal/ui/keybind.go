package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leader is how sequences spell the space bar: "SPC j a" is space, j, a.
const leader = "SPC"

// binding is one entry in the registry. modes limits where its hint shows;
// empty means every mode.
type binding struct {
	cmd   tea.Cmd
	label string
	modes []AppMode
}

func (b binding) shownIn(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Hint is one entry of the leader help bar.
type Hint struct {
	Key   string
	Label string
}

// KeybindRegistry maps key sequences ("q", "ctrl+c", "SPC x", "SPC j a") to
// commands. Submenus are prefixes like "SPC j" that only continue a sequence.
type KeybindRegistry struct {
	bindings map[string]binding
	menus    map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		menus:    make(map[string]string),
	}
}

// Bind registers seq without a help label. Used for the plain single keys.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd}
}

// BindHint registers seq with the label shown in the leader help bar. When
// modes are given the hint is hidden outside them; the key still works.
func (r *KeybindRegistry) BindHint(seq, label string, cmd tea.Cmd, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, label: label, modes: modes}
}

// Submenu names the prefix seq in the help bar, e.g. "SPC j" -> "Jenis".
func (r *KeybindRegistry) Submenu(seq, label string) {
	r.menus[normalizeSeq(seq)] = label
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// Continues reports whether some longer binding starts with seq.
func (r *KeybindRegistry) Continues(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints lists the keys that may follow seq in mode, sorted by key. A key
// that opens a submenu shows the submenu's label.
func (r *KeybindRegistry) Hints(seq string, mode AppMode) []Hint {
	if seq == "" {
		seq = leader
	}
	prefix := normalizeSeq(seq) + " "
	labels := make(map[string]string)
	for k, b := range r.bindings {
		if b.cmd == nil || !b.shownIn(mode) || !strings.HasPrefix(k, prefix) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(k, prefix))[0]
		sub := prefix + next
		switch {
		case r.Continues(sub):
			if label, ok := r.menus[sub]; ok {
				labels[next] = label
			} else {
				labels[next] = next + "…"
			}
		case b.label != "":
			labels[next] = b.label
		default:
			labels[next] = k
		}
	}

	out := make([]Hint, 0, len(labels))
	for k, label := range labels {
		out = append(out, Hint{Key: k, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// normalizeSeq spells the space bar as SPC and collapses whitespace.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea.KeyMsg string to a sequence part. Bubble Tea
// reports the space bar as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leader
	}
	return s
}

// KeyHandler tracks a leader sequence in progress and resolves keys against
// the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
	pending  []string
}

// NewKeyHandler creates a handler with SPC as the leader key.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Waiting reports whether a leader sequence is in progress.
func (h *KeyHandler) Waiting() bool {
	return len(h.pending) > 0
}

// Prefix returns the sequence typed so far, e.g. "SPC j".
func (h *KeyHandler) Prefix() string {
	return strings.Join(h.pending, " ")
}

func (h *KeyHandler) reset() {
	h.pending = nil
}

// Handle resolves one key press. consumed is false when the key is not a
// binding and should go to the focused pane.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if h.Waiting() {
		if part == "esc" {
			h.reset()
			return true, nil
		}
		h.pending = append(h.pending, part)
		seq := h.Prefix()
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.Continues(seq) {
			// Unknown key ends the sequence without falling through.
			h.reset()
		}
		return true, nil
	}

	if part == leader {
		h.pending = []string{leader}
		return true, nil
	}
	if c := h.Registry.Lookup(part); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap adapts the pending leader sequence to help.KeyMap so the hints can
// be drawn by bubbles/help.
type KeyMap struct {
	handler *KeyHandler
	mode    AppMode
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap creates a KeyMap for the handler's current sequence in mode.
func NewKeyMap(h *KeyHandler, mode AppMode) KeyMap {
	return KeyMap{handler: h, mode: mode}
}

// ShortHelp implements help.KeyMap. Esc is always listed last.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.Hints(km.handler.Prefix(), km.mode)
	if len(hints) == 0 {
		return nil
	}
	out := make([]key.Binding, 0, len(hints)+1)
	for _, h := range hints {
		out = append(out, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Label)))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "batal")))
}

// FullHelp implements help.KeyMap. The leader bar has a single row.
func (km KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
