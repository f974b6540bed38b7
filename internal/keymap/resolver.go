package keymap

import (
	"slices"
	"strings"
)

// Command is a resolved key press.
type Command struct {
	Action Action
	// Location is the zero-based location a digit key plays, or -1.
	Location int
}

// Select reports whether the command plays a location directly.
func (c Command) Select() bool {
	return c.Location >= 0
}

// unbound is returned for keys without a binding.
var unbound = Command{Location: -1}

// digitOrder lists the select actions in location order.
var digitOrder = []Action{
	ActionSelect1, ActionSelect2, ActionSelect3,
	ActionSelect4, ActionSelect5, ActionSelect6,
	ActionSelect7, ActionSelect8, ActionSelect9,
}

// Resolver turns key strings into commands and actions into help labels.
type Resolver struct {
	commands map[string]Command
	labels   map[Action]string
}

// NewResolver creates a resolver from bindings. When an action is bound in
// several places, the first binding provides its help label.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		commands: make(map[string]Command),
		labels:   make(map[Action]string),
	}
	for _, b := range bindings {
		cmd := Command{Action: b.Action, Location: slices.Index(digitOrder, b.Action)}
		for _, key := range b.Keys {
			r.commands[key] = cmd
		}
		if _, ok := r.labels[b.Action]; !ok {
			r.labels[b.Action] = label(b.Keys)
		}
	}
	return r
}

// Resolve returns the command bound to key. Unbound keys give an empty
// action and no location.
func (r *Resolver) Resolve(key string) Command {
	if cmd, ok := r.commands[key]; ok {
		return cmd
	}
	return unbound
}

// Label returns the keys bound to action as help shows them, e.g. "n/right".
func (r *Resolver) Label(action Action) string {
	return r.labels[action]
}

func label(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}
	return strings.Join(shown, "/")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
