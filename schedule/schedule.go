// Package schedule holds the medication slot state machine. Reduce is the only
// way a slot list changes; it never mutates its input.
package schedule

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	StatusTaken  = "taken"
	StatusMissed = "missed"

	ActionToggleOptions = "toggleOptions"
	ActionUpdateStatus  = "updateStatus"
)

var (
	ErrUnknownAction  = errors.New("schedule: unknown action")
	ErrSlotIDRequired = errors.New("schedule: slot id required")
	ErrInvalidStatus  = errors.New("schedule: status must be taken or missed")
)

type Pill struct {
	Name     string `json:"name" yaml:"name"`
	DotColor string `json:"dotColor" yaml:"dotColor"`
}

type Slot struct {
	ID            string   `json:"id" yaml:"id"`
	Time          string   `json:"time" yaml:"time"`
	Title         string   `json:"title" yaml:"title"`
	Pills         []Pill   `json:"pills" yaml:"pills"`
	Completed     bool     `json:"completed" yaml:"completed"`
	Missed        bool     `json:"missed" yaml:"missed"`
	ShowOptions   bool     `json:"showOptions" yaml:"showOptions"`
	MedicationIDs []string `json:"medicationIds,omitempty" yaml:"medicationIds,omitempty"`
}

type State []Slot

type Action struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

func ToggleOptions(id string) Action {
	return Action{Type: ActionToggleOptions, ID: id}
}

func UpdateStatus(id string, status string) Action {
	return Action{Type: ActionUpdateStatus, ID: id, Status: status}
}

func (a Action) Validate() error {
	if a.ID == "" {
		return ErrSlotIDRequired
	}
	switch a.Type {
	case ActionToggleOptions:
		return nil
	case ActionUpdateStatus:
		if a.Status != StatusTaken && a.Status != StatusMissed {
			return ErrInvalidStatus
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

/*
* toggleOptions: close the slot if open, else open it and close every other
* updateStatus: set completed and missed together on the target, close its options
* Invalid actions and unknown ids return an unchanged copy
 */
func Reduce(state State, action Action) State {
	next := state.Clone()
	if action.Validate() != nil {
		return next
	}

	switch action.Type {
	case ActionToggleOptions:
		idx := next.index(action.ID)
		if idx < 0 {
			return next
		}
		open := !next[idx].ShowOptions
		for i := range next {
			next[i].ShowOptions = false
		}
		next[idx].ShowOptions = open
	case ActionUpdateStatus:
		idx := next.index(action.ID)
		if idx < 0 {
			return next
		}
		next[idx].Completed = action.Status == StatusTaken
		next[idx].Missed = action.Status == StatusMissed
		next[idx].ShowOptions = false
	}
	return next
}

func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for i, slot := range s {
		slot.Pills = append([]Pill(nil), slot.Pills...)
		slot.MedicationIDs = append([]string(nil), slot.MedicationIDs...)
		out[i] = slot
	}
	return out
}

func (s State) index(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the slot with the given id.
func (s State) Find(id string) (Slot, bool) {
	if i := s.index(id); i >= 0 {
		return s[i], true
	}
	return Slot{}, false
}

//go:embed defaults.yaml
var defaultsYAML []byte

var loadDefaults = sync.OnceValues(func() (State, error) {
	var doc struct {
		Slots State `yaml:"slots"`
	}
	if err := yaml.Unmarshal(defaultsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse default schedule: %w", err)
	}
	return doc.Slots, nil
})

// Default returns the starter schedule shown before any medication is added.
func Default() State {
	state, err := loadDefaults()
	if err != nil {
		panic(err)
	}
	return state.Clone()
}
