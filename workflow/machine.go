// Package workflow is the semantic layer over an AppSpec's declared state
// machine. It answers queries about states, transitions, and role gates;
// it never executes a transition itself. The generated app's runtime must
// enforce exactly the rules this package describes.
package workflow

import (
	"github.com/carefoundry/appspec/model"
)

// Edge is a fully expanded transition: exactly one source state, one target
// state, and the roles permitted to drive it.
type Edge struct {
	From  model.WorkflowState
	To    model.WorkflowState
	Roles []model.Role
}

// Machine is an immutable view over a declared workflow. Safe for
// concurrent use; it holds no mutable state after construction.
type Machine struct {
	states  []model.WorkflowState
	set     map[model.WorkflowState]bool
	initial model.WorkflowState
	edges   []Edge
}

// NewMachine builds a Machine from a workflow declaration, expanding
// multi-source transitions into individual edges in declaration order.
func NewMachine(w model.Workflow) *Machine {
	m := &Machine{
		states:  append([]model.WorkflowState(nil), w.States...),
		set:     make(map[model.WorkflowState]bool, len(w.States)),
		initial: w.InitialState,
	}
	for _, s := range w.States {
		m.set[s] = true
	}
	for _, t := range w.Transitions {
		for _, from := range t.From {
			m.edges = append(m.edges, Edge{
				From:  from,
				To:    t.To,
				Roles: append([]model.Role(nil), t.AllowedRoles...),
			})
		}
	}
	return m
}

// States returns the declared states in declaration order.
func (m *Machine) States() []model.WorkflowState {
	return append([]model.WorkflowState(nil), m.states...)
}

// Initial returns the declared initial state.
func (m *Machine) Initial() model.WorkflowState {
	return m.initial
}

// HasState reports whether s is a declared state.
func (m *Machine) HasState(s model.WorkflowState) bool {
	return m.set[s]
}

// Edges returns every expanded transition edge in declaration order.
func (m *Machine) Edges() []Edge {
	return append([]Edge(nil), m.edges...)
}

// TransitionsFrom returns the edges leaving state s, in declaration order.
func (m *Machine) TransitionsFrom(s model.WorkflowState) []Edge {
	var out []Edge
	for _, e := range m.edges {
		if e.From == s {
			out = append(out, e)
		}
	}
	return out
}

// CanTransition reports whether role may move a record from one state to
// another. An edge with an empty role gate permits no role.
func (m *Machine) CanTransition(from, to model.WorkflowState, role model.Role) bool {
	for _, e := range m.edges {
		if e.From != from || e.To != to {
			continue
		}
		for _, r := range e.Roles {
			if r == role {
				return true
			}
		}
	}
	return false
}

// Roles returns the role gate for the from/to edge, or nil when no such
// edge exists.
func (m *Machine) Roles(from, to model.WorkflowState) []model.Role {
	for _, e := range m.edges {
		if e.From == from && e.To == to {
			return append([]model.Role(nil), e.Roles...)
		}
	}
	return nil
}

// IsPersistedState reports whether s may appear as a stored record's
// status. DRAFT is client-side only: it is the initial state of an
// unsubmitted record and must never be written to storage.
func IsPersistedState(s model.WorkflowState) bool {
	return s != model.StateDraft
}
