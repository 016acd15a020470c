package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StateList is the "from" side of a transition. On the wire it is either a
// single state string or an array of state strings; in memory it is always
// a slice.
type StateList []WorkflowState

// UnmarshalJSON accepts both "DRAFT" and ["DRAFT", "NEEDS_INFO"].
func (s *StateList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StateList{WorkflowState(single)}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("transition from: expected state or state array: %w", err)
	}
	out := make(StateList, len(many))
	for i, v := range many {
		out[i] = WorkflowState(v)
	}
	*s = out
	return nil
}

// MarshalJSON preserves the compact single-state form when possible.
func (s StateList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(string(s[0]))
	}
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return json.Marshal(out)
}

// UnmarshalYAML accepts both scalar and sequence forms.
func (s *StateList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*s = StateList{WorkflowState(single)}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		out := make(StateList, len(many))
		for i, v := range many {
			out[i] = WorkflowState(v)
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("transition from: expected state or state array, got yaml kind %d", node.Kind)
	}
}
