package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStateList_unmarshalJSON(t *testing.T) {
	var single Transition
	if err := json.Unmarshal([]byte(`{"from":"DRAFT","to":"SUBMITTED","allowedRoles":["PATIENT"]}`), &single); err != nil {
		t.Fatalf("Unmarshal single error = %v", err)
	}
	if len(single.From) != 1 || single.From[0] != StateDraft {
		t.Errorf("From = %v, want [DRAFT]", single.From)
	}

	var multi Transition
	if err := json.Unmarshal([]byte(`{"from":["SUBMITTED","NEEDS_INFO"],"to":"APPROVED","allowedRoles":["STAFF"]}`), &multi); err != nil {
		t.Fatalf("Unmarshal multi error = %v", err)
	}
	if len(multi.From) != 2 || multi.From[0] != StateSubmitted || multi.From[1] != StateNeedsInfo {
		t.Errorf("From = %v, want [SUBMITTED NEEDS_INFO]", multi.From)
	}

	var bad Transition
	if err := json.Unmarshal([]byte(`{"from":7,"to":"APPROVED","allowedRoles":[]}`), &bad); err == nil {
		t.Error("Unmarshal numeric from succeeded, want error")
	}
}

func TestStateList_marshalJSON(t *testing.T) {
	data, err := json.Marshal(StateList{StateDraft})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"DRAFT"` {
		t.Errorf("single-state form = %s, want %q", data, "DRAFT")
	}

	data, err = json.Marshal(StateList{StateSubmitted, StateNeedsInfo})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `["SUBMITTED","NEEDS_INFO"]` {
		t.Errorf("multi-state form = %s", data)
	}
}

func TestStateList_unmarshalYAML(t *testing.T) {
	var single Transition
	if err := yaml.Unmarshal([]byte("from: DRAFT\nto: SUBMITTED\nallowedRoles: [PATIENT]\n"), &single); err != nil {
		t.Fatalf("Unmarshal single error = %v", err)
	}
	if len(single.From) != 1 || single.From[0] != StateDraft {
		t.Errorf("From = %v, want [DRAFT]", single.From)
	}

	var multi Transition
	if err := yaml.Unmarshal([]byte("from: [SUBMITTED, NEEDS_INFO]\nto: APPROVED\nallowedRoles: [STAFF]\n"), &multi); err != nil {
		t.Fatalf("Unmarshal multi error = %v", err)
	}
	if len(multi.From) != 2 {
		t.Errorf("From = %v, want two states", multi.From)
	}
}

func TestUnsupportedFeatureError(t *testing.T) {
	err := NewUnsupportedFeatureError("field.type.file", `Field type "file" is not supported in v1.`, "Use text instead.")
	if err.Error() != `Field type "file" is not supported in v1.` {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Feature != "field.type.file" || err.Suggestion != "Use text instead." {
		t.Errorf("fields = %+v", err)
	}
}
