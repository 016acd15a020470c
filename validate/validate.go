// Package validate holds the structural AppSpec validator. It operates on
// untyped documents (the shape produced by encoding/json or yaml.v3
// unmarshalling into any) so that candidate specs from the generation layer
// can be checked before anything downstream touches them.
//
// Validity is structural only: presence and primitive/enum type of every
// declared field. Cross-field consistency (e.g. an action's targetState
// being a declared workflow state) is not checked here, and capability
// allow-list membership for page types, field types, and workflow states is
// the compiler's job.
package validate

import (
	"encoding/json"

	"github.com/carefoundry/appspec/model"
)

var validRoleIDs = map[string]bool{
	string(model.RolePatient): true,
	string(model.RoleStaff):   true,
}

var validOperators = map[string]bool{
	model.OperatorEquals:    true,
	model.OperatorNotEquals: true,
	model.OperatorExists:    true,
}

var validTriggers = map[string]bool{
	model.TriggerPageview:   true,
	model.TriggerAction:     true,
	model.TriggerSubmit:     true,
	model.TriggerTransition: true,
}

// IsValidAppSpec reports whether doc is a structurally valid AppSpec. It is
// total: any input, including nil, scalars, and arrays, yields a boolean
// and never a panic.
func IsValidAppSpec(doc any) bool {
	m, ok := doc.(map[string]any)
	if !ok || m == nil {
		return false
	}

	if v, ok := m["version"].(string); !ok || v != model.SchemaVersion {
		return false
	}
	if !isString(m["id"]) {
		return false
	}

	return validMeta(m["meta"]) &&
		validTheme(m["theme"]) &&
		validRoles(m["roles"]) &&
		validPages(m["pages"]) &&
		validWorkflow(m["workflow"]) &&
		validAPI(m["api"]) &&
		validAnalytics(m["analytics"]) &&
		validEnvironments(m["environments"])
}

// Decode validates doc and, on success, decodes it into the typed model.
// The second return is false when doc is not a valid AppSpec.
func Decode(doc any) (*model.AppSpec, bool) {
	if !IsValidAppSpec(doc) {
		return nil, false
	}

	// The document round-trips through JSON: the validator has already
	// guaranteed the shape, so the only failure mode left is exotic
	// non-serializable values, which the map check above excludes.
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, false
	}
	var spec model.AppSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, false
	}
	return &spec, true
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// optionalString accepts an absent key (nil) or a string.
func optionalString(v any) bool {
	return v == nil || isString(v)
}

func optionalBool(v any) bool {
	return v == nil || isBool(v)
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func validMeta(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	return isString(m["name"]) &&
		isString(m["slug"]) &&
		isString(m["description"]) &&
		isString(m["orgId"]) &&
		isString(m["orgSlug"])
}

func validTheme(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	if preset, ok := m["preset"].(string); !ok || preset != model.ThemePresetHealthcareCalm {
		return false
	}
	if !optionalString(m["logo"]) {
		return false
	}
	if colors := m["colors"]; colors != nil {
		cm, ok := asMap(colors)
		if !ok {
			return false
		}
		if !isString(cm["primary"]) || !isString(cm["background"]) || !isString(cm["text"]) {
			return false
		}
	}
	return true
}

func validRoles(v any) bool {
	roles, ok := asSlice(v)
	if !ok {
		return false
	}
	for _, r := range roles {
		m, ok := asMap(r)
		if !ok {
			return false
		}
		id, ok := m["id"].(string)
		if !ok || !validRoleIDs[id] {
			return false
		}
		if !isBool(m["authRequired"]) {
			return false
		}
		if !optionalString(m["routePrefix"]) {
			return false
		}
	}
	return true
}

func validPages(v any) bool {
	pages, ok := asSlice(v)
	if !ok {
		return false
	}
	for _, p := range pages {
		if !validPage(p) {
			return false
		}
	}
	return true
}

func validPage(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	if !isString(m["id"]) || !isString(m["route"]) || !isString(m["role"]) ||
		!isString(m["type"]) || !isString(m["title"]) {
		return false
	}
	if !optionalString(m["description"]) {
		return false
	}
	if fields := m["fields"]; fields != nil {
		fs, ok := asSlice(fields)
		if !ok {
			return false
		}
		for _, f := range fs {
			if !validField(f) {
				return false
			}
		}
	}
	if actions := m["actions"]; actions != nil {
		as, ok := asSlice(actions)
		if !ok {
			return false
		}
		for _, a := range as {
			if !validAction(a) {
				return false
			}
		}
	}
	return true
}

func validField(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	if !isString(m["id"]) || !isString(m["type"]) || !isString(m["label"]) {
		return false
	}
	if !optionalString(m["placeholder"]) || !optionalBool(m["required"]) {
		return false
	}
	if options := m["options"]; options != nil {
		os, ok := asSlice(options)
		if !ok {
			return false
		}
		for _, o := range os {
			om, ok := asMap(o)
			if !ok || !isString(om["value"]) || !isString(om["label"]) {
				return false
			}
		}
	}
	if cond := m["condition"]; cond != nil {
		if !validCondition(cond) {
			return false
		}
	}
	if rules := m["validation"]; rules != nil {
		rs, ok := asSlice(rules)
		if !ok {
			return false
		}
		for _, r := range rs {
			rm, ok := asMap(r)
			if !ok || !isString(rm["type"]) || rm["value"] == nil || !isString(rm["message"]) {
				return false
			}
		}
	}
	return true
}

func validCondition(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	if !isString(m["field"]) {
		return false
	}
	op, ok := m["operator"].(string)
	if !ok || !validOperators[op] {
		return false
	}
	// Value travels with equals/not_equals and is absent for exists.
	if op == model.OperatorExists {
		return m["value"] == nil
	}
	return m["value"] != nil
}

func validAction(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	return isString(m["id"]) &&
		isString(m["label"]) &&
		isString(m["targetState"]) &&
		optionalBool(m["requiresNote"]) &&
		isString(m["variant"])
}

func validWorkflow(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}

	states, ok := asSlice(m["states"])
	if !ok || len(states) == 0 {
		return false
	}
	stateSet := make(map[string]bool, len(states))
	for _, s := range states {
		name, ok := s.(string)
		if !ok {
			return false
		}
		stateSet[name] = true
	}

	initial, ok := m["initialState"].(string)
	if !ok || !stateSet[initial] {
		return false
	}

	transitions, ok := asSlice(m["transitions"])
	if !ok {
		return false
	}
	for _, t := range transitions {
		if !validTransition(t) {
			return false
		}
	}
	return true
}

func validTransition(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}

	// from is a state string or a non-empty array of state strings.
	switch from := m["from"].(type) {
	case string:
	case []any:
		if len(from) == 0 {
			return false
		}
		for _, s := range from {
			if !isString(s) {
				return false
			}
		}
	default:
		return false
	}

	if !isString(m["to"]) {
		return false
	}

	roles, ok := asSlice(m["allowedRoles"])
	if !ok {
		return false
	}
	for _, r := range roles {
		id, ok := r.(string)
		if !ok || !validRoleIDs[id] {
			return false
		}
	}
	return true
}

func validAPI(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	if base, ok := m["baseUrl"].(string); !ok || base != model.APIBaseURLPlaceholder {
		return false
	}
	endpoints, ok := asMap(m["endpoints"])
	if !ok {
		return false
	}
	for _, name := range model.EndpointNames {
		if !isString(endpoints[name]) {
			return false
		}
	}
	// Any extra endpoints must still be strings.
	for _, val := range endpoints {
		if !isString(val) {
			return false
		}
	}
	return true
}

func validAnalytics(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	events, ok := asSlice(m["events"])
	if !ok {
		return false
	}
	for _, e := range events {
		em, ok := asMap(e)
		if !ok {
			return false
		}
		if !isString(em["name"]) {
			return false
		}
		trigger, ok := em["trigger"].(string)
		if !ok || !validTriggers[trigger] {
			return false
		}
		if !optionalString(em["page"]) {
			return false
		}
	}
	return true
}

func validEnvironments(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	return validEnvironmentTarget(m["staging"]) && validEnvironmentTarget(m["production"])
}

func validEnvironmentTarget(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	return isString(m["domain"]) && isString(m["apiUrl"])
}
