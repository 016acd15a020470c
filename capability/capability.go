// Package capability is the fixed v1 catalogue of constructs the app
// generator supports. The compiler consults it to fail fast on anything
// outside scope; the tables are static data, not a runtime service.
package capability

import (
	"fmt"
	"strings"

	"github.com/carefoundry/appspec/model"
)

// PageTypes lists the page types supported in v1, in catalogue order.
var PageTypes = []model.PageType{
	model.PageWelcome,
	model.PageForm,
	model.PageReview,
	model.PageSuccess,
	model.PageLogin,
	model.PageList,
	model.PageDetail,
}

// FieldTypes lists the field types supported in v1, in catalogue order.
var FieldTypes = []model.FieldType{
	model.FieldText,
	model.FieldEmail,
	model.FieldTel,
	model.FieldDate,
	model.FieldTextarea,
	model.FieldSelect,
	model.FieldRadio,
	model.FieldCheckbox,
	model.FieldNumber,
}

// WorkflowStates lists the closed v1 state set, in catalogue order.
var WorkflowStates = []model.WorkflowState{
	model.StateDraft,
	model.StateSubmitted,
	model.StateNeedsInfo,
	model.StateApproved,
	model.StateRejected,
}

// MaxTransitionsPerState bounds workflow complexity: a workflow may declare
// at most MaxTransitionsPerState * len(states) transitions.
const MaxTransitionsPerState = 3

var pageTypeSet = toSet(PageTypes)
var fieldTypeSet = toSet(FieldTypes)
var workflowStateSet = toSet(WorkflowStates)

func toSet[T ~string](items []T) map[T]bool {
	set := make(map[T]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func joinNames[T ~string](items []T) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = string(it)
	}
	return strings.Join(names, ", ")
}

// SupportsPageType reports whether t is in the v1 allow-list.
func SupportsPageType(t model.PageType) bool {
	return pageTypeSet[t]
}

// SupportsFieldType reports whether t is in the v1 allow-list.
func SupportsFieldType(t model.FieldType) bool {
	return fieldTypeSet[t]
}

// SupportsWorkflowState reports whether s is in the closed v1 state set.
func SupportsWorkflowState(s model.WorkflowState) bool {
	return workflowStateSet[s]
}

// CheckPageType returns nil when t is supported, otherwise an
// UnsupportedFeatureError naming the offending type.
func CheckPageType(t model.PageType) *model.UnsupportedFeatureError {
	if pageTypeSet[t] {
		return nil
	}
	return model.NewUnsupportedFeatureError(
		fmt.Sprintf("%s.%s", model.FeaturePageType, t),
		fmt.Sprintf("Page type %q is not supported in v1.", string(t)),
		"Use one of the supported page types: "+joinNames(PageTypes),
	)
}

// CheckFieldType returns nil when t is supported, otherwise an
// UnsupportedFeatureError naming the offending type.
func CheckFieldType(t model.FieldType) *model.UnsupportedFeatureError {
	if fieldTypeSet[t] {
		return nil
	}
	return model.NewUnsupportedFeatureError(
		fmt.Sprintf("%s.%s", model.FeatureFieldType, t),
		fmt.Sprintf("Field type %q is not supported in v1.", string(t)),
		"Use one of the supported field types: "+joinNames(FieldTypes),
	)
}

// CheckWorkflowState returns nil when s is in the closed state set,
// otherwise an UnsupportedFeatureError naming the offending state.
func CheckWorkflowState(s model.WorkflowState) *model.UnsupportedFeatureError {
	if workflowStateSet[s] {
		return nil
	}
	return model.NewUnsupportedFeatureError(
		fmt.Sprintf("%s.%s", model.FeatureWorkflowState, s),
		fmt.Sprintf("Workflow state %q is not supported in v1.", string(s)),
		"Use simple workflow with states: "+joinNames(WorkflowStates),
	)
}

// CheckWorkflowComplexity enforces the transition budget. The error message
// reports both counts so callers can surface exactly what to trim.
func CheckWorkflowComplexity(stateCount, transitionCount int) *model.UnsupportedFeatureError {
	if transitionCount <= MaxTransitionsPerState*stateCount {
		return nil
	}
	return model.NewUnsupportedFeatureError(
		model.FeatureWorkflowComplexity,
		fmt.Sprintf("Workflow is too complex for v1: %d transitions across %d states is not supported.",
			transitionCount, stateCount),
		fmt.Sprintf("Simplify the workflow to at most %d transitions per state.", MaxTransitionsPerState),
	)
}
