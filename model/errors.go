package model

// Feature path prefixes used in UnsupportedFeatureError.Feature.
const (
	FeaturePageType           = "page.type"
	FeatureFieldType          = "field.type"
	FeatureWorkflowState      = "workflow.state"
	FeatureWorkflowComplexity = "workflow.complexity"
)

// UnsupportedFeatureError is the only error the prompt compiler returns for
// a structurally valid AppSpec. It marks a construct outside the v1
// capability surface. Feature is a dotted machine-readable path for
// logs/telemetry (e.g. "field.type.file"); Suggestion is end-user text
// listing supported alternatives.
type UnsupportedFeatureError struct {
	Feature    string `json:"feature"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *UnsupportedFeatureError) Error() string {
	return e.Message
}

// NewUnsupportedFeatureError returns an UnsupportedFeatureError for the
// given dotted feature path.
func NewUnsupportedFeatureError(feature, message, suggestion string) *UnsupportedFeatureError {
	return &UnsupportedFeatureError{
		Feature:    feature,
		Message:    message,
		Suggestion: suggestion,
	}
}
