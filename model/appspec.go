package model

// SchemaVersion is the only AppSpec schema version this core accepts.
// Version comparison is on the primitive string, never numeric.
const SchemaVersion = "0.3"

// APIBaseURLPlaceholder is the exact token every AppSpec must carry as
// api.baseUrl. It is resolved by the generated app's own environment
// configuration at runtime, never at compile time.
const APIBaseURLPlaceholder = "{{API_BASE_URL}}"

// ThemePresetHealthcareCalm is the single theme preset supported in v1.
const ThemePresetHealthcareCalm = "healthcare-calm"

// Role identifies an application role.
type Role string

// Application roles.
const (
	RolePatient Role = "PATIENT"
	RoleStaff   Role = "STAFF"
)

// PageType identifies the kind of page the generator should produce.
type PageType string

// Page types declared by the schema. Membership in the v1 allow-list is
// enforced by the capability package, not here.
const (
	PageWelcome PageType = "welcome"
	PageForm    PageType = "form"
	PageReview  PageType = "review"
	PageSuccess PageType = "success"
	PageLogin   PageType = "login"
	PageList    PageType = "list"
	PageDetail  PageType = "detail"
)

// FieldType identifies the input control for a form field.
type FieldType string

// Field types declared by the schema.
const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldNumber   FieldType = "number"
)

// WorkflowState is a state in the submission workflow.
type WorkflowState string

// The closed v1 state set. DRAFT is conceptual/client-only: it is the
// initial state but never a persisted record status.
const (
	StateDraft     WorkflowState = "DRAFT"
	StateSubmitted WorkflowState = "SUBMITTED"
	StateNeedsInfo WorkflowState = "NEEDS_INFO"
	StateApproved  WorkflowState = "APPROVED"
	StateRejected  WorkflowState = "REJECTED"
)

// Condition operators for field visibility.
const (
	OperatorEquals    = "equals"
	OperatorNotEquals = "not_equals"
	OperatorExists    = "exists"
)

// Analytics event triggers.
const (
	TriggerPageview   = "pageview"
	TriggerAction     = "action"
	TriggerSubmit     = "submit"
	TriggerTransition = "transition"
)

// EndpointNames is the fixed catalogue of named API endpoints every AppSpec
// must declare. The validator requires all of them to be present.
var EndpointNames = []string{
	"login",
	"logout",
	"currentUser",
	"createSubmission",
	"listSubmissions",
	"getSubmission",
	"transitionSubmission",
	"addNote",
	"trackEvent",
	"getAppConfig",
}

// AppSpec is the root application specification document. One per
// application, superseded (never patched) on every refinement.
type AppSpec struct {
	ID           string       `yaml:"id"           json:"id"`
	Version      string       `yaml:"version"      json:"version"`
	Meta         Meta         `yaml:"meta"         json:"meta"`
	Theme        Theme        `yaml:"theme"        json:"theme"`
	Roles        []RoleSpec   `yaml:"roles"        json:"roles"`
	Pages        []Page       `yaml:"pages"        json:"pages"`
	Workflow     Workflow     `yaml:"workflow"     json:"workflow"`
	API          APIContract  `yaml:"api"          json:"api"`
	Analytics    Analytics    `yaml:"analytics"    json:"analytics"`
	Environments Environments `yaml:"environments" json:"environments"`
}

// Meta carries the application's identity.
type Meta struct {
	Name        string `yaml:"name"        json:"name"`
	Slug        string `yaml:"slug"        json:"slug"`
	Description string `yaml:"description" json:"description"`
	OrgID       string `yaml:"orgId"       json:"orgId"`
	OrgSlug     string `yaml:"orgSlug"     json:"orgSlug"`
}

// Theme describes the visual preset for the generated app.
type Theme struct {
	Preset string       `yaml:"preset"           json:"preset"`
	Logo   string       `yaml:"logo,omitempty"   json:"logo,omitempty"`
	Colors *ThemeColors `yaml:"colors,omitempty" json:"colors,omitempty"`
}

// ThemeColors holds hex color overrides.
type ThemeColors struct {
	Primary    string `yaml:"primary"    json:"primary"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text"       json:"text"`
}

// RoleSpec declares a role and its routing/auth behavior.
type RoleSpec struct {
	ID           Role   `yaml:"id"                     json:"id"`
	AuthRequired bool   `yaml:"authRequired"           json:"authRequired"`
	RoutePrefix  string `yaml:"routePrefix,omitempty"  json:"routePrefix,omitempty"`
}

// Page describes a single page of the generated app.
type Page struct {
	ID          string   `yaml:"id"                    json:"id"`
	Route       string   `yaml:"route"                 json:"route"`
	Role        Role     `yaml:"role"                  json:"role"`
	Type        PageType `yaml:"type"                  json:"type"`
	Title       string   `yaml:"title"                 json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []Field  `yaml:"fields,omitempty"      json:"fields,omitempty"`
	Actions     []Action `yaml:"actions,omitempty"     json:"actions,omitempty"`
}

// Field describes a single form field.
type Field struct {
	ID          string           `yaml:"id"                    json:"id"`
	Type        FieldType        `yaml:"type"                  json:"type"`
	Label       string           `yaml:"label"                 json:"label"`
	Placeholder string           `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool             `yaml:"required,omitempty"    json:"required,omitempty"`
	Options     []FieldOption    `yaml:"options,omitempty"     json:"options,omitempty"`
	Condition   *FieldCondition  `yaml:"condition,omitempty"   json:"condition,omitempty"`
	Validation  []ValidationRule `yaml:"validation,omitempty"  json:"validation,omitempty"`
}

// FieldOption is a value/label pair for select and radio fields.
type FieldOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// FieldCondition gates a field's visibility on another field's value.
// Value is absent when Operator is "exists".
type FieldCondition struct {
	Field    string `yaml:"field"           json:"field"`
	Operator string `yaml:"operator"        json:"operator"`
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// ValidationRule is a single validation constraint on a field. Type is an
// open set: unknown types still render in the compiled prompt.
type ValidationRule struct {
	Type    string `yaml:"type"    json:"type"`
	Value   any    `yaml:"value"   json:"value"`
	Message string `yaml:"message" json:"message"`
}

// Action is a staff transition button on detail/review pages.
type Action struct {
	ID           string        `yaml:"id"                     json:"id"`
	Label        string        `yaml:"label"                  json:"label"`
	TargetState  WorkflowState `yaml:"targetState"            json:"targetState"`
	RequiresNote bool          `yaml:"requiresNote,omitempty" json:"requiresNote,omitempty"`
	Variant      string        `yaml:"variant"                json:"variant"`
}

// Workflow declares the submission state machine the generated runtime
// must enforce.
type Workflow struct {
	States       []WorkflowState `yaml:"states"       json:"states"`
	InitialState WorkflowState   `yaml:"initialState" json:"initialState"`
	Transitions  []Transition    `yaml:"transitions"  json:"transitions"`
}

// Transition is a directed, role-gated edge. From may carry several source
// states sharing the same target and role gate.
type Transition struct {
	From         StateList     `yaml:"from"         json:"from"`
	To           WorkflowState `yaml:"to"           json:"to"`
	AllowedRoles []Role        `yaml:"allowedRoles" json:"allowedRoles"`
}

// APIContract names the endpoints the generated app talks to. BaseURL must
// be the exact APIBaseURLPlaceholder token.
type APIContract struct {
	BaseURL   string            `yaml:"baseUrl"   json:"baseUrl"`
	Endpoints map[string]string `yaml:"endpoints" json:"endpoints"`
}

// Analytics lists the events the generated app must emit.
type Analytics struct {
	Events []AnalyticsEvent `yaml:"events" json:"events"`
}

// AnalyticsEvent is a single tracked event.
type AnalyticsEvent struct {
	Name    string `yaml:"name"           json:"name"`
	Trigger string `yaml:"trigger"        json:"trigger"`
	Page    string `yaml:"page,omitempty" json:"page,omitempty"`
}

// Environments declares the two deployment targets.
type Environments struct {
	Staging    EnvironmentTarget `yaml:"staging"    json:"staging"`
	Production EnvironmentTarget `yaml:"production" json:"production"`
}

// EnvironmentTarget is a single deployment target.
type EnvironmentTarget struct {
	Domain string `yaml:"domain" json:"domain"`
	APIURL string `yaml:"apiUrl" json:"apiUrl"`
}
