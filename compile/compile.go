// Package compile renders a validated AppSpec into the natural-language
// build prompt consumed by the code-generation backend. The projection is
// lossless for supported constructs: every populated field of the spec
// appears verbatim in the output. Compilation is deterministic; equal specs
// produce byte-identical prompts.
//
// Capability enforcement happens during rendering, not as a separate pass:
// the first construct outside the v1 allow-list aborts compilation with a
// *model.UnsupportedFeatureError.
package compile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carefoundry/appspec/capability"
	"github.com/carefoundry/appspec/model"
	"github.com/carefoundry/appspec/workflow"
)

// ToPrompt compiles spec into a single plain-text prompt. The only error
// returned for a structurally valid spec is *model.UnsupportedFeatureError;
// callers surface its Suggestion to the user and keep Feature for logs.
func ToPrompt(spec *model.AppSpec) (string, error) {
	var b strings.Builder

	writeHeader(&b, spec)
	writeRoles(&b, spec.Roles)
	writeTheme(&b, spec.Theme)
	if err := writePages(&b, spec.Pages); err != nil {
		return "", err
	}
	if err := writeWorkflow(&b, spec.Workflow); err != nil {
		return "", err
	}
	writeAPI(&b, spec.API)
	writeAnalytics(&b, spec.Analytics)
	writeEnvironments(&b, spec.Environments)
	writeConstraints(&b)

	return b.String(), nil
}

func writeHeader(b *strings.Builder, spec *model.AppSpec) {
	b.WriteString("Build a complete web application from the specification below. Follow it exactly.\n\n")
	b.WriteString("## APPLICATION\n")
	fmt.Fprintf(b, "Name: %s\n", spec.Meta.Name)
	fmt.Fprintf(b, "Slug: %s\n", spec.Meta.Slug)
	fmt.Fprintf(b, "Description: %s\n", spec.Meta.Description)
	fmt.Fprintf(b, "Organization: %s (org ID: %s)\n", spec.Meta.OrgSlug, spec.Meta.OrgID)
	fmt.Fprintf(b, "App ID: %s\n", spec.ID)
	fmt.Fprintf(b, "Spec version: %s\n", spec.Version)
	b.WriteString("\n")
}

func writeRoles(b *strings.Builder, roles []model.RoleSpec) {
	b.WriteString("## ROLES\n")
	for _, r := range roles {
		auth := "no authentication"
		if r.AuthRequired {
			auth = "authentication required"
		}
		fmt.Fprintf(b, "- %s: %s", r.ID, auth)
		if r.RoutePrefix != "" {
			fmt.Fprintf(b, ", route prefix %q", r.RoutePrefix)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeTheme(b *strings.Builder, theme model.Theme) {
	b.WriteString("## THEME\n")
	fmt.Fprintf(b, "Preset: %s\n", theme.Preset)
	if theme.Logo != "" {
		fmt.Fprintf(b, "Logo: %s\n", theme.Logo)
	}
	if theme.Colors != nil {
		// Fixed alphabetical key order keeps the output byte-stable.
		fmt.Fprintf(b, "Colors: background %s, primary %s, text %s\n",
			theme.Colors.Background, theme.Colors.Primary, theme.Colors.Text)
	}
	b.WriteString("\n")
}

func writePages(b *strings.Builder, pages []model.Page) error {
	b.WriteString("## PAGES\n")
	for i, p := range pages {
		if err := capability.CheckPageType(p.Type); err != nil {
			return err
		}

		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "### Page %q (id: %s)\n", p.Title, p.ID)
		fmt.Fprintf(b, "Type: %s\n", p.Type)
		fmt.Fprintf(b, "Route: %s\n", p.Route)
		fmt.Fprintf(b, "Role: %s\n", p.Role)
		if p.Description != "" {
			fmt.Fprintf(b, "Description: %s\n", p.Description)
		}

		if len(p.Fields) > 0 {
			b.WriteString("Fields:\n")
			for _, f := range p.Fields {
				if err := writeField(b, f); err != nil {
					return err
				}
			}
		}

		if len(p.Actions) > 0 {
			b.WriteString("Actions:\n")
			for _, a := range p.Actions {
				writeAction(b, a)
			}
		}
	}
	b.WriteString("\n")
	return nil
}

func writeField(b *strings.Builder, f model.Field) error {
	if err := capability.CheckFieldType(f.Type); err != nil {
		return err
	}

	fmt.Fprintf(b, "- %q (id: %s, type: %s)", f.Label, f.ID, f.Type)
	if f.Required {
		b.WriteString(", required")
	}
	if f.Placeholder != "" {
		fmt.Fprintf(b, ", placeholder %q", f.Placeholder)
	}
	b.WriteString("\n")

	if len(f.Options) > 0 {
		b.WriteString("  Options:")
		for i, o := range f.Options {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %q (value: %s)", o.Label, o.Value)
		}
		b.WriteString("\n")
	}

	if len(f.Validation) > 0 {
		b.WriteString("  Validation: ")
		for i, rule := range f.Validation {
			if i > 0 {
				b.WriteString("; ")
			}
			// Unknown rule types render the same generic way instead of
			// failing, so forward-compatible rules degrade gracefully.
			fmt.Fprintf(b, "%s: %s", rule.Type, formatValue(rule.Value))
			if rule.Message != "" {
				fmt.Fprintf(b, " (%q)", rule.Message)
			}
		}
		b.WriteString("\n")
	}

	if f.Condition != nil {
		b.WriteString("  Visibility: ")
		writeCondition(b, *f.Condition)
		b.WriteString("\n")
	}

	return nil
}

func writeCondition(b *strings.Builder, c model.FieldCondition) {
	if c.Operator == model.OperatorExists {
		fmt.Fprintf(b, "shown when field %q exists", c.Field)
		return
	}
	fmt.Fprintf(b, "shown when field %q %s %s", c.Field, c.Operator, formatValue(c.Value))
}

func writeAction(b *strings.Builder, a model.Action) {
	fmt.Fprintf(b, "- %q (id: %s) moves the record to %s, variant: %s", a.Label, a.ID, a.TargetState, a.Variant)
	if a.RequiresNote {
		b.WriteString(", requires a note")
	}
	b.WriteString("\n")
}

func writeWorkflow(b *strings.Builder, w model.Workflow) error {
	b.WriteString("## WORKFLOW\n")

	b.WriteString("States: ")
	for i, s := range w.States {
		if err := capability.CheckWorkflowState(s); err != nil {
			return err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(s))
	}
	b.WriteString("\n")

	if err := capability.CheckWorkflowComplexity(len(w.States), len(w.Transitions)); err != nil {
		return err
	}

	fmt.Fprintf(b, "Initial state: %s\n", w.InitialState)
	b.WriteString("DRAFT is client-side only and must never be persisted as a stored record's status.\n")

	b.WriteString("Transitions:\n")
	machine := workflow.NewMachine(w)
	for _, e := range machine.Edges() {
		fmt.Fprintf(b, "- %s -> %s (allowed roles: %s)\n", e.From, e.To, joinRoles(e.Roles))
	}
	b.WriteString("\n")
	return nil
}

func joinRoles(roles []model.Role) string {
	if len(roles) == 0 {
		return "none"
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

func writeAPI(b *strings.Builder, api model.APIContract) {
	b.WriteString("## API\n")
	fmt.Fprintf(b, "Base URL: %s (resolved from the deployed app's environment configuration)\n", api.BaseURL)
	b.WriteString("Endpoints:\n")

	// Endpoints arrive as a map; sort the names so output stays stable.
	names := make([]string, 0, len(api.Endpoints))
	for name := range api.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, "- %s: %s\n", name, api.Endpoints[name])
	}
	b.WriteString("\n")
}

func writeAnalytics(b *strings.Builder, analytics model.Analytics) {
	b.WriteString("## ANALYTICS\n")
	if len(analytics.Events) == 0 {
		b.WriteString("No analytics events declared.\n\n")
		return
	}
	b.WriteString("Events:\n")
	for _, e := range analytics.Events {
		fmt.Fprintf(b, "- %s (trigger: %s", e.Name, e.Trigger)
		if e.Page != "" {
			fmt.Fprintf(b, ", page: %s", e.Page)
		}
		b.WriteString(")\n")
	}
	b.WriteString("\n")
}

func writeEnvironments(b *strings.Builder, envs model.Environments) {
	b.WriteString("## ENVIRONMENTS\n")
	fmt.Fprintf(b, "Staging: domain %s, API %s\n", envs.Staging.Domain, envs.Staging.APIURL)
	fmt.Fprintf(b, "Production: domain %s, API %s\n", envs.Production.Domain, envs.Production.APIURL)
	b.WriteString("\n")
}

// constraintsBlock is the fixed set of hard technical rules appended to
// every compiled prompt. It is static text, never derived from the spec.
const constraintsBlock = `## CONSTRAINTS
- Do not use external UI component or form libraries; build UI from framework primitives.
- All database columns use camelCase naming.
- All data mutations happen server-side; the client never writes to the database directly.
- Every record is scoped by appId; queries must always filter by the owning application (multi-tenancy).
- Workflow transitions are enforced server-side using exactly the states, transitions, and role gates declared above.
- The API base URL comes from the deployed environment's configuration; never hard-code it.
- All pages must be responsive and usable on mobile viewports.
- All forms must be accessible: label every input, support keyboard navigation, and announce validation errors.
- Validate every form field server-side in addition to any client-side validation.
- Emit the declared analytics events and no others.
`

func writeConstraints(b *strings.Builder) {
	b.WriteString(constraintsBlock)
}

// formatValue renders a condition or validation-rule value. Strings render
// bare (the prompt must contain them verbatim); JSON numbers drop their
// float artifacts so 3 never renders as 3e+00.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprint(val)
	}
}
