// Package contract projects an AppSpec's api section into an OpenAPI 3
// document. The result is the interface the generated app's backend must
// satisfy; the code-generation and deploy layers consume it, this core only
// produces it. The projection is pure and deterministic.
package contract

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/carefoundry/appspec/model"
)

// endpointMethods maps catalogue endpoint names to HTTP methods. Endpoint
// values may also carry an explicit "METHOD /path" prefix, which wins.
var endpointMethods = map[string]string{
	"login":                "POST",
	"logout":               "POST",
	"currentUser":          "GET",
	"createSubmission":     "POST",
	"listSubmissions":      "GET",
	"getSubmission":        "GET",
	"transitionSubmission": "POST",
	"addNote":              "POST",
	"trackEvent":           "POST",
	"getAppConfig":         "GET",
}

// Build renders spec's endpoint catalogue as an OpenAPI 3 document.
// Submission creation gets a request schema derived from the spec's form
// fields; every operation carries the page role of its consumer as a tag
// where one can be inferred.
func Build(spec *model.AppSpec) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       spec.Meta.Name + " API",
			Description: spec.Meta.Description,
			Version:     spec.Version,
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				URL:         spec.API.BaseURL,
				Description: "Resolved from the deployed app's environment configuration.",
			},
		},
		Paths: openapi3.NewPaths(),
	}

	names := make([]string, 0, len(spec.API.Endpoints))
	for name := range spec.API.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		method, path := methodAndPath(name, spec.API.Endpoints[name])

		op := &openapi3.Operation{
			OperationID: name,
			Summary:     summaryFor(name),
			Responses:   defaultResponses(),
		}

		if name == "createSubmission" {
			if schema := submissionSchema(spec.Pages); schema != nil {
				op.RequestBody = &openapi3.RequestBodyRef{
					Value: openapi3.NewRequestBody().
						WithRequired(true).
						WithJSONSchemaRef(openapi3.NewSchemaRef("", schema)),
				}
			}
		}

		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		item.SetOperation(method, op)
	}

	return doc
}

// methodAndPath splits an endpoint value of the form "METHOD /path" or
// falls back to the catalogue's method for a bare path.
func methodAndPath(name, value string) (string, string) {
	if before, after, ok := strings.Cut(value, " "); ok && strings.HasPrefix(after, "/") {
		return strings.ToUpper(before), after
	}
	if m, ok := endpointMethods[name]; ok {
		return m, value
	}
	return "GET", value
}

func summaryFor(name string) string {
	switch name {
	case "login":
		return "Authenticate a user and start a session."
	case "logout":
		return "End the current session."
	case "currentUser":
		return "Return the authenticated user and role."
	case "createSubmission":
		return "Create a new submission from form input."
	case "listSubmissions":
		return "List submissions visible to the caller's role."
	case "getSubmission":
		return "Fetch a single submission."
	case "transitionSubmission":
		return "Apply a workflow transition to a submission."
	case "addNote":
		return "Attach a note to a submission."
	case "trackEvent":
		return "Record an analytics event."
	case "getAppConfig":
		return "Return the app's runtime configuration."
	default:
		return ""
	}
}

func defaultResponses() *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Successful response."),
		}),
	)
}

// submissionSchema derives a JSON object schema from every field declared
// on form-type pages, in declaration order. Returns nil when the spec has
// no form fields.
func submissionSchema(pages []model.Page) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	found := false

	for _, p := range pages {
		if p.Type != model.PageForm {
			continue
		}
		for _, f := range p.Fields {
			if _, exists := schema.Properties[f.ID]; exists {
				continue
			}
			found = true
			fs := fieldSchema(f)
			schema.Properties[f.ID] = openapi3.NewSchemaRef("", fs)
			if f.Required {
				schema.Required = append(schema.Required, f.ID)
			}
		}
	}

	if !found {
		return nil
	}
	return schema
}

// fieldSchema maps an AppSpec field type onto a JSON schema.
func fieldSchema(f model.Field) *openapi3.Schema {
	var s *openapi3.Schema
	switch f.Type {
	case model.FieldNumber:
		s = openapi3.NewFloat64Schema()
	case model.FieldCheckbox:
		s = openapi3.NewBoolSchema()
	case model.FieldDate:
		s = openapi3.NewStringSchema().WithFormat("date")
	case model.FieldEmail:
		s = openapi3.NewStringSchema().WithFormat("email")
	default:
		s = openapi3.NewStringSchema()
	}
	s.Title = f.Label

	if len(f.Options) > 0 {
		values := make([]any, len(f.Options))
		for i, o := range f.Options {
			values[i] = o.Value
		}
		s = s.WithEnum(values...)
	}
	return s
}
