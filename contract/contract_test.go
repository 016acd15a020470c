package contract

import (
	"testing"

	"github.com/carefoundry/appspec/model"
)

func intakeSpec() *model.AppSpec {
	return &model.AppSpec{
		ID:      "app_123",
		Version: model.SchemaVersion,
		Meta: model.Meta{
			Name:        "Test App",
			Slug:        "test-app",
			Description: "Patient intake tracker",
		},
		Pages: []model.Page{
			{
				ID:    "intake",
				Route: "/intake",
				Role:  model.RolePatient,
				Type:  model.PageForm,
				Title: "Intake Form",
				Fields: []model.Field{
					{ID: "fullName", Label: "Full name", Type: model.FieldText, Required: true},
					{ID: "email", Label: "Email", Type: model.FieldEmail, Required: true},
					{ID: "visitDate", Label: "Visit date", Type: model.FieldDate},
					{ID: "age", Label: "Age", Type: model.FieldNumber},
					{
						ID: "visitReason", Label: "Reason", Type: model.FieldSelect,
						Options: []model.FieldOption{
							{Label: "Checkup", Value: "checkup"},
							{Label: "Follow-up", Value: "followup"},
						},
					},
				},
			},
			{ID: "queue", Route: "/staff/queue", Role: model.RoleStaff, Type: model.PageList, Title: "Queue"},
		},
		API: model.APIContract{
			BaseURL: model.APIBaseURLPlaceholder,
			Endpoints: map[string]string{
				"login":                "/api/auth/login",
				"logout":               "/api/auth/logout",
				"currentUser":          "/api/auth/me",
				"createSubmission":     "/api/submissions",
				"listSubmissions":      "/api/submissions",
				"getSubmission":        "/api/submissions/{id}",
				"transitionSubmission": "/api/submissions/{id}/transition",
				"addNote":              "/api/submissions/{id}/notes",
				"trackEvent":           "/api/events",
				"getAppConfig":         "/api/config",
			},
		},
	}
}

func TestBuild_document(t *testing.T) {
	doc := Build(intakeSpec())

	if doc.Info.Title != "Test App API" {
		t.Errorf("Info.Title = %q", doc.Info.Title)
	}
	if doc.Info.Version != model.SchemaVersion {
		t.Errorf("Info.Version = %q", doc.Info.Version)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != model.APIBaseURLPlaceholder {
		t.Errorf("Servers = %v", doc.Servers)
	}

	// Ten endpoints collapse onto nine paths: list and create share one.
	if doc.Paths.Len() != 9 {
		t.Errorf("Paths.Len() = %d, want 9", doc.Paths.Len())
	}
}

func TestBuild_sharedPath(t *testing.T) {
	doc := Build(intakeSpec())

	item := doc.Paths.Value("/api/submissions")
	if item == nil {
		t.Fatal("missing /api/submissions path")
	}
	if item.Get == nil || item.Get.OperationID != "listSubmissions" {
		t.Errorf("GET /api/submissions = %+v", item.Get)
	}
	if item.Post == nil || item.Post.OperationID != "createSubmission" {
		t.Errorf("POST /api/submissions = %+v", item.Post)
	}
}

func TestBuild_submissionSchema(t *testing.T) {
	doc := Build(intakeSpec())

	op := doc.Paths.Value("/api/submissions").Post
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		t.Fatal("createSubmission has no request body")
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		t.Fatal("createSubmission request body has no JSON schema")
	}
	schema := media.Schema.Value

	if len(schema.Properties) != 5 {
		t.Errorf("schema has %d properties, want 5", len(schema.Properties))
	}
	if len(schema.Required) != 2 || schema.Required[0] != "fullName" || schema.Required[1] != "email" {
		t.Errorf("Required = %v", schema.Required)
	}

	if f := schema.Properties["visitDate"].Value; f.Format != "date" {
		t.Errorf("visitDate format = %q, want date", f.Format)
	}
	if f := schema.Properties["age"].Value; !f.Type.Is("number") {
		t.Errorf("age type = %v, want number", f.Type)
	}
	if f := schema.Properties["visitReason"].Value; len(f.Enum) != 2 || f.Enum[0] != "checkup" {
		t.Errorf("visitReason enum = %v", f.Enum)
	}
}

func TestBuild_noFormFields(t *testing.T) {
	spec := intakeSpec()
	spec.Pages = spec.Pages[1:] // list page only

	doc := Build(spec)
	if op := doc.Paths.Value("/api/submissions").Post; op.RequestBody != nil {
		t.Error("createSubmission should have no request body without form fields")
	}
}

func TestBuild_explicitMethodOverride(t *testing.T) {
	spec := intakeSpec()
	spec.API.Endpoints["exportSubmissions"] = "PUT /api/submissions/export"

	doc := Build(spec)
	item := doc.Paths.Value("/api/submissions/export")
	if item == nil || item.Put == nil || item.Put.OperationID != "exportSubmissions" {
		t.Errorf("PUT /api/submissions/export = %+v", item)
	}
}

func TestMethodAndPath(t *testing.T) {
	tests := []struct {
		name, value, method, path string
	}{
		{"createSubmission", "/api/submissions", "POST", "/api/submissions"},
		{"listSubmissions", "/api/submissions", "GET", "/api/submissions"},
		{"custom", "delete /api/things/{id}", "DELETE", "/api/things/{id}"},
		{"unknownBare", "/api/other", "GET", "/api/other"},
	}
	for _, tt := range tests {
		method, path := methodAndPath(tt.name, tt.value)
		if method != tt.method || path != tt.path {
			t.Errorf("methodAndPath(%q, %q) = %s %s, want %s %s",
				tt.name, tt.value, method, path, tt.method, tt.path)
		}
	}
}
