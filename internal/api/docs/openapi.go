// internal/api/docs/openapi.go

// Package docs builds the OpenAPI 3 document describing the HTTP surface.
// The router declares its bindings once and hands them here, so the served
// document can never drift from the routes actually registered.
package docs

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the API version advertised in the OpenAPI document.
const Version = "1.0.0"

// Operation describes a single route binding as declared by the router.
type Operation struct {
	Method  string
	Path    string
	Summary string
}

// Document assembles the OpenAPI document from the declared operations.
func Document(ops []Operation) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "User Registry API",
			Version: Version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, op := range ops {
		item := doc.Paths.Value(op.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(op.Path, item)
		}
		item.SetOperation(op.Method, operationSpec(op))
	}
	return doc, nil
}

// operationSpec builds the per-operation spec: parameters, request body and
// the envelope-shaped responses.
func operationSpec(op Operation) *openapi3.Operation {
	spec := openapi3.NewOperation()
	spec.Summary = op.Summary
	spec.Responses = openapi3.NewResponses()

	if op.Path == "/users/{id}" {
		param := openapi3.NewPathParameter("id").
			WithSchema(openapi3.NewInt64Schema().WithMin(1))
		spec.AddParameter(param)
	}

	switch op.Method {
	case http.MethodPost:
		spec.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(createUserSchema()),
		}
		spec.Responses.Set("201", envelopeResponse("User created", userSchema()))
		spec.Responses.Set("409", envelopeResponse("Email already in use", nil))
	case http.MethodPut:
		spec.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(updateUserSchema()),
		}
		spec.Responses.Set("200", envelopeResponse("User updated", userSchema()))
		spec.Responses.Set("404", envelopeResponse("User not found", nil))
		spec.Responses.Set("409", envelopeResponse("Email already in use", nil))
	case http.MethodDelete:
		spec.Responses.Set("204", envelopeResponse("User deleted", nil))
		spec.Responses.Set("404", envelopeResponse("User not found", nil))
	default: // GET
		if op.Path == "/users" {
			spec.Responses.Set("200", envelopeResponse("Users found", openapi3.NewArraySchema().WithItems(userSchema())))
			spec.Responses.Set("404", envelopeResponse("No users found", nil))
		} else {
			spec.Responses.Set("200", envelopeResponse("User found", userSchema()))
			spec.Responses.Set("404", envelopeResponse("User not found", nil))
		}
	}

	if op.Path == "/users/{id}" {
		spec.Responses.Set("400", envelopeResponse("Invalid input", nil))
	}
	if op.Method == http.MethodPost || op.Method == http.MethodPut {
		spec.Responses.Set("400", envelopeResponse("Invalid input", nil))
	}
	return spec
}

// envelopeResponse wraps a payload schema in the uniform response envelope.
// A nil payload documents the null responseObject of failure envelopes.
func envelopeResponse(description string, payload *openapi3.Schema) *openapi3.ResponseRef {
	if payload == nil {
		payload = openapi3.NewSchema()
		payload.Nullable = true
	}
	envelope := openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("responseObject", payload).
		WithProperty("statusCode", openapi3.NewIntegerSchema())
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithJSONSchema(envelope),
	}
}

func userSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(2)).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("age", openapi3.NewInt64Schema().WithMin(0).WithNullable()).
		WithProperty("createdAt", openapi3.NewDateTimeSchema()).
		WithProperty("updatedAt", openapi3.NewDateTimeSchema())
}

func createUserSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(2)).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("age", openapi3.NewInt64Schema().WithMin(0))
	s.Required = []string{"name", "email"}
	return s
}

func updateUserSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(2)).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("age", openapi3.NewInt64Schema().WithMin(0))
	s.MinProps = 1
	return s
}
