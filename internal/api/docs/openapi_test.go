// internal/api/docs/openapi_test.go
package docs_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/api/docs"
)

func declaredOperations() []docs.Operation {
	return []docs.Operation{
		{Method: http.MethodGet, Path: "/users", Summary: "List all users"},
		{Method: http.MethodGet, Path: "/users/{id}", Summary: "Get a user by id"},
		{Method: http.MethodPost, Path: "/users", Summary: "Create a user"},
		{Method: http.MethodPut, Path: "/users/{id}", Summary: "Update a user"},
		{Method: http.MethodDelete, Path: "/users/{id}", Summary: "Delete a user"},
	}
}

func TestDocumentContainsAllDeclaredPaths(t *testing.T) {
	doc, err := docs.Document(declaredOperations())
	require.NoError(t, err)

	require.NotNil(t, doc.Paths.Value("/users"))
	require.NotNil(t, doc.Paths.Value("/users/{id}"))

	users := doc.Paths.Value("/users")
	assert.NotNil(t, users.Get)
	assert.NotNil(t, users.Post)

	userByID := doc.Paths.Value("/users/{id}")
	assert.NotNil(t, userByID.Get)
	assert.NotNil(t, userByID.Put)
	assert.NotNil(t, userByID.Delete)
}

func TestDocumentDeclaresBodiesAndParameters(t *testing.T) {
	doc, err := docs.Document(declaredOperations())
	require.NoError(t, err)

	post := doc.Paths.Value("/users").Post
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Value.Required)

	get := doc.Paths.Value("/users/{id}").Get
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, "id", get.Parameters[0].Value.Name)
	assert.Equal(t, "path", get.Parameters[0].Value.In)
}

func TestDocumentMarshalsToJSON(t *testing.T) {
	doc, err := docs.Document(declaredOperations())
	require.NoError(t, err)

	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"User Registry API"`)
	assert.Contains(t, string(payload), `"/users/{id}"`)
}
