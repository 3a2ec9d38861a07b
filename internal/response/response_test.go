// internal/response/response_test.go
package response_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/response"
)

func TestSuccessEnvelope(t *testing.T) {
	payload := "hello"
	res := response.Success("it worked", &payload, http.StatusOK)

	assert.True(t, res.Success)
	assert.Equal(t, "it worked", res.Message)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, res.ResponseObject)
	assert.Equal(t, "hello", *res.ResponseObject)
}

func TestFailureEnvelopeSerializesNullPayload(t *testing.T) {
	res := response.Failure[string]("it failed", http.StatusNotFound)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"it failed","responseObject":null,"statusCode":404}`, string(data))
}

func TestSuccessWithoutPayload(t *testing.T) {
	res := response.Success[struct{}]("deleted", nil, http.StatusNoContent)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"deleted","responseObject":null,"statusCode":204}`, string(data))
}
