package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groqFixture(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGroqClient(srv.Client(), "test-key", "llama-3.1-8b-instant", 2*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestGroqClientComplete(t *testing.T) {
	c := groqFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-8b-instant", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hello traveler"}},
			},
		})
	})

	got, err := c.Complete(context.Background(), "be helpful", "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hello traveler", got)
}

func TestGroqClientRequiresAPIKey(t *testing.T) {
	c := NewGroqClient(http.DefaultClient, "", "llama-3.1-8b-instant", time.Second)

	_, err := c.Complete(context.Background(), "sys", "usr")
	assert.ErrorIs(t, err, errNoAPIKey)
}

func TestGroqClientServerError(t *testing.T) {
	c := groqFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Complete(context.Background(), "sys", "usr")
	assert.ErrorIs(t, err, errServerError)
}

func TestGroqClientRateLimited(t *testing.T) {
	c := groqFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "sys", "usr")
	assert.ErrorIs(t, err, errRateLimited)
}

func TestGroqClientEmptyChoices(t *testing.T) {
	c := groqFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	_, err := c.Complete(context.Background(), "sys", "usr")
	assert.ErrorIs(t, err, errEmptyChoice)
}
