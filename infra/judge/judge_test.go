package judge

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

func TestCheckParsesVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "Animal")
		assert.Contains(t, req.Messages[1].Content, "kangaroo")

		resp := map[string]interface{}{
			"message": map[string]string{
				"content": `{"correct": true, "explanation": "kangaroo is an animal"}`,
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model", 5*time.Second)
	verdict, err := client.Check(context.Background(), "Animal", "K", "kangaroo")
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
	assert.Equal(t, "kangaroo is an animal", verdict.Explanation)
}

func TestCheckRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"upstream error", `{}`, http.StatusInternalServerError},
		{"empty content", `{"message":{"content":""}}`, http.StatusOK},
		{"non-json verdict", `{"message":{"content":"maybe?"}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-model", 5*time.Second)
			_, err := client.Check(context.Background(), "Animal", "K", "kangaroo")
			require.Error(t, err)
		})
	}
}
