package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"

	"rentbill.app/billing/model"
)

func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{HeaderName: []string{"2c7a1f9e-3b1d-4d4e-9a55-7f0b8d1e2a10"}},
			expectedKey: "2c7a1f9e-3b1d-4d4e-9a55-7f0b8d1e2a10",
		},
		{
			name:        "surrounding_whitespace_is_trimmed",
			headers:     http.Header{HeaderName: []string{"  bill-key-1 "}},
			expectedKey: "bill-key-1",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{HeaderName: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{HeaderName: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{HeaderName: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/billing", tc.headers, nil)

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashing(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
		{
			name:     "bill_payload",
			input:    []byte(`{"billing_month":"2024-06"}`),
			expected: "cb60f1042a83b598f052bcc38f120141e55b987c5ee405b213f103fce3f53a40",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashing(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestHashing_DifferentInputsDiffer(t *testing.T) {
	a := hashing([]byte(`{"contract_id":"c-1"}`))
	b := hashing([]byte(`{"contract_id":"c-2"}`))

	assert.Regexp(t, "^[a-f0-9]{64}$", a)
	assert.NotEqual(t, a, b)
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		bodyHash      string
		expectedError string
	}{
		{
			name:     "matching_hashes",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "abc123",
		},
		{
			name:     "empty_cached_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{},
			bodyHash: "abc123",
		},
		{
			name:     "empty_new_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict: request body does not match previous request",
		},
		{
			name:          "case_sensitive_hash_comparison",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "ABC123"},
			bodyHash:      "abc123",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestHandleProcessingEntry(t *testing.T) {
	response := handleProcessingEntry("bill-key-1")

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "request is already being processed")
	}
	assert.Nil(t, response.Payload)
}

func TestHandleExistingEntry_ConflictSkipsNext(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/billing", http.Header{HeaderName: []string{"k"}}, nil)
	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{}
	}

	entry := model.IdempotencyCacheEntry{Status: model.IdempotencyCompleted, RequestBodyHash: "old"}
	response := handleExistingEntry(req, next, entry, "new", "k")

	assert.NotNil(t, response.Err)
	assert.False(t, nextCalled)
}

func TestHandleExistingEntry_CompletedWithoutResponseRunsNext(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/billing", http.Header{HeaderName: []string{"k"}}, nil)
	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: map[string]int{"id": 7}}
	}

	entry := model.IdempotencyCacheEntry{Status: model.IdempotencyCompleted}
	response := handleExistingEntry(req, next, entry, "", "k")

	assert.Nil(t, response.Err)
	assert.True(t, nextCalled)
	assert.Equal(t, map[string]int{"id": 7}, response.Payload)
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/billing", http.Header{}, map[string]interface{}{"contract_id": "c-1"})

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: map[string]interface{}{"id": 1}}
	}

	response := IdempotencyMiddleware(req, next)

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled)
	assert.Nil(t, response.Payload)
}
