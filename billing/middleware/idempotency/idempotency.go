package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"rentbill.app/billing/model"
)

const HeaderName = "X-Idempotency-Key"

// IdempotencyMiddleware replays the stored response of a completed request
// carrying the same key, and rejects concurrent duplicates.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markAsProcessing(req.Context(), cacheKey, bodyHash); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				deleteCacheEntry(req.Context(), cacheKey)
			} else {
				markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
			}

			return response
		}

		rlog.Error("idempotency cache lookup failed", "key", idempotencyKey, "error", cacheErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(HeaderName))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash fingerprints the decoded payload for conflict detection
func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(bodyBytes)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		return handleProcessingEntry(idempotencyKey)
	case model.IdempotencyCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// validateBodyHash rejects a reused key whose payload differs
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func handleProcessingEntry(idempotencyKey string) middleware.Response {
	rlog.Info("concurrent request detected", "key", idempotencyKey)
	return middleware.Response{Err: alreadyProcessing()}
}

func alreadyProcessing() *errs.Error {
	return &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}
}

// handleCompletedEntry decodes the cached payload into the endpoint's response type
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		if api := req.Data().API; api != nil && api.ResponseType != nil {
			responseValue := reflect.New(api.ResponseType.Elem()).Interface()

			err := json.Unmarshal(entry.Response, responseValue)
			if err == nil {
				rlog.Info("returning cached response", "key", idempotencyKey)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to decode cached response", "key", idempotencyKey, "error", err)
		}
	}

	// corrupted or empty entry: treat as a new request
	return next(req)
}

// markAsProcessing claims the key. Two requests racing past the lookup both
// try to claim it and only one succeeds.
func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) *errs.Error {
	err := IdempotencyCache.With(cache.ExpireIn(processingExpiry)).SetIfNotExists(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	if errors.Is(err, cache.KeyExists) {
		rlog.Info("concurrent request detected", "key", cacheKey.Key)
		return alreadyProcessing()
	}
	if err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteCacheEntry removes the processing entry so the client can retry
func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	now := time.Now()
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, completedEntry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
		return
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

// hashing returns the hex sha256 of body, or "" for an empty body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
