package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrSchemaViolation is returned when a structured response is missing required fields.
var ErrSchemaViolation = errors.New("response does not match schema")

// ErrNoImage is returned when image generation succeeds but yields no image.
var ErrNoImage = errors.New("no image generated")

// ErrFileProcessingFailed is returned when an uploaded file ends in a failed state.
var ErrFileProcessingFailed = errors.New("file processing failed")

// ErrUnsupported is returned by providers that lack a capability.
var ErrUnsupported = errors.New("operation not supported by provider")
