package domain

import "fmt"

// FailureReason classifies why a check failed. Checked in a fixed order:
// config validity first, then transport, then status, then body readability.
type FailureReason string

const (
	ReasonNone          FailureReason = ""
	ReasonInvalidDigest FailureReason = "invalid_digest"
	ReasonFetchFailed   FailureReason = "fetch_failed"
	ReasonHTTPError     FailureReason = "http_error"
	ReasonBodyRead      FailureReason = "body_read_failed"
)

// CheckResult is the outcome of checking one resource.
//
// StatusCode is 0 when no HTTP status was obtained (transport failures).
// DigestOK is nil unless the body was actually verified; Success only says
// the HTTP layer worked, a mismatch still reports Success=true.
type CheckResult struct {
	URL        string        `json:"url"`
	Success    bool          `json:"success"`
	StatusCode int           `json:"http_status,omitempty"`
	Reason     FailureReason `json:"reason,omitempty"`
	DigestOK   *bool         `json:"digest_ok,omitempty"`
}

// Succeeded builds the result of a completed fetch+verify.
func Succeeded(url string, status int, digestOK bool) CheckResult {
	return CheckResult{
		URL:        url,
		Success:    true,
		StatusCode: status,
		DigestOK:   &digestOK,
	}
}

// Failed builds a failure result. statusCode is only meaningful for
// ReasonHTTPError and must be 0 otherwise.
func Failed(url string, reason FailureReason, statusCode int) CheckResult {
	return CheckResult{
		URL:        url,
		Success:    false,
		StatusCode: statusCode,
		Reason:     reason,
	}
}

// HasProblem reports whether this result should be alerted on:
// any failure, or a successful fetch whose digest did not match the pin.
func (r CheckResult) HasProblem() bool {
	return !r.Success || (r.DigestOK != nil && !*r.DigestOK)
}

// Description renders a short human-readable outcome for notifications.
// Failure text comes from the closed reason set, never from raw transport
// errors, so nothing internal leaks into outbound payloads.
func (r CheckResult) Description() string {
	switch {
	case !r.Success:
		return "Failed: " + r.Reason.Text(r.StatusCode)
	case r.DigestOK != nil && !*r.DigestOK:
		return fmt.Sprintf("SRI mismatch (HTTP %d)", r.StatusCode)
	default:
		return fmt.Sprintf("OK (HTTP %d)", r.StatusCode)
	}
}

// Text is the fixed human-readable form of a reason. statusCode is only
// used for ReasonHTTPError.
func (fr FailureReason) Text(statusCode int) string {
	switch fr {
	case ReasonInvalidDigest:
		return "Invalid SRI format"
	case ReasonFetchFailed:
		return "Fetch failed"
	case ReasonHTTPError:
		return fmt.Sprintf("HTTP error: %d", statusCode)
	case ReasonBodyRead:
		return "Failed to read response body"
	default:
		return string(fr)
	}
}
