package notify

import "github.com/hamed0406/linkwatch/internal/domain"

// Severity orders problem outcomes for rendering. A digest mismatch always
// outranks every HTTP/network failure: a fetch that succeeds but returns
// content off the pin is a tamper/drift signal, not an outage.
type Severity int

const (
	SeverityFailure Severity = iota // default failure tier
	SeverityNetwork
	SeverityClientError
	SeverityServerError
	SeverityCritical // digest mismatch
)

// SeverityFor classifies a problem outcome.
func SeverityFor(r domain.CheckResult) Severity {
	if r.DigestOK != nil && !*r.DigestOK {
		return SeverityCritical
	}
	switch r.Reason {
	case domain.ReasonHTTPError:
		if r.StatusCode >= 500 {
			return SeverityServerError
		}
		return SeverityClientError
	case domain.ReasonFetchFailed:
		return SeverityNetwork
	default:
		return SeverityFailure
	}
}

// Color is the Discord embed color for this tier.
func (s Severity) Color() int {
	switch s {
	case SeverityCritical:
		return 10038562 // dark red #992D22
	case SeverityClientError:
		return 15105570 // orange #E67E22
	case SeverityNetwork:
		return 15158332 // red-orange
	default:
		return 15548997 // red #ED4245 (server error and default)
	}
}

// Label is the Alertmanager severity label. The wire format only
// distinguishes critical from warning; the finer tiers drive colors.
func (s Severity) Label() string {
	if s == SeverityCritical {
		return "critical"
	}
	return "warning"
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityServerError:
		return "server_error"
	case SeverityClientError:
		return "client_error"
	case SeverityNetwork:
		return "network"
	default:
		return "failure"
	}
}
