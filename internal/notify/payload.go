package notify

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/hamed0406/linkwatch/internal/domain"
)

const agentName = "linkwatch"

// Zero-time sentinel: tells Alertmanager the alert is still firing.
const amEndsAtOngoing = "0001-01-01T00:00:00Z"

// BuildPayload renders the JSON body for one problem outcome in the shape
// the destination service expects. timestamp is RFC 3339.
func BuildPayload(service Service, result domain.CheckResult, timestamp string) ([]byte, error) {
	switch service {
	case Discord:
		return buildDiscordPayload(result, timestamp)
	case Slack, Zulip:
		// Zulip's slack_incoming endpoint is wire-compatible with Slack.
		return buildSlackPayload(result, timestamp)
	default:
		return buildGenericPayload(result, timestamp)
	}
}

// Discord embed payload.

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []discordField `json:"fields"`
	Timestamp   string         `json:"timestamp"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

func buildDiscordPayload(result domain.CheckResult, timestamp string) ([]byte, error) {
	p := discordPayload{
		Embeds: []discordEmbed{{
			Title:       "🔗 Link Check Failed",
			Description: "**" + result.URL + "**",
			Color:       SeverityFor(result).Color(),
			Fields: []discordField{{
				Name:   "Status",
				Value:  result.Description(),
				Inline: true,
			}},
			Timestamp: timestamp,
		}},
	}
	return json.Marshal(p)
}

// Slack Block Kit payload (also used for Zulip).

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func buildSlackPayload(result domain.CheckResult, timestamp string) ([]byte, error) {
	p := slackPayload{
		// Fallback text for notifications and clients without Block Kit.
		Text: fmt.Sprintf("Link Check Failed: %s - %s", result.URL, result.Description()),
		Blocks: []slackBlock{
			{Type: "header", Text: &slackText{Type: "plain_text", Text: "🔗 Link Check Failed"}},
			{Type: "divider"},
			{Type: "section", Fields: []slackText{
				{Type: "mrkdwn", Text: "*URL:*\n" + result.URL},
				{Type: "mrkdwn", Text: "*Status:*\n" + result.Description()},
			}},
			{Type: "divider"},
			{Type: "context", Elements: []slackText{
				{Type: "mrkdwn", Text: fmt.Sprintf("Time: %s | Agent: %s", timestamp, agentName)},
			}},
		},
	}
	return json.Marshal(p)
}

// Alertmanager v4 payload for generic/observability consumers.

type amPayload struct {
	Version           string        `json:"version"`
	GroupKey          string        `json:"groupKey"`
	TruncatedAlerts   int           `json:"truncatedAlerts"`
	Status            string        `json:"status"`
	Receiver          string        `json:"receiver"`
	GroupLabels       amLabels      `json:"groupLabels"`
	CommonLabels      amLabels      `json:"commonLabels"`
	CommonAnnotations amAnnotations `json:"commonAnnotations"`
	ExternalURL       string        `json:"externalURL"`
	Alerts            []amAlert     `json:"alerts"`
}

type amLabels struct {
	Alertname string `json:"alertname"`
	Severity  string `json:"severity,omitempty"`
	Service   string `json:"service,omitempty"`
	Instance  string `json:"instance,omitempty"`
	Job       string `json:"job,omitempty"`
}

type amAnnotations struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type amAlert struct {
	Status       string        `json:"status"`
	Labels       amLabels      `json:"labels"`
	Annotations  amAnnotations `json:"annotations"`
	StartsAt     string        `json:"startsAt"`
	EndsAt       string        `json:"endsAt"`
	GeneratorURL string        `json:"generatorURL"`
	Fingerprint  string        `json:"fingerprint"`
}

func buildGenericPayload(result domain.CheckResult, timestamp string) ([]byte, error) {
	severity := SeverityFor(result).Label()
	fingerprint := Fingerprint(result.URL)

	p := amPayload{
		Version:         "4",
		GroupKey:        agentName + "/" + fingerprint,
		TruncatedAlerts: 0,
		Status:          "firing",
		Receiver:        "webhook",
		GroupLabels:     amLabels{Alertname: "LinkCheckFailed"},
		CommonLabels: amLabels{
			Alertname: "LinkCheckFailed",
			Severity:  severity,
			Service:   agentName,
		},
		CommonAnnotations: amAnnotations{
			Summary:     "Link availability check failed",
			Description: "External resource check detected a failure",
		},
		ExternalURL: "https://github.com/hamed0406/linkwatch",
		Alerts: []amAlert{{
			Status: "firing",
			Labels: amLabels{
				Alertname: "LinkCheckFailed",
				Severity:  severity,
				Service:   agentName,
				Instance:  result.URL,
				Job:       "link-checker",
			},
			Annotations: amAnnotations{
				Summary:     "Link check failed for " + result.URL,
				Description: result.Description(),
			},
			StartsAt:     timestamp,
			EndsAt:       amEndsAtOngoing,
			GeneratorURL: "https://github.com/hamed0406/linkwatch",
			Fingerprint:  fingerprint,
		}},
	}
	return json.Marshal(p)
}

// Fingerprint derives a deterministic 16-hex-digit grouping key from a URL
// so downstream dedup tooling can correlate repeated alerts for the same
// resource. Polynomial rolling hash, not cryptographic.
func Fingerprint(url string) string {
	var hash uint64
	for _, b := range []byte(url) {
		hash = hash*31 + uint64(b)
	}
	return fmt.Sprintf("%016x", hash)
}
