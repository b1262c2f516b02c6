// Package notify delivers check failures to an operator webhook. It detects
// which chat/alerting service a webhook URL belongs to and renders the
// payload shape that service expects.
package notify

import "strings"

// Service is the closed set of supported webhook destinations.
type Service int

const (
	// Generic is the fallback: an Alertmanager-v4-shaped JSON consumer.
	Generic Service = iota
	// Discord webhooks (discord.com / discordapp.com).
	Discord
	// Slack incoming webhooks.
	Slack
	// Zulip via its Slack-compatible incoming webhook endpoint.
	Zulip
)

func (s Service) String() string {
	switch s {
	case Discord:
		return "Discord"
	case Slack:
		return "Slack"
	case Zulip:
		return "Zulip"
	default:
		return "Generic"
	}
}

// ParseService resolves an explicit configuration override like "slack".
// Matching is case-insensitive; ok is false for unrecognized names.
func ParseService(name string) (Service, bool) {
	switch strings.ToLower(name) {
	case "discord":
		return Discord, true
	case "slack":
		return Slack, true
	case "zulip":
		return Zulip, true
	case "generic":
		return Generic, true
	default:
		return Generic, false
	}
}

// ServiceFromURL detects the destination service by case-insensitive
// substring match on known domains/paths. Precedence: Discord, then Slack,
// then Zulip, else Generic.
func ServiceFromURL(url string) Service {
	u := strings.ToLower(url)
	switch {
	case strings.Contains(u, "discord.com") || strings.Contains(u, "discordapp.com"):
		return Discord
	case strings.Contains(u, "hooks.slack.com") || strings.Contains(u, "slack.com/api/"):
		return Slack
	case strings.Contains(u, "zulipchat.com") || strings.Contains(u, "/external/slack_incoming"):
		return Zulip
	default:
		return Generic
	}
}
