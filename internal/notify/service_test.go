package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceFromURL(t *testing.T) {
	cases := map[string]Service{
		"https://discord.com/api/webhooks/123/abc":                         Discord,
		"https://discordapp.com/api/webhooks/123/abc":                      Discord,
		"https://DISCORD.com/api/webhooks/123/abc":                         Discord,
		"https://hooks.slack.com/services/T00/B00/xxx":                     Slack,
		"https://myteam.slack.com/api/chat.postMessage":                    Slack,
		"https://example.zulipchat.com/api/v1/external/slack_incoming":     Zulip,
		"https://chat.company.com/api/v1/external/slack_incoming?api_key=": Zulip,
		"https://example.com/webhook":                                      Generic,
	}
	for url, want := range cases {
		assert.Equal(t, want, ServiceFromURL(url), "url %s", url)
	}
}

func TestServiceFromURL_DiscordPrecedence(t *testing.T) {
	// A URL matching both Discord and Slack substrings resolves to Discord.
	url := "https://discord.com/forward?to=hooks.slack.com"
	assert.Equal(t, Discord, ServiceFromURL(url))
}

func TestParseService(t *testing.T) {
	for _, name := range []string{"discord", "Discord", "DISCORD"} {
		svc, ok := ParseService(name)
		assert.True(t, ok)
		assert.Equal(t, Discord, svc)
	}

	svc, ok := ParseService("slack")
	assert.True(t, ok)
	assert.Equal(t, Slack, svc)

	svc, ok = ParseService("zulip")
	assert.True(t, ok)
	assert.Equal(t, Zulip, svc)

	svc, ok = ParseService("generic")
	assert.True(t, ok)
	assert.Equal(t, Generic, svc)

	_, ok = ParseService("pagerduty")
	assert.False(t, ok)
}

func TestServiceString(t *testing.T) {
	assert.Equal(t, "Discord", Discord.String())
	assert.Equal(t, "Slack", Slack.String())
	assert.Equal(t, "Zulip", Zulip.String())
	assert.Equal(t, "Generic", Generic.String())
}
