// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	token := strings.TrimSpace(os.Getenv("ACCESS_TOKEN"))
	resources := strings.TrimSpace(os.Getenv("RESOURCES_FILE"))
	webhook := strings.TrimSpace(os.Getenv("WEBHOOK_URL"))
	service := strings.TrimSpace(os.Getenv("WEBHOOK_SERVICE"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))

	if token == "" {
		warn("ACCESS_TOKEN is empty — admin endpoints will rely on the build-time token.")
	} else {
		ok("ACCESS_TOKEN present")
	}

	if resources == "" {
		warn("RESOURCES_FILE empty — default resources.yaml will be used.")
	} else if _, err := os.Stat(resources); err != nil {
		fail("RESOURCES_FILE points to a missing file: " + resources)
	} else {
		ok("RESOURCES_FILE=" + resources)
	}

	if webhook == "" {
		warn("WEBHOOK_URL empty — problems will be logged but nobody gets notified.")
	} else {
		ok("WEBHOOK_URL present")
	}

	if service != "" {
		switch strings.ToLower(service) {
		case "discord", "slack", "zulip", "generic":
			ok("WEBHOOK_SERVICE=" + service)
		default:
			warn("WEBHOOK_SERVICE '" + service + "' is unknown; agent will fall back to URL detection.")
		}
	}

	if addr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + addr)
	}

	ok("preflight passed")
}
