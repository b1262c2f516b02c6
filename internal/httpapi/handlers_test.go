package httpapi

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/domain"
	"github.com/hamed0406/linkwatch/internal/notify"
	"github.com/hamed0406/linkwatch/internal/probe"
	"github.com/hamed0406/linkwatch/internal/scheduler"
)

func digestOf(content []byte) string {
	sum := sha256.Sum256(content)
	return "sha256-" + base64.StdEncoding.EncodeToString(sum[:])
}

func setupServer(t *testing.T, resources []domain.Resource, webhookURL string) *httptest.Server {
	t.Helper()
	log := zap.NewNop()
	chk := probe.NewChecker(2*time.Second, log)
	rt := notify.NewRouter(webhookURL, "", log)
	cycle := scheduler.NewCycle(log, resources, chk, rt, 4, 2*time.Second)

	srv := NewServer(log, resources, cycle, rt, "adm_test")
	ts := httptest.NewServer(srv.Router(10_000, 10_000))
	t.Cleanup(ts.Close)
	return ts
}

func TestStatus_ListsResources(t *testing.T) {
	resources := []domain.Resource{
		{URL: "https://example.com/app.js", Digest: "sha256-uU0nuZNNPgilLlLX2n2r+sSE7+N6U4DukIj3rOLvzek="},
	}
	ts := setupServer(t, resources, "")

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var status struct {
		Status    string            `json:"status"`
		Agent     string            `json:"agent"`
		Version   string            `json:"version"`
		Resources []domain.Resource `json:"resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Status != "healthy" || status.Agent != "linkwatch" {
		t.Fatalf("unexpected status body: %+v", status)
	}
	if len(status.Resources) != 1 || status.Resources[0].URL != resources[0].URL {
		t.Fatalf("resources not surfaced: %+v", status.Resources)
	}
}

func TestManualCheck_RequiresToken(t *testing.T) {
	ts := setupServer(t, nil, "")

	// no token -> 401
	resp, err := http.Post(ts.URL+"/api/check", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 without token, got %d", resp.StatusCode)
	}

	// wrong token -> 401
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/check", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 with wrong token, got %d", resp2.StatusCode)
	}
}

func TestManualCheck_RunsCycle(t *testing.T) {
	body := []byte("asset body")
	res := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer res.Close()

	ts := setupServer(t, []domain.Resource{{URL: res.URL, Digest: digestOf(body)}}, "")

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/check", nil)
	req.Header.Set("Authorization", "Bearer adm_test")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var sum scheduler.Summary
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Total != 1 || sum.OK != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestNotifyTest_SendsThroughWebhook(t *testing.T) {
	hits := 0
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(200)
	}))
	defer hook.Close()

	ts := setupServer(t, nil, hook.URL)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/notify/test", nil)
	req.Header.Set("Authorization", "Bearer adm_test")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if hits != 1 {
		t.Fatalf("want one webhook delivery, got %d", hits)
	}
}
