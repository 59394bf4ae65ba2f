package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
)

const testToken = "123456:test-token"

const planResponse = `{
  "object": "list",
  "results": [{
    "id": "p1",
    "properties": {
      "Ders": {"type": "select", "select": {"name": "Matematik"}},
      "Konu": {"type": "title", "title": [{"type": "text", "plain_text": "Türev", "text": {"content": "Türev"}}]},
      "Süre": {"type": "number", "number": 90}
    }
  }],
  "has_more": false,
  "next_cursor": null
}`

const progressResponse = `{
  "object": "list",
  "results": [{
    "id": "r1",
    "properties": {
      "Paragraf ✅": {"type": "checkbox", "checkbox": true},
      "Blok 1-2 ✅": {"type": "checkbox", "checkbox": false}
    }
  }],
  "has_more": false
}`

type telegramMessage struct {
	text      string
	parseMode string
}

type fakeTelegram struct {
	mu   sync.Mutex
	msgs []telegramMessage
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/bot"+testToken+"/sendMessage" {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.msgs = append(f.msgs, telegramMessage{
		text:      r.FormValue("text"),
		parseMode: strings.Trim(r.FormValue("parse_mode"), `"`),
	})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":42,"type":"private"}}}`)
}

func (f *fakeTelegram) messages() []telegramMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]telegramMessage(nil), f.msgs...)
}

// setupEnv points both upstreams at fakes. notionStatus other than 200 makes
// every Notion query fail with that status.
func setupEnv(t *testing.T, notionStatus int) *fakeTelegram {
	t.Helper()

	notionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if notionStatus != http.StatusOK {
			w.WriteHeader(notionStatus)
			fmt.Fprint(w, `{"object":"error","status":500,"code":"internal_server_error"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/databases/plan-db/query":
			fmt.Fprint(w, planResponse)
		case "/v1/databases/progress-db/query":
			fmt.Fprint(w, progressResponse)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(notionSrv.Close)

	tg := &fakeTelegram{}
	tgSrv := httptest.NewServer(tg)
	t.Cleanup(tgSrv.Close)

	for _, name := range []string{"PROGRESS_DATABASE_ID", "TELEGRAM_CHAT_ID", "TELEGRAM_LISTEN", "TZ_NAME", "LOG_JSON", "NOTION_TIMEOUT", "NOTION_VERSION"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("NOTION_TOKEN", "secret_test")
	t.Setenv("NOTION_BASE_URL", notionSrv.URL)
	t.Setenv("DATABASE_ID", "plan-db")
	t.Setenv("PROGRESS_DATABASE_ID", "progress-db")
	t.Setenv("TELEGRAM_TOKEN", testToken)
	t.Setenv("TELEGRAM_SERVER_URL", tgSrv.URL)
	t.Setenv("CHAT_ID", "42")
	t.Setenv("LOG_LEVEL", "error")
	t.Chdir(t.TempDir())

	return tg
}

func TestRun_Digest(t *testing.T) {
	tg := setupEnv(t, http.StatusOK)

	if code := run(context.Background(), []string{"digest"}); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	msgs := tg.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	for _, want := range []string{"🧮 *Matematik* (90 dk)", "└ _Türev_", "⏱️ *Toplam:* 1 saat 30 dakika"} {
		if !strings.Contains(msgs[0].text, want) {
			t.Errorf("digest = %q, want it to contain %q", msgs[0].text, want)
		}
	}
	if msgs[0].parseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want Markdown", msgs[0].parseMode)
	}
}

func TestRun_DefaultCommandSendsDigest(t *testing.T) {
	tg := setupEnv(t, http.StatusOK)

	if code := run(context.Background(), nil); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if msgs := tg.messages(); len(msgs) != 1 || !strings.Contains(msgs[0].text, "KPSS Günlük Plan") {
		t.Errorf("messages = %+v, want one digest", msgs)
	}
}

func TestRun_Progress(t *testing.T) {
	tg := setupEnv(t, http.StatusOK)

	if code := run(context.Background(), []string{"progress"}); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	msgs := tg.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	if strings.Contains(msgs[0].text, "❌ Paragraf") {
		t.Errorf("alert lists a completed item: %q", msgs[0].text)
	}
	for _, want := range []string{"❌ Blok 1-2", "❌ Blok 3-4"} {
		if !strings.Contains(msgs[0].text, want) {
			t.Errorf("alert = %q, want it to contain %q", msgs[0].text, want)
		}
	}
	if msgs[0].parseMode != "" {
		t.Errorf("parse_mode = %q, want none", msgs[0].parseMode)
	}
}

func TestRun_UpstreamFailureExitsZero(t *testing.T) {
	tg := setupEnv(t, http.StatusInternalServerError)

	if code := run(context.Background(), []string{"digest"}); code != 0 {
		t.Fatalf("digest run() = %d, want 0", code)
	}
	if code := run(context.Background(), []string{"progress"}); code != 0 {
		t.Fatalf("progress run() = %d, want 0", code)
	}

	msgs := tg.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want only the no-tasks digest", len(msgs))
	}
	if !strings.Contains(msgs[0].text, "planlı bir çalışman yok") {
		t.Errorf("text = %q, want the no-tasks message", msgs[0].text)
	}
}

func TestRun_ConfigErrorExitsOne(t *testing.T) {
	tg := setupEnv(t, http.StatusOK)
	t.Setenv("LOG_LEVEL", "verbose")

	if code := run(context.Background(), []string{"digest"}); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if n := len(tg.messages()); n != 0 {
		t.Errorf("sent %d messages on config error", n)
	}
}

func TestRun_UnknownCommandExitsOne(t *testing.T) {
	setupEnv(t, http.StatusOK)

	if code := run(context.Background(), []string{"bogus"}); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
