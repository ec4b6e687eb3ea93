package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessionNavigate(t *testing.T) {
	env := newTestEnv(t, nil)
	conn := dial(t, env)

	if err := conn.WriteJSON(ClientFrame{Type: FrameNavigate, Path: "/import/logs"}); err != nil {
		t.Fatal(err)
	}

	render := readFrame(t, conn)
	if render.Type != FrameRender || render.Path != "/import/logs" {
		t.Fatalf("first frame = %+v, want render", render)
	}
	if !strings.Contains(render.HTML, "<h1>Logs</h1>") || !strings.Contains(render.HTML, `id="app-root"`) {
		t.Errorf("render html = %s", render.HTML)
	}

	title := readFrame(t, conn)
	if title.Type != FrameTitle || title.Title != "Import Logs" {
		t.Fatalf("second frame = %+v, want title", title)
	}

	focus := readFrame(t, conn)
	if focus.Type != FrameFocus || focus.ID != "primary-app-container" {
		t.Fatalf("third frame = %+v, want focus", focus)
	}
}

func TestSessionNotFoundHasNoFocus(t *testing.T) {
	env := newTestEnv(t, nil)
	conn := dial(t, env)

	// The first navigation arms a retarget that the not-found navigation
	// must cancel before it fires.
	for _, p := range []string{"/", "/missing"} {
		if err := conn.WriteJSON(ClientFrame{Type: FrameNavigate, Path: p}); err != nil {
			t.Fatal(err)
		}
	}

	var frames []ServerFrame
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	for {
		var f ServerFrame
		if err := conn.ReadJSON(&f); err != nil {
			break
		}
		frames = append(frames, f)
	}

	var titles []string
	for _, f := range frames {
		switch f.Type {
		case FrameTitle:
			titles = append(titles, f.Title)
		case FrameFocus:
			// A focus frame may only appear if the timer won the race
			// against the second navigation, and then only before it.
			if len(titles) != 1 {
				t.Errorf("focus frame after not-found title: %+v", frames)
			}
		}
	}
	if len(titles) != 2 || titles[1] != "404 Page Not Found" {
		t.Errorf("titles = %v", titles)
	}
}

func TestSessionMalformedFrame(t *testing.T) {
	env := newTestEnv(t, nil)
	conn := dial(t, env)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	f := readFrame(t, conn)
	if f.Type != FrameErrorType || f.Code != "E401" {
		t.Errorf("frame = %+v, want E401 error", f)
	}

	if err := conn.WriteJSON(ClientFrame{Type: "teleport"}); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if f.Type != FrameErrorType || f.Code != "E401" {
		t.Errorf("frame = %+v, want E401 error", f)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, &ServerConfig{MaxSessions: 1})
	conn := dial(t, env)

	waitFor(t, func() bool { return env.srv.SessionCount() == 1 })

	expected := `
# HELP logsviewer_active_sessions Number of live navigation sessions
# TYPE logsviewer_active_sessions gauge
logsviewer_active_sessions 1
`
	if err := testutil.GatherAndCompare(env.reg, strings.NewReader(expected), "logsviewer_active_sessions"); err != nil {
		t.Error(err)
	}

	url := "ws" + strings.TrimPrefix(env.http.URL, "http") + WebSocketPath
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("second session should be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("second session response = %v", resp)
	}

	conn.Close()
	waitFor(t, func() bool { return env.srv.SessionCount() == 0 })

	expected = strings.Replace(expected, "sessions 1", "sessions 0", 1)
	if err := testutil.GatherAndCompare(env.reg, strings.NewReader(expected), "logsviewer_active_sessions"); err != nil {
		t.Error(err)
	}
}

func TestSessionCloseCancelsRetarget(t *testing.T) {
	env := newTestEnv(t, nil)
	dial(t, env)
	waitFor(t, func() bool { return env.srv.SessionCount() == 1 })

	var s *Session
	env.srv.sessionsMu.Lock()
	for _, session := range env.srv.sessions {
		s = session
	}
	env.srv.sessionsMu.Unlock()

	s.Close()
	s.Close()
	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if s.pipeline.Pending() {
		t.Error("pipeline still pending after Close")
	}
	if err := s.QueueFrame(ClientFrame{Type: FrameNavigate, Path: "/"}); err != ErrSessionClosed {
		t.Errorf("QueueFrame after Close = %v, want ErrSessionClosed", err)
	}
	select {
	case <-s.Done():
	default:
		t.Error("Done() not closed")
	}
	waitFor(t, func() bool { return env.srv.SessionCount() == 0 })
}
