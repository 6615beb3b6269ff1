package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ricotama/LAPORin/internal/model"
)

type stubSource struct {
	reports []model.ReportDTO
}

func (s *stubSource) Snapshot() []model.ReportDTO {
	return s.reports
}

func newTestClient() *Client {
	return &Client{Send: make(chan []byte, 4)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHubRegisterSendsInitialSnapshot(t *testing.T) {
	hub := NewHub()
	hub.SetSnapshotSource(&stubSource{reports: []model.ReportDTO{
		{ID: "r1", Title: "Jalan rusak", Category: "jalan"},
	}})
	go hub.Run()

	client := newTestClient()
	hub.Register <- client
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	select {
	case data := <-client.Send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("failed to decode event: %v", err)
		}
		if event.Type != EventReportSnapshot {
			t.Fatalf("expected %s, got %s", EventReportSnapshot, event.Type)
		}
		if event.Meta == nil || event.Meta.Total != 1 {
			t.Fatal("expected meta total of 1")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot received")
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	hub.SetSnapshotSource(&stubSource{})
	go hub.Run()

	a := newTestClient()
	b := newTestClient()
	hub.Register <- a
	hub.Register <- b
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	// Drain the greeting snapshots.
	<-a.Send
	<-b.Send

	hub.BroadcastSnapshot([]model.ReportDTO{{ID: "r1"}, {ID: "r2"}})

	for _, c := range []*Client{a, b} {
		select {
		case data := <-c.Send:
			var event Event
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("failed to decode event: %v", err)
			}
			if event.Meta.Total != 2 {
				t.Fatalf("expected total 2, got %d", event.Meta.Total)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("broadcast not received")
		}
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	hub.SetSnapshotSource(&stubSource{})
	go hub.Run()

	slow := &Client{Send: make(chan []byte)}
	hub.Register <- slow
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	// Nothing reads from slow.Send, so the first broadcast evicts it.
	hub.BroadcastSnapshot(nil)

	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	hub.SetSnapshotSource(&stubSource{})
	go hub.Run()

	client := newTestClient()
	hub.Register <- client
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister <- client
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestSnapshotEventNilReports(t *testing.T) {
	event := NewSnapshotEvent(nil, 123)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if string(decoded["payload"]) != "[]" {
		t.Fatalf("expected empty array payload, got %s", decoded["payload"])
	}
}
