package websocket

import "github.com/ricotama/LAPORin/internal/model"

type EventType string

// The stream carries one event kind: the full collection, resent wholesale on
// every change. Clients replace their local state with each payload.
const (
	EventReportSnapshot EventType = "report.snapshot"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	Meta    *EventMeta  `json:"meta,omitempty"`
}

type EventMeta struct {
	Timestamp int64 `json:"timestamp"`
	Total     int   `json:"total"`
}

func NewSnapshotEvent(reports []model.ReportDTO, at int64) Event {
	if reports == nil {
		reports = []model.ReportDTO{}
	}
	return Event{
		Type:    EventReportSnapshot,
		Payload: reports,
		Meta: &EventMeta{
			Timestamp: at,
			Total:     len(reports),
		},
	}
}
