// Package ws streams live frames and game snapshots to read-only
// websocket spectators.
package ws

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/pong"
)

// Wire formats a spectator can ask for with ?format=.
const (
	FormatJSON  = "json"
	FormatProto = "proto"
)

// Message is one update sent to spectators.
type Message struct {
	Type        string        `json:"type"` // "frame"
	Snapshot    pong.Snapshot `json:"snapshot"`
	Celebrating bool          `json:"celebrating"`
	Event       string        `json:"event,omitempty"`  // "goal", "win", "serve"
	Player      int           `json:"player,omitempty"` // Scorer or winner, 1-based
	Track       []string      `json:"track"`            // Hex colors in LED wiring order
	Strips      [2][]string   `json:"strips"`
}

// NewMessage converts an engine step into a spectator message.
func NewMessage(step engine.Step) Message {
	msg := Message{
		Type:        "frame",
		Snapshot:    step.Snapshot,
		Celebrating: step.Celebrating,
		Track:       hexColors(step.Frame.Track),
	}
	for i, s := range step.Frame.Strips {
		msg.Strips[i] = hexColors(s)
	}

	ev := step.Events
	switch {
	case ev.Win:
		msg.Event, msg.Player = "win", ev.Winner.Number()
	case ev.Goal:
		msg.Event, msg.Player = "goal", ev.Scorer.Number()
	case ev.Serve:
		msg.Event = "serve"
	}
	return msg
}

func hexColors(colors []core.RGB) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

// Encode serializes the message in the given format.
func (m Message) Encode(format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.Marshal(m)
	case FormatProto:
		s, err := m.Struct()
		if err != nil {
			return nil, err
		}
		return proto.Marshal(s)
	default:
		return nil, fmt.Errorf("ws: unknown format %q", format)
	}
}

// Struct returns the message as a protobuf Struct, going through its JSON
// form so both formats carry the same field names.
func (m Message) Struct() (*structpb.Struct, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("ws: build struct: %w", err)
	}
	return s, nil
}
