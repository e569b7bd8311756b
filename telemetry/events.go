// Package telemetry provides the event log, population statistics, reports and run output.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pthm-cable/habitat/components"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventMove EventType = iota
	EventHunt
	EventBirth
)

// String returns a short lowercase name for the event type.
func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventHunt:
		return "hunt"
	case EventBirth:
		return "birth"
	default:
		return "unknown"
	}
}

// Actor identifies an entity and where it stood when the event happened.
type Actor struct {
	ID      uint32
	Species components.Species
	Pos     components.Position
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int32

	// Subject is the mover, the credited predator, or the newborn.
	Subject Actor
	// Target is the prey for hunts and the mother for births.
	Target Actor
	// Partner is the father for births.
	Partner Actor

	// Movement only
	From      components.Position
	Allowed   int // Steps granted from the budget
	Remaining int // Budget left after this entity moved
}

// NewMoveEvent creates a movement summary. subject.Pos is the final position.
func NewMoveEvent(tick int32, subject Actor, from components.Position, allowed, remaining int) Event {
	return Event{
		Type:      EventMove,
		Tick:      tick,
		Subject:   subject,
		From:      from,
		Allowed:   allowed,
		Remaining: remaining,
	}
}

// NewHuntEvent creates a hunting event crediting predator with prey.
func NewHuntEvent(tick int32, predator, prey Actor) Event {
	return Event{
		Type:    EventHunt,
		Tick:    tick,
		Subject: predator,
		Target:  prey,
	}
}

// NewBirthEvent creates a birth event.
func NewBirthEvent(tick int32, child, mother, father Actor) Event {
	return Event{
		Type:    EventBirth,
		Tick:    tick,
		Subject: child,
		Target:  mother,
		Partner: father,
	}
}

func formatPos(p components.Position) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// enumName renders a species the way the movement summary names it,
// e.g. Species.SHEEP.
func enumName(s components.Species) string {
	return "Species." + strings.ToUpper(s.String())
}

func (a Actor) describe() string {
	return fmt.Sprintf("%s (ID: %d, Location: %s)", a.Species, a.ID, formatPos(a.Pos))
}

// String renders the event in the event log's text format.
// Hunt and birth events span two lines.
func (e Event) String() string {
	switch e.Type {
	case EventMove:
		return fmt.Sprintf("Entity ID: %d, Species: %s, Initial Position: %s, Final Position: %s, Movement Allowed: %d, Remaining Movement: %d",
			e.Subject.ID, enumName(e.Subject.Species), formatPos(e.From), formatPos(e.Subject.Pos), e.Allowed, e.Remaining)
	case EventHunt:
		return "-------HUNTING-------\n" + e.Subject.describe() + " has hunted " + e.Target.describe()
	case EventBirth:
		return "-------BORNING-------\n" + e.Subject.describe() + " born from " + e.Target.describe() + " and " + e.Partner.describe()
	default:
		return fmt.Sprintf("unknown event %d", e.Type)
	}
}

func (a Actor) logValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", int(a.ID)),
		slog.String("species", a.Species.String()),
		slog.Int("x", a.Pos.X),
		slog.Int("y", a.Pos.Y),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Int("tick", int(e.Tick)),
	}
	switch e.Type {
	case EventMove:
		attrs = append(attrs,
			slog.Any("entity", e.Subject.logValue()),
			slog.Int("from_x", e.From.X),
			slog.Int("from_y", e.From.Y),
			slog.Int("allowed", e.Allowed),
			slog.Int("remaining", e.Remaining),
		)
	case EventHunt:
		attrs = append(attrs,
			slog.Any("predator", e.Subject.logValue()),
			slog.Any("prey", e.Target.logValue()),
		)
	case EventBirth:
		attrs = append(attrs,
			slog.Any("child", e.Subject.logValue()),
			slog.Any("mother", e.Target.logValue()),
			slog.Any("father", e.Partner.logValue()),
		)
	}
	return slog.GroupValue(attrs...)
}

// Sink consumes simulation events.
type Sink interface {
	Record(Event)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

// Record forwards e to every sink.
func (m MultiSink) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}

// Recorder keeps events in memory. When Limit > 0 only the most recent
// Limit events are retained.
type Recorder struct {
	Limit  int
	Events []Event
}

// Record appends e, dropping the oldest event when over Limit.
func (r *Recorder) Record(e Event) {
	r.Events = append(r.Events, e)
	if r.Limit > 0 && len(r.Events) > r.Limit {
		r.Events = r.Events[len(r.Events)-r.Limit:]
	}
}

// OfType returns the recorded events of one type.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// SlogSink writes events as structured log records.
type SlogSink struct {
	Logger *slog.Logger
	Level  slog.Level
	// Moves enables movement summaries, which dominate the event volume.
	Moves bool
}

// Record logs e at the sink's level.
func (s SlogSink) Record(e Event) {
	if e.Type == EventMove && !s.Moves {
		return
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), s.Level, "event", "event", e)
}
