package telemetry

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pthm-cable/habitat/components"
)

func actor(id uint32, s components.Species, x, y int) Actor {
	return Actor{ID: id, Species: s, Pos: components.Position{X: x, Y: y}}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			"move",
			NewMoveEvent(0, actor(7, components.Sheep, 4, 4), components.Position{X: 3, Y: 4}, 2, 996),
			"Entity ID: 7, Species: Species.SHEEP, Initial Position: (3, 4), Final Position: (4, 4), Movement Allowed: 2, Remaining Movement: 996",
		},
		{
			"hunter move",
			NewMoveEvent(2, actor(1, components.Hunter, 0, 1), components.Position{X: 0, Y: 0}, 1, 12),
			"Entity ID: 1, Species: Species.HUNTER, Initial Position: (0, 0), Final Position: (0, 1), Movement Allowed: 1, Remaining Movement: 12",
		},
		{
			"hunt",
			NewHuntEvent(3, actor(5, components.Lion, 1, 2), actor(3, components.Sheep, 4, 5)),
			"-------HUNTING-------\nLion (ID: 5, Location: (1, 2)) has hunted Sheep (ID: 3, Location: (4, 5))",
		},
		{
			"birth",
			NewBirthEvent(1, actor(90, components.Sheep, 8, 9), actor(3, components.Sheep, 1, 1), actor(4, components.Sheep, 2, 1)),
			"-------BORNING-------\nSheep (ID: 90, Location: (8, 9)) born from Sheep (ID: 3, Location: (1, 1)) and Sheep (ID: 4, Location: (2, 1))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.String(); got != tt.want {
				t.Errorf("String() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRecorderLimit(t *testing.T) {
	r := &Recorder{Limit: 2}
	for i := uint32(1); i <= 3; i++ {
		r.Record(NewHuntEvent(0, actor(i, components.Wolf, 0, 0), actor(i+10, components.Cow, 1, 1)))
	}

	if len(r.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(r.Events))
	}
	if r.Events[0].Subject.ID != 2 || r.Events[1].Subject.ID != 3 {
		t.Errorf("kept events %d, %d, want 2, 3", r.Events[0].Subject.ID, r.Events[1].Subject.ID)
	}
}

func TestMultiSinkAndOfType(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	sink := MultiSink{a, b}

	sink.Record(NewMoveEvent(0, actor(1, components.Hunter, 0, 1), components.Position{}, 1, 999))
	sink.Record(NewHuntEvent(0, actor(1, components.Hunter, 0, 1), actor(2, components.Cow, 1, 1)))

	if len(a.Events) != 2 || len(b.Events) != 2 {
		t.Fatalf("recorders got %d and %d events, want 2 each", len(a.Events), len(b.Events))
	}
	if hunts := a.OfType(EventHunt); len(hunts) != 1 {
		t.Errorf("OfType(EventHunt) returned %d events, want 1", len(hunts))
	}
}

func TestEventLogWritesLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLog(&buf)

	log.Record(NewMoveEvent(0, actor(2, components.Cow, 1, 0), components.Position{X: 0, Y: 0}, 2, 998))
	log.Record(NewHuntEvent(0, actor(1, components.Hunter, 0, 1), actor(2, components.Cow, 1, 0)))
	if err := log.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[1] != "-------HUNTING-------" {
		t.Errorf("line 2 = %q, want hunting header", lines[1])
	}
}

func TestOpenEventLogTruncates(t *testing.T) {
	path := t.TempDir() + "/events.txt"

	first, err := OpenEventLog(path)
	if err != nil {
		t.Fatal(err)
	}
	first.Record(NewMoveEvent(0, actor(9, components.Lion, 0, 0), components.Position{}, 4, 10))
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := OpenEventLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("reopened log has %d bytes, want 0", len(data))
	}
}
