package game

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := Event{Name: HandEvents.Play, Hand: 3, Seat: South, Cards: []Card{{Rank: Ace, Suit: Spades}}}
	logger.Debug("notify", slog.Any("event", e))

	assert.Contains(t, buf.String(), "event.event=game.play")
	assert.Contains(t, buf.String(), "event.hand=3")
	assert.Contains(t, buf.String(), "event.seat=South")
}

func TestBroadcastSkipsNilObservers(t *testing.T) {
	var got []string
	o := Broadcast(nil, ObserverFunc(func(e Event) { got = append(got, e.Name) }), nil)
	o.Notify(Event{Name: HandEvents.Trick})
	assert.Equal(t, []string{HandEvents.Trick}, got)
}
