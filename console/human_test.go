package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidwhist/game"
)

func newTestHuman(input string) (*Human, *bytes.Buffer, *[]string) {
	var (
		out  bytes.Buffer
		echo []string
	)
	h := NewHuman("Player 1", game.East, strings.NewReader(input), &out, WithEcho(func(line string) {
		echo = append(echo, line)
	}))
	return h, &out, &echo
}

func TestHumanBidRetriesUntilValid(t *testing.T) {
	h, out, echo := newTestHuman("three\n3\n5\n")

	bid, err := h.ProposeBid(context.Background(), game.BidRequest{
		Seat:    game.East,
		Hand:    []game.Card{{Rank: game.Ace, Suit: game.Spades}},
		Options: []int{0, 4, 5, 6, 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, bid)
	assert.Equal(t, 2, strings.Count(out.String(), invalidSelection))
	assert.Contains(t, *echo, "> 5")
}

func TestHumanQuit(t *testing.T) {
	h, _, _ := newTestHuman("-1\n")
	_, err := h.ProposeCard(context.Background(), game.PlayRequest{
		Hand:  []game.Card{{Rank: game.Two, Suit: game.Clubs}},
		Legal: []game.Card{{Rank: game.Two, Suit: game.Clubs}},
	})
	assert.ErrorIs(t, err, game.ErrQuit)
}

func TestHumanEndOfInputQuits(t *testing.T) {
	h, _, _ := newTestHuman("")
	_, err := h.ProposeTrump(context.Background(), game.TrumpRequest{Options: game.TrumpOptions[:]})
	assert.ErrorIs(t, err, game.ErrQuit)
}

func TestHumanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h, _, _ := newTestHuman("0\n")
	_, err := h.ProposeTrump(ctx, game.TrumpRequest{Options: game.TrumpOptions[:]})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHumanPlayMustFollowSuit(t *testing.T) {
	hand := []game.Card{
		{Rank: game.Two, Suit: game.Hearts},
		{Rank: game.Nine, Suit: game.Clubs},
	}
	trick := game.Trick{}
	require.NoError(t, trick.Add(game.North, game.Card{Rank: game.Ten, Suit: game.Clubs}))
	h, out, _ := newTestHuman("0\n1\n")

	idx, err := h.ProposeCard(context.Background(), game.PlayRequest{
		Seat:  game.East,
		Hand:  hand,
		Legal: game.LegalPlays(&trick, hand),
		Trick: trick,
		Trump: game.Spades,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Current trick")
	assert.Equal(t, 1, strings.Count(out.String(), invalidSelection))
}

func TestHumanDiscardAndTrump(t *testing.T) {
	hand := make([]game.Card, 0, 18)
	for r := game.Two; r <= game.Ace; r++ {
		hand = append(hand, game.Card{Rank: r, Suit: game.Hearts})
	}
	for r := game.Two; r <= game.Six; r++ {
		hand = append(hand, game.Card{Rank: r, Suit: game.Clubs})
	}
	h, out, _ := newTestHuman("0 1 2\n0 1 2 3 4 4\n12 13 14 15 16 17\n9\n2\n")

	idx, err := h.ProposeDiscard(context.Background(), game.DiscardRequest{Hand: hand, Count: 6})
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, idx)

	suit, err := h.ProposeTrump(context.Background(), game.TrumpRequest{Hand: hand[:12], Options: game.TrumpOptions[:]})
	require.NoError(t, err)
	assert.Equal(t, game.Diamonds, suit)
	assert.Equal(t, 3, strings.Count(out.String(), invalidSelection))
}

func TestHumanNotifyHidesOtherSeatsPrivateEvents(t *testing.T) {
	h, out, _ := newTestHuman("")
	cards := []game.Card{{Rank: game.King, Suit: game.Spades}}

	h.Notify(game.Event{Name: game.HandEvents.PrivateKitty, Seat: game.West, Private: true, Cards: cards})
	assert.Empty(t, out.String())

	h.Notify(game.Event{Name: game.HandEvents.PrivateKitty, Seat: game.East, Private: true, Cards: cards})
	assert.Contains(t, out.String(), "takes the kitty")

	out.Reset()
	h.Notify(game.Event{Name: game.HandEvents.Play, Seat: game.East, Cards: cards})
	assert.Empty(t, out.String())

	h.Notify(game.Event{Name: game.HandEvents.Play, Seat: game.South, Cards: cards})
	assert.Contains(t, out.String(), "South plays")
}

func TestHumanNameIsNotAFormat(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman("100%Sure", game.East, strings.NewReader("1\n"), &out)

	suit, err := h.ProposeTrump(context.Background(), game.TrumpRequest{Options: game.TrumpOptions[:]})
	require.NoError(t, err)
	assert.Equal(t, game.Clubs, suit)
	assert.Contains(t, out.String(), "100%Sure, select trump:")
	assert.NotContains(t, out.String(), "MISSING")
}

func TestHumanDiscardQuitsOnlyOnSentinelLine(t *testing.T) {
	hand := make([]game.Card, 0, 18)
	for r := game.Two; r <= game.Ace; r++ {
		hand = append(hand, game.Card{Rank: r, Suit: game.Spades})
	}
	for r := game.Two; r <= game.Six; r++ {
		hand = append(hand, game.Card{Rank: r, Suit: game.Diamonds})
	}
	req := game.DiscardRequest{Hand: hand, Count: 6}

	h, out, _ := newTestHuman("1 2 3 4 5-1\n0 1 2 3 4 5\n")
	idx, err := h.ProposeDiscard(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, idx)
	assert.Equal(t, 1, strings.Count(out.String(), invalidSelection))

	h, _, _ = newTestHuman(" -1 \n")
	_, err = h.ProposeDiscard(context.Background(), req)
	assert.ErrorIs(t, err, game.ErrQuit)
}

func TestHumanNegativeIndexInTextIsNotQuit(t *testing.T) {
	h, out, _ := newTestHuman("card -1 please\n0\n")
	card := game.Card{Rank: game.Two, Suit: game.Clubs}

	idx, err := h.ProposeCard(context.Background(), game.PlayRequest{
		Hand:  []game.Card{card},
		Legal: []game.Card{card},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, strings.Count(out.String(), invalidSelection))
}
