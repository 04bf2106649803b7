package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	type tc struct {
		raw  string
		want int
	}
	for _, tt := range []tc{
		{"3", 3},
		{" 5.", 5},
		{"(7)", 7},
		{"I will play card 11!", 11},
		{"-1", -1},
		{"0", 0},
	} {
		got, err := ParseChoice(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseChoice("pass, I guess")
	assert.ErrorIs(t, err, ErrNoUsableAnswer)
	_, err = ParseChoice("")
	assert.ErrorIs(t, err, ErrNoUsableAnswer)
}

func TestParseChoices(t *testing.T) {
	got, err := ParseChoices("0, 1, 2; 5 7 9.")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 7, 9}, got)

	_, err = ParseChoices("none")
	assert.ErrorIs(t, err, ErrNoUsableAnswer)
}

func TestValidateDiscard(t *testing.T) {
	req := DiscardRequest{Hand: BuildDeck().Cards()[:18], Count: 6}
	assert.NoError(t, ValidateDiscard(req, []int{0, 1, 2, 3, 4, 17}))
	assert.ErrorIs(t, ValidateDiscard(req, []int{0, 1, 2, 3, 4}), ErrInvalidSelection)
	assert.ErrorIs(t, ValidateDiscard(req, []int{0, 1, 2, 3, 4, 4}), ErrInvalidSelection)
	assert.ErrorIs(t, ValidateDiscard(req, []int{0, 1, 2, 3, 4, 18}), ErrInvalidSelection)
	assert.ErrorIs(t, ValidateDiscard(req, []int{-1, 1, 2, 3, 4, 5}), ErrInvalidSelection)
}

func TestValidatePlay(t *testing.T) {
	hand := []Card{c(Two, Hearts), c(Five, Clubs)}
	trick := trickOf(Play{East, c(Ace, Clubs)})
	req := PlayRequest{Hand: hand, Legal: LegalPlays(trick, hand), Trick: *trick}

	assert.ErrorIs(t, ValidatePlay(req, 0), ErrInvalidSelection, "must follow clubs")
	assert.NoError(t, ValidatePlay(req, 1))
	assert.ErrorIs(t, ValidatePlay(req, 2), ErrInvalidSelection)
	assert.Equal(t, 1, firstPlay(req))
}

func TestValidateBidAndTrump(t *testing.T) {
	bid := BidRequest{Options: []int{0, 6, 7}}
	assert.NoError(t, ValidateBid(bid, 6))
	assert.ErrorIs(t, ValidateBid(bid, 5), ErrInvalidSelection)

	trump := TrumpRequest{Options: TrumpOptions[:]}
	assert.NoError(t, ValidateTrump(trump, Diamonds))
	assert.ErrorIs(t, ValidateTrump(trump, NoSuit), ErrInvalidSelection)

	s, err := TrumpChoice(trump, 3)
	require.NoError(t, err)
	assert.Equal(t, Spades, s)
	_, err = TrumpChoice(trump, 4)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(ErrInvalidSelection))
	assert.True(t, Recoverable(ErrNoUsableAnswer))
	assert.False(t, Recoverable(ErrQuit))
	assert.False(t, Recoverable(ErrEmptyTrick))
}
