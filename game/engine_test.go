package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	little = Card{Rank: LittleJoker, Suit: NoSuit}
	big    = Card{Rank: BigJoker, Suit: NoSuit}
)

func c(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func trickOf(plays ...Play) *Trick {
	t := &Trick{}
	for _, p := range plays {
		if err := t.Add(p.Seat, p.Card); err != nil {
			panic(err)
		}
	}
	return t
}

func TestLegalPlays(t *testing.T) {
	hand := []Card{c(Two, Hearts), c(King, Hearts), c(Five, Clubs), c(Ace, Spades)}

	type tc struct {
		name  string
		trick *Trick
		want  []Card
	}
	cases := []tc{
		{"empty trick", &Trick{}, hand},
		{"must follow", trickOf(Play{East, c(Ten, Hearts)}), []Card{c(Two, Hearts), c(King, Hearts)}},
		{"free play when void", trickOf(Play{East, c(Ten, Diamonds)}), hand},
		{"single follow", trickOf(Play{East, c(Ten, Clubs)}, Play{South, c(Two, Spades)}), []Card{c(Five, Clubs)}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LegalPlays(tt.trick, hand))
		})
	}
}

func TestLegalPlaysJokers(t *testing.T) {
	hand := []Card{c(Two, Hearts), little, c(Four, Spades)}

	// 未轉換的鬼牌不屬於任何花色
	assert.Equal(t, []Card{c(Two, Hearts)}, LegalPlays(trickOf(Play{East, c(Ace, Hearts)}), hand))

	converted := []Card{c(Two, Hearts), little.convert(Spades), c(Four, Spades)}
	assert.Equal(t, []Card{little.convert(Spades), c(Four, Spades)},
		LegalPlays(trickOf(Play{East, c(Ace, Spades)}), converted))

	// 鬼牌首引,首引花色即王牌
	assert.Equal(t, []Card{little.convert(Spades), c(Four, Spades)},
		LegalPlays(trickOf(Play{East, big.convert(Spades)}), converted))
}

func TestLegalPlaysProperty(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		d := BuildDeck()
		d.Shuffle(r)
		cards := d.Cards()
		hand, led := cards[:1+r.Intn(12)], cards[20]

		legal := LegalPlays(trickOf(Play{North, led}), hand)
		require.NotEmpty(t, legal)

		var follow []Card
		for _, h := range hand {
			if h.PlaySuit() == led.PlaySuit() && led.PlaySuit() != NoSuit {
				follow = append(follow, h)
			}
		}
		if len(follow) > 0 {
			assert.Equal(t, follow, legal)
		} else {
			assert.Equal(t, hand, legal)
		}
	}
}

func TestWinner(t *testing.T) {
	type tc struct {
		name  string
		trick *Trick
		trump Suit
		want  Seat
	}
	cases := []tc{
		{
			name:  "big joker beats everything",
			trick: trickOf(Play{East, c(Two, Hearts)}, Play{South, big.convert(Spades)}, Play{West, c(Ace, Hearts)}, Play{North, little.convert(Spades)}),
			trump: Spades,
			want:  South,
		},
		{
			name:  "lowest trump beats led suit",
			trick: trickOf(Play{East, c(Ace, Hearts)}, Play{South, c(Two, Spades)}, Play{West, c(King, Hearts)}),
			trump: Spades,
			want:  South,
		},
		{
			name:  "little joker beats trump ace",
			trick: trickOf(Play{East, c(Ace, Spades)}, Play{South, little.convert(Spades)}, Play{West, c(King, Spades)}),
			trump: Spades,
			want:  South,
		},
		{
			name:  "little joker then big joker",
			trick: trickOf(Play{East, little.convert(Clubs)}, Play{South, c(Ace, Clubs)}, Play{West, big.convert(Clubs)}),
			trump: Clubs,
			want:  West,
		},
		{
			name:  "higher trump wins",
			trick: trickOf(Play{East, c(Ace, Hearts)}, Play{South, c(Two, Spades)}, Play{West, c(Ten, Spades)}, Play{North, c(Four, Spades)}),
			trump: Spades,
			want:  West,
		},
		{
			name:  "off suit never wins",
			trick: trickOf(Play{East, c(Three, Hearts)}, Play{South, c(Ace, Diamonds)}, Play{West, c(Five, Hearts)}, Play{North, c(King, Clubs)}),
			trump: Spades,
			want:  West,
		},
		{
			name:  "led card holds",
			trick: trickOf(Play{East, c(Queen, Diamonds)}, Play{South, c(Jack, Diamonds)}),
			trump: Hearts,
			want:  East,
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			win, err := tt.trick.Winner(tt.trump)
			require.NoError(t, err)
			assert.Equal(t, tt.want, win.Seat)
		})
	}
}

func TestWinnerEmptyTrick(t *testing.T) {
	_, err := (&Trick{}).Winner(Spades)
	assert.ErrorIs(t, err, ErrEmptyTrick)
}

func TestWinnerOrderIndependent(t *testing.T) {
	// 同一組出牌,首引相同時其餘順序不影響贏家
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		d := BuildDeck()
		d.Shuffle(r)
		cards := d.Cards()[:4]
		trump := TrumpOptions[r.Intn(4)]
		for j := range cards {
			cards[j] = cards[j].convert(trump)
		}

		base := trickOf(Play{East, cards[0]}, Play{South, cards[1]}, Play{West, cards[2]}, Play{North, cards[3]})
		swapped := trickOf(Play{East, cards[0]}, Play{West, cards[2]}, Play{North, cards[3]}, Play{South, cards[1]})

		w1, err := base.Winner(trump)
		require.NoError(t, err)
		w2, err := swapped.Winner(trump)
		require.NoError(t, err)
		assert.Equal(t, w1, w2, "%v trump %s", cards, trump)
	}
}

func TestTrickAdd(t *testing.T) {
	tr := &Trick{}
	require.NoError(t, tr.Add(East, c(Two, Hearts)))
	assert.ErrorIs(t, tr.Add(East, c(Three, Hearts)), ErrDuplicatePlay)

	require.NoError(t, tr.Add(South, c(Four, Hearts)))
	require.NoError(t, tr.Add(West, c(Five, Hearts)))
	require.NoError(t, tr.Add(North, c(Six, Hearts)))
	assert.ErrorIs(t, tr.Add(North, c(Seven, Hearts)), ErrTrickFull)

	led, ok := tr.LedSuit()
	assert.True(t, ok)
	assert.Equal(t, Hearts, led)
}

func TestJokerConversionKeepsIdentity(t *testing.T) {
	j := big.convert(Diamonds)
	assert.True(t, j.Converted)
	assert.Equal(t, NoSuit, j.Suit)
	assert.Equal(t, Diamonds, j.PlaySuit())
	assert.True(t, j.Is(big))

	n := c(Ace, Hearts).convert(Diamonds)
	assert.False(t, n.Converted)
	assert.Equal(t, Hearts, n.PlaySuit())
}
