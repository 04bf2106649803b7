package game

//go:generate stringer -type=Suit,Rank,Seat,Team,Phase --linecomment -output enum_strings.go

import "fmt"

const (
	// PlayersLimit 一場遊戲人數限制
	PlayersLimit int = 4

	// GameWinningScore 任一方累計分數達到此分數,遊戲結束
	GameWinningScore int = 21

	// QuitSentinel 玩家輸入此值表示立即離開遊戲
	QuitSentinel int = -1
)

// 底下型別透過stringer顯示字串
type (
	Suit  uint8
	Rank  uint8
	Seat  uint8
	Team  uint8
	Phase uint8
)

// 排序即是手牌顯示順序: 紅心,梅花,方塊,黑桃,最後是鬼牌
const (
	Hearts   Suit = iota // Hearts
	Clubs                // Clubs
	Diamonds             // Diamonds
	Spades               // Spades
	NoSuit               // Trump
)

const (
	Two         Rank = iota // 2
	Three                   // 3
	Four                    // 4
	Five                    // 5
	Six                     // 6
	Seven                   // 7
	Eight                   // 8
	Nine                    // 9
	Ten                     // 10
	Jack                    // Jack
	Queen                   // Queen
	King                    // King
	Ace                     // Ace
	LittleJoker             // Little Joker
	BigJoker                // Big Joker
)

// 座位以 ring 順序排列,東西一家,南北一家
const (
	East  Seat = iota // East
	South             // South
	West              // West
	North             // North
)

const (
	EastWest   Team = iota // East-West
	SouthNorth             // South-North
)

const (
	PhaseDealing          Phase = iota // Dealing
	PhaseBidding                       // Bidding
	PhaseKittyExchange                 // KittyExchange
	PhaseTrumpDeclaration              // TrumpDeclaration
	PhaseTrickPlay                     // TrickPlay
	PhaseHandScored                    // HandScored
)

var (
	playerSeats = [PlayersLimit]Seat{East, South, West, North}

	// TrumpOptions 宣告王牌時可選擇的花色,索引即是選項
	TrumpOptions = [4]Suit{Hearts, Clubs, Diamonds, Spades}
)

// Next 順時鐘下一個座位
func (s Seat) Next() Seat {
	return (s + 1) % Seat(PlayersLimit)
}

// Partner 夥伴座位
func (s Seat) Partner() Seat {
	return (s + 2) % Seat(PlayersLimit)
}

// Team 座位所屬隊伍 (0&2, 1&3)
func (s Seat) Team() Team {
	return Team(s % 2)
}

// Opponent 對手隊伍
func (t Team) Opponent() Team {
	return 1 - t
}

// Seats 隊伍兩個座位
func (t Team) Seats() [2]Seat {
	return [2]Seat{Seat(t), Seat(t) + 2}
}

// Card 牌的身份是 Rank + Suit,鬼牌的 Suit 固定是 NoSuit.
// 宣告王牌後鬼牌不改寫 Suit,而是標記 Converted 並記錄 TrumpSuit
type Card struct {
	Rank      Rank
	Suit      Suit
	Converted bool
	TrumpSuit Suit
}

func (c Card) IsJoker() bool {
	return c.Rank == LittleJoker || c.Rank == BigJoker
}

// PlaySuit 出牌時的有效花色,尚未轉換的鬼牌不屬於任何花色(NoSuit)
func (c Card) PlaySuit() Suit {
	if c.IsJoker() {
		if c.Converted {
			return c.TrumpSuit
		}
		return NoSuit
	}
	return c.Suit
}

// Is 是否為同一張牌(不考慮王牌轉換)
func (c Card) Is(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func (c Card) convert(trump Suit) Card {
	if !c.IsJoker() {
		return c
	}
	c.Converted = true
	c.TrumpSuit = trump
	return c
}

func (c Card) String() string {
	if c.IsJoker() {
		if c.Converted {
			return fmt.Sprintf("%s (%s)", c.Rank, c.TrumpSuit)
		}
		return fmt.Sprintf("%s (%s)", c.Rank, NoSuit)
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
