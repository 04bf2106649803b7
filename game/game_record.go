package game

import (
	"fmt"
	"log/slog"
)

type (
	// 隊伍這一局吃墩數與累計分數
	teamRecord struct {
		tricks int
		score  int
	}

	// ScoreBoard 墩數每局歸零,分數跨局累計
	ScoreBoard struct {
		teams  [2]teamRecord
		target int
	}

	// HandResult 一局結算
	HandResult struct {
		Contract Contract
		// Set 防家達到 8-叫品 墩,莊家被打倒
		Set bool
		// Redeal 四家 PASS,此局作廢
		Redeal bool
		// Team 得分的隊伍, Points 得分
		Team   Team
		Points int
		Tricks [2]int
	}
)

func NewScoreBoard(target int) *ScoreBoard {
	if target <= 0 {
		target = GameWinningScore
	}
	return &ScoreBoard{target: target}
}

func (b *ScoreBoard) Target() int {
	return b.target
}

// CreditTrick 座位贏得一墩,記在其隊伍
func (b *ScoreBoard) CreditTrick(seat Seat) {
	b.teams[seat.Team()].tricks++
}

func (b *ScoreBoard) Tricks(t Team) int {
	return b.teams[t].tricks
}

func (b *ScoreBoard) Score(t Team) int {
	return b.teams[t].score
}

// ResetTricks 新的一局開始,墩數歸零,分數保留
func (b *ScoreBoard) ResetTricks() {
	for i := range b.teams {
		b.teams[i].tricks = 0
	}
}

// settle 每墩結束後判斷此局是否結束.
// 先判斷防家是否達到 8-叫品 墩(莊家被打倒,防家得叫品分),
// 否則首位手牌已打完時莊家得 7-防家墩數 分
func (b *ScoreBoard) settle(contract Contract, leaderHandEmpty bool) (result HandResult, done bool) {
	var (
		bidders   = contract.Team()
		defenders = bidders.Opponent()
		defTricks = b.teams[defenders].tricks
	)

	result = HandResult{
		Contract: contract,
		Tricks:   [2]int{b.teams[EastWest].tricks, b.teams[SouthNorth].tricks},
	}

	switch {
	case defTricks >= 8-contract.Bid:
		result.Set = true
		result.Team = defenders
		result.Points = contract.Bid
		return result, true
	case leaderHandEmpty:
		result.Team = bidders
		result.Points = 7 - defTricks
		return result, true
	}
	return result, false
}

// Apply 將結算分數加到得分隊伍
func (b *ScoreBoard) Apply(result HandResult) {
	if result.Redeal {
		return
	}
	b.teams[result.Team].score += result.Points
	slog.Debug("Apply", slog.String("FYI", fmt.Sprintf("%s +%d => %s:%d %s:%d", result.Team, result.Points,
		EastWest, b.teams[EastWest].score, SouthNorth, b.teams[SouthNorth].score)))
}

// Winner 是否有隊伍累計分數達到目標分數
func (b *ScoreBoard) Winner() (Team, bool) {
	switch {
	case b.teams[EastWest].score >= b.target && b.teams[EastWest].score >= b.teams[SouthNorth].score:
		return EastWest, true
	case b.teams[SouthNorth].score >= b.target:
		return SouthNorth, true
	}
	return EastWest, false
}
