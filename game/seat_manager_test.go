package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatManagerRotate(t *testing.T) {
	mgr := NewSeatManager(East)
	assert.Equal(t, []Seat{East, South, West, North}, mgr.Order())

	assert.True(t, mgr.RotateToFront(West))
	assert.Equal(t, West, mgr.Head())
	assert.Equal(t, []Seat{West, North, East, South}, mgr.Order())

	// 已在首位不動
	assert.True(t, mgr.RotateToFront(West))
	assert.Equal(t, []Seat{West, North, East, South}, mgr.Order())

	assert.False(t, mgr.RotateToFront(Seat(9)))
	assert.Equal(t, West, mgr.Head())
}

func TestSeatManagerKeepsCycle(t *testing.T) {
	mgr := NewSeatManager(North)
	for _, seat := range []Seat{South, South, East, North, West} {
		mgr.RotateToFront(seat)
		order := mgr.Order()
		assert.Equal(t, seat, order[0])
		for i := range order {
			assert.Equal(t, order[i].Next(), order[(i+1)%len(order)])
		}
	}
}

func TestSeatTeams(t *testing.T) {
	assert.Equal(t, EastWest, East.Team())
	assert.Equal(t, EastWest, West.Team())
	assert.Equal(t, SouthNorth, South.Team())
	assert.Equal(t, SouthNorth, North.Team())
	assert.Equal(t, West, East.Partner())
	assert.Equal(t, [2]Seat{South, North}, SouthNorth.Seats())
	assert.Equal(t, SouthNorth, EastWest.Opponent())
	assert.Equal(t, East, North.Next())
}
