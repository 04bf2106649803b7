package game

import (
	"container/ring"
	"sync"
)

// SeatManager 四個座位組成的環,ring 當前位置就是下一個行動(叫牌,首引)的座位.
// 只會旋轉,不會重新排列,所以夥伴與對手的相對位置不變
type SeatManager struct {
	*ring.Ring
	sync.RWMutex
}

// NewSeatManager 以 first 為首建立座位環
func NewSeatManager(first Seat) *SeatManager {
	r := ring.New(PlayersLimit)
	for i := 0; i < PlayersLimit; i++ {
		r.Value = playerSeats[i]
		r = r.Next()
	}
	// ref 此時當前座位(東)
	mgr := &SeatManager{
		Ring: r,
	}
	mgr.RotateToFront(first)
	return mgr
}

// Head 目前的首位
func (mgr *SeatManager) Head() Seat {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.Value.(Seat)
}

// RotateToFront 將首位移到尾端,直到 seat 成為首位. 已是首位則不動
func (mgr *SeatManager) RotateToFront(seat Seat) bool {
	mgr.Lock()
	defer mgr.Unlock()
	for limit := 0; limit < PlayersLimit; limit++ {
		if mgr.Value.(Seat) == seat {
			return true
		}
		mgr.Ring = mgr.Next()
	}
	return false
}

// Order 由首位開始的座位順序
func (mgr *SeatManager) Order() []Seat {
	mgr.RLock()
	defer mgr.RUnlock()
	order := make([]Seat, 0, PlayersLimit)
	mgr.Do(func(i any) {
		order = append(order, i.(Seat))
	})
	return order
}
