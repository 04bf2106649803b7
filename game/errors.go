package game

import "errors"

// 嚴重錯誤,牌局狀態已不一致,不可繼續
var (
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrEmptyTrick    = errors.New("trick has no plays")
	ErrCardCount     = errors.New("card count mismatch")
	ErrDuplicatePlay = errors.New("player already played in this trick")
	ErrTrickFull     = errors.New("trick already complete")
	ErrQuit          = errors.New("player quit")
)

// 可恢復錯誤,重新詢問同一個決定
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoUsableAnswer   = errors.New("no usable answer")
)

// Recoverable 是否可以重新詢問
func Recoverable(err error) bool {
	return errors.Is(err, ErrInvalidSelection) || errors.Is(err, ErrNoUsableAnswer)
}
