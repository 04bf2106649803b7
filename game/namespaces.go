package game

import (
	"fmt"
	"log/slog"
)

type (
	// handNamespace 一局中所有事件名稱. 屬性名稱是PrivateXxxx表示只與該座位有關(例如手牌)
	handNamespace struct {
		PrivateDeal    string `json:"privateDeal,omitempty"`
		Bid            string `json:"bid,omitempty"`
		Contract       string `json:"contract,omitempty"`
		AllPass        string `json:"allPass,omitempty"`
		PrivateKitty   string `json:"privateKitty,omitempty"`
		PrivateDiscard string `json:"privateDiscard,omitempty"`
		Trump          string `json:"trump,omitempty"`
		Play           string `json:"play,omitempty"`
		Trick          string `json:"trick,omitempty"`
		Scored         string `json:"scored,omitempty"`
		Retry          string `json:"retry,omitempty"`
		Fallback       string `json:"fallback,omitempty"`
	}

	// Event 牌局進行中送給觀察者的通知
	Event struct {
		Name    string
		Hand    int
		Seat    Seat
		Private bool
		Cards   []Card
		Bid     int
		Trump   Suit
		Result  HandResult
		Err     error
	}

	// Observer 觀察者不可影響牌局,也不回傳錯誤
	Observer interface {
		Notify(Event)
	}

	ObserverFunc func(Event)

	broadcaster []Observer
)

var (
	HandEvents = &handNamespace{
		PrivateDeal:    "game.private.deal",
		Bid:            "game.bid",
		Contract:       "game.contract",
		AllPass:        "game.noty.reshuffle",
		PrivateKitty:   "game.private.kitty",
		PrivateDiscard: "game.private.discard",
		Trump:          "game.trump",
		Play:           "game.play",
		Trick:          "game.trick",
		Scored:         "game.noty.result",
		Retry:          "game.noty.retry",
		Fallback:       "game.noty.autoplay",
	}
)

func (f ObserverFunc) Notify(e Event) {
	f(e)
}

// Broadcast 將事件依序送給每個觀察者
func Broadcast(observers ...Observer) Observer {
	b := make(broadcaster, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			b = append(b, o)
		}
	}
	return b
}

func (b broadcaster) Notify(e Event) {
	for _, o := range b {
		o.Notify(e)
	}
}

type nopObserver struct{}

func (nopObserver) Notify(Event) {}

func (e Event) String() string {
	switch e.Name {
	case HandEvents.PrivateDeal:
		return fmt.Sprintf("hand %d: %s dealt %s", e.Hand, e.Seat, cardsString(e.Cards))
	case HandEvents.Bid:
		return fmt.Sprintf("hand %d: %s bids %d", e.Hand, e.Seat, e.Bid)
	case HandEvents.Contract:
		return fmt.Sprintf("hand %d: %s wins the bid with %d", e.Hand, e.Seat, e.Bid)
	case HandEvents.AllPass:
		return fmt.Sprintf("hand %d: all players passed, redeal", e.Hand)
	case HandEvents.PrivateKitty:
		return fmt.Sprintf("hand %d: %s takes the kitty %s", e.Hand, e.Seat, cardsString(e.Cards))
	case HandEvents.PrivateDiscard:
		return fmt.Sprintf("hand %d: %s discards %s", e.Hand, e.Seat, cardsString(e.Cards))
	case HandEvents.Trump:
		return fmt.Sprintf("hand %d: %s declares %s trump", e.Hand, e.Seat, e.Trump)
	case HandEvents.Play:
		return fmt.Sprintf("hand %d: %s plays %s", e.Hand, e.Seat, cardsString(e.Cards))
	case HandEvents.Trick:
		return fmt.Sprintf("hand %d: %s wins the trick with %s", e.Hand, e.Seat, cardsString(e.Cards))
	case HandEvents.Scored:
		r := e.Result
		if r.Set {
			return fmt.Sprintf("hand %d: %s is set, %s scores %d", e.Hand, r.Contract.Team(), r.Team, r.Points)
		}
		return fmt.Sprintf("hand %d: %s makes the bid and scores %d", e.Hand, r.Team, r.Points)
	case HandEvents.Retry:
		return fmt.Sprintf("hand %d: %s answered badly: %v", e.Hand, e.Seat, e.Err)
	case HandEvents.Fallback:
		return fmt.Sprintf("hand %d: %s gave no usable answer, first legal option chosen", e.Hand, e.Seat)
	}
	return fmt.Sprintf("hand %d: %s %s", e.Hand, e.Seat, e.Name)
}

// LogValue 讓 slog 以事件名稱與座位輸出
func (e Event) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("event", e.Name),
		slog.Int("hand", e.Hand),
		slog.String("seat", e.Seat.String()))
}
