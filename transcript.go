package bidwhist

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moszorn/pb"
	llg "github.com/moszorn/utils/log"

	"bidwhist/game"
)

const transcriptBuffer = 512

type (
	// Transcript 牌局紀錄. 所有顯示給玩家的文字與牌局事件都送進 channel,由 chanLoop 依序寫出.
	// 送出不等待,緩衝滿了就丟棄該行
	Transcript struct {
		gameID string
		lines  chan string
		write  func(line string)

		mu      sync.RWMutex
		closed  bool
		done    chan struct{}
		dropped atomic.Uint64
	}
)

// NewTranscript write 只會在 chanLoop goroutine 中被呼叫
func NewTranscript(gameID string, write func(line string), buffer int) *Transcript {
	if buffer <= 0 {
		buffer = transcriptBuffer
	}
	t := &Transcript{
		gameID: gameID,
		lines:  make(chan string, buffer),
		write:  write,
		done:   make(chan struct{}),
	}
	go t.chanLoop()
	return t
}

// FileTranscript 寫入檔案 (預設 .log)
func FileTranscript(path, gameID string) *Transcript {
	mylog := llg.NewMyLog(path, slog.LevelDebug, llg.FileLog)
	return NewTranscript(gameID, func(line string) {
		mylog.Dbg("transcript", slog.String(".", line))
	}, transcriptBuffer)
}

func (t *Transcript) chanLoop() {
	for line := range t.lines {
		t.write(line)
	}
	close(t.done)
}

// Line 加上時間與牌局編號後送出
func (t *Transcript) Line(line string) {
	if t == nil {
		return
	}
	stamp := pb.LocalTimestamp(time.Now()).AsTime().Format("01/02 15:04:05")
	stamped := fmt.Sprintf("%s [%s] %s", stamp, shortID(t.gameID), line)

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		t.dropped.Add(1)
		return
	}
	select {
	case t.lines <- stamped:
	default:
		t.dropped.Add(1)
	}
}

func (t *Transcript) Notify(e game.Event) {
	t.Line(e.String())
}

// Dropped 因緩衝已滿或已關閉而丟棄的行數
func (t *Transcript) Dropped() uint64 {
	return t.dropped.Load()
}

// Close 停止接收,等待緩衝中的行寫完. 有丟棄的行時回傳 TranscriptCode 錯誤
func (t *Transcript) Close() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.lines)
	}
	t.mu.Unlock()
	<-t.done
	if n := t.Dropped(); n > 0 {
		slog.Warn("Transcript", slog.String("FYI", fmt.Sprintf("牌局紀錄丟棄 %d 行", n)))
		return AppError(TranscriptCode, fmt.Sprintf("transcript dropped %d lines", n), t.gameID)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
