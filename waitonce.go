package bidwhist

import "sync/atomic"

// Barrier 一次性的完成通知: Session 結束或收到中斷訊號時 Done, main 以 Wait 等待
type Barrier struct {
	locked *uint32
	ready  *uint32

	err     error
	channel chan struct{}
}

func NewBarrier() *Barrier {
	return &Barrier{
		locked:  new(uint32),
		ready:   new(uint32),
		channel: make(chan struct{}),
	}
}

func (w *Barrier) isReady() bool {
	if w == nil {
		return true
	}
	return atomic.LoadUint32(w.ready) > 0
}

// Wait 阻塞到第一次 Done,回傳 Done 時的錯誤
func (w *Barrier) Wait() error {
	if w == nil {
		return nil
	}
	if w.isReady() {
		return w.err
	}
	<-w.channel
	return w.err
}

// Done 只有第一次呼叫有效
func (w *Barrier) Done(err error) {
	if w == nil || !atomic.CompareAndSwapUint32(w.locked, 0, 1) {
		return
	}
	w.err = err
	atomic.StoreUint32(w.ready, 1)
	close(w.channel)
}
