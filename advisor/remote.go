package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kataras/neffos"
	"github.com/kataras/neffos/gobwas"
	utilog "github.com/moszorn/utils/log"
)

// Remote 透過 websocket (neffos) 詢問遠端顧問服務.
// 送出的 body 是 protojson 編碼的 Query,回覆的 body 即是回答文字
type Remote struct {
	url       string
	namespace string
	event     string
	timeout   time.Duration

	mu     sync.Mutex
	client *neffos.Client
	conn   *neffos.NSConn
}

func NewRemote(url, namespace, event string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 40 * time.Second
	}
	return &Remote{
		url:       url,
		namespace: namespace,
		event:     event,
		timeout:   timeout,
	}
}

func (r *Remote) connect(ctx context.Context) (*neffos.NSConn, error) {
	if r.conn != nil {
		if !r.conn.Conn.IsClosed() {
			return r.conn, nil
		}
		// 對方已斷線,先釋放舊的 client 再重新連線
		r.reset()
	}

	client, err := neffos.Dial(ctx, gobwas.DefaultDialer, r.url, neffos.Namespaces{
		r.namespace: neffos.Events{},
	})
	if err != nil {
		return nil, fmt.Errorf("remote advisor dial %s: %w", r.url, err)
	}

	nsConn, err := client.Connect(ctx, r.namespace)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("remote advisor namespace %s: %w", r.namespace, err)
	}

	slog.Debug("Remote", slog.String("FYI", fmt.Sprintf("已連線 %s/%s", r.url, r.namespace)))
	r.client, r.conn = client, nsConn
	return nsConn, nil
}

func (r *Remote) Ask(ctx context.Context, q Query) (string, error) {
	body, err := q.Marshal()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	nsConn, err := r.connect(ctx)
	if err != nil {
		return "", err
	}

	reply, err := nsConn.Ask(ctx, r.event, body)
	if err != nil {
		slog.Warn("Remote", slog.String("event", r.event), utilog.Err(err))
		r.reset()
		return "", err
	}
	if reply.Err != nil {
		return "", reply.Err
	}
	return string(reply.Body), nil
}

func (r *Remote) reset() {
	if r.client != nil {
		r.client.Close()
	}
	r.client, r.conn = nil, nil
}

// Close 關閉連線
func (r *Remote) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
	return nil
}
