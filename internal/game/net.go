package game

import (
	"encoding/json"
	"errors"
	"net/http"
	neturl "net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Net wraps the server websocket. Inbound frames are queued raw on inCh
// and decoded on the update loop; outbound sends marshal the record and
// silently fail once the socket is gone.
type Net struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	inCh   chan json.RawMessage
	closed bool
	log    *zap.SugaredLogger
}

func NewNet(wsURL string, log *zap.SugaredLogger) (*Net, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		Proxy: func(*http.Request) (*neturl.URL, error) {
			return nil, nil // disable proxies
		},
	}

	log.Infof("WS dial: %s", wsURL)
	c, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		log.Warnf("WS dial failed: %v", err)
		return nil, err
	}

	n := &Net{conn: c, inCh: make(chan json.RawMessage, 128), log: log}
	go n.reader()
	return n, nil
}

func (n *Net) reader() {
	for {
		_, data, err := n.conn.ReadMessage()
		if err != nil {
			// No reconnect policy: the session just goes quiet.
			n.log.Infof("WS read: %v", err)
			n.mu.Lock()
			n.closed = true
			n.conn = nil
			n.mu.Unlock()
			close(n.inCh)
			return
		}
		buf := make([]byte, len(data))
		copy(buf, data)
		n.inCh <- buf
	}
}

func (n *Net) Send(v interface{}) error {
	n.mu.Lock()
	if n.closed || n.conn == nil {
		n.mu.Unlock()
		return errors.New("net: write on closed")
	}
	c := n.conn
	n.mu.Unlock()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
		n.log.Infof("WS write: %v", err)
		n.mu.Lock()
		n.closed = true
		n.conn = nil
		n.mu.Unlock()
		return err
	}
	return nil
}

// IsClosed reports whether Close() was called or the connection was torn down.
func (n *Net) IsClosed() bool {
	if n == nil {
		return true
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Close closes the websocket and marks the Net as closed.
func (n *Net) Close() error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	c := n.conn
	n.conn = nil
	n.mu.Unlock()

	var err error
	if c != nil {
		err = c.Close()
	}
	return err
}
