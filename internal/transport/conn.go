package transport

import (
	"context"

	"github.com/coder/websocket"
)

// wsConn is the minimal connection surface the transport needs. Production
// code wraps *websocket.Conn; tests inject fakes.
type wsConn interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// dialFunc establishes one websocket connection to url.
type dialFunc func(ctx context.Context, url string) (wsConn, error)

type coderConn struct {
	*websocket.Conn
}

func (c coderConn) Read(ctx context.Context) ([]byte, error) {
	_, data, err := c.Conn.Read(ctx)
	return data, err
}

func (c coderConn) Write(ctx context.Context, payload []byte) error {
	return c.Conn.Write(ctx, websocket.MessageText, payload)
}

func dialWebsocket(ctx context.Context, url string) (wsConn, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return coderConn{conn}, nil
}
