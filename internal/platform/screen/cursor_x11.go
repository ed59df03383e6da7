//go:build linux || freebsd || netbsd || openbsd

package screen

import (
	"fmt"
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type x11Cursor struct {
	mu   sync.Mutex
	conn *xgb.Conn
	root xproto.Window
}

func newCursorSource() cursorSource {
	return &x11Cursor{}
}

func (c *x11Cursor) position() (image.Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		conn, err := xgb.NewConn()
		if err != nil {
			return image.Point{}, fmt.Errorf("connect to X server: %w", err)
		}
		c.conn = conn
		c.root = xproto.Setup(conn).DefaultScreen(conn).Root
	}

	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		// Reconnect on the next call; the server may have gone away.
		c.conn.Close()
		c.conn = nil
		return image.Point{}, fmt.Errorf("query pointer: %w", err)
	}
	return image.Pt(int(reply.RootX), int(reply.RootY)), nil
}

func (c *x11Cursor) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	return nil
}
