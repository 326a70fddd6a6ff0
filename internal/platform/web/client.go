package web

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridflight/internal/flight"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBuffer = 64
)

// Client is one browser connection flying its own plane.
type Client struct {
	srv    *Server
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	ctrl   *flight.Controller
	logger *log.Logger

	// started is only touched by readPump.
	started bool
}

func newClient(srv *Server, conn *websocket.Conn, logger *log.Logger) *Client {
	c := &Client{
		srv:    srv,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
	c.ctrl = flight.NewController(c, srv.cfg.ControllerOptions(srv.opts.Seed, logger))
	return c
}

// OnRedraw implements flight.Adapter.
func (c *Client) OnRedraw(f flight.Frame) {
	c.enqueue(frameMessage(TypeRedraw, f.Viewport, f.Snapshot, false))
}

// OnCrash implements flight.Adapter.
func (c *Client) OnCrash(report flight.CrashReport, f flight.Frame) {
	msg := frameMessage(TypeCrash, f.Viewport, f.Snapshot, true)
	msg.Message = report.Message()
	c.enqueue(msg)
}

func (c *Client) enqueue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("marshal message", "error", err)
		return
	}
	select {
	case c.send <- data:
	case <-c.done:
	default:
		c.logger.Warn("send buffer full, dropping frame", "type", msg.Type)
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		c.ctrl.Stop()
		close(c.done)
	})
}

// handle applies one client command.
func (c *Client) handle(msg ClientMessage) {
	switch msg.Type {
	case TypeHeading:
		h, err := flight.ParseHeading(msg.Heading)
		if err != nil {
			c.enqueue(ServerMessage{Type: TypeError, Message: err.Error()})
			return
		}
		c.ctrl.SetHeading(h)
	case TypeRestart:
		c.ctrl.Restart()
	case TypeResize:
		w, h := c.srv.framePixels(msg.Width, msg.Height)
		if !c.started {
			c.started = true
			c.ctrl.Start(w, h)
			return
		}
		c.ctrl.Resize(w, h)
	default:
		c.enqueue(ServerMessage{Type: TypeError, Message: "unknown message type " + msg.Type})
	}
}

// readPump decodes commands until the connection fails.
func (c *Client) readPump() {
	defer func() {
		c.close()
		c.srv.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.enqueue(ServerMessage{Type: TypeError, Message: "invalid message: " + err.Error()})
			continue
		}
		c.handle(msg)
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
