// Package playground implements the websocket transport for the live
// translation service: the client sends TINY source and receives either the
// generated program or the error that stopped the run.
package playground

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type MessageType string

const (
	// Sent by the client to request a translation of the payload's source.
	MessageTypeTranslate MessageType = "translate"

	// Sent by the server with the translated program.
	MessageTypeResult MessageType = "result"

	// Sent by the server when a translation run fails.
	MessageTypeError MessageType = "error"
)

type Message struct {
	Id      string          `json:"id,omitempty"`
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TranslatePayload struct {
	Source string `json:"source"`
}

type ResultPayload struct {
	Output string `json:"output"`
}

type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ConnectionHandler methods are invoked from the connection's read loop and
// are never invoked concurrently.
type ConnectionHandler interface {
	// HandleTranslate is called when the client requests a translation. Each
	// call is an independent translation run; the handler should respond with
	// SendResult or SendError.
	HandleTranslate(id string, source string)

	// LogError is called when an unexpected transport error occurs.
	LogError(err error)
}

// Connection represents a server-side playground connection.
type Connection struct {
	Handler ConnectionHandler

	conn *websocket.Conn
}

// Serve takes ownership of conn and reads translate requests from it until
// the client disconnects.
func (c *Connection) Serve(conn *websocket.Conn) {
	c.conn = conn
	defer c.conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.Handler.LogError(errors.Wrap(err, "websocket read error"))
			}
			return
		}

		var msg Message
		if err := jsoniter.Unmarshal(data, &msg); err != nil {
			c.Handler.LogError(errors.Wrap(err, "error unmarshaling message"))
			continue
		}

		switch msg.Type {
		case MessageTypeTranslate:
			var payload TranslatePayload
			if err := jsoniter.Unmarshal(msg.Payload, &payload); err != nil {
				c.Handler.LogError(errors.Wrap(err, "error unmarshaling translate payload"))
				continue
			}
			c.Handler.HandleTranslate(msg.Id, payload.Source)
		default:
			c.Handler.LogError(errors.Errorf("unexpected message type %q", msg.Type))
		}
	}
}

// SendResult sends the translated program to the client.
func (c *Connection) SendResult(id string, output string) error {
	return c.sendMessage(&Message{
		Id:   id,
		Type: MessageTypeResult,
	}, ResultPayload{
		Output: output,
	})
}

// SendError reports a failed run to the client.
func (c *Connection) SendError(id string, kind string, message string) error {
	return c.sendMessage(&Message{
		Id:   id,
		Type: MessageTypeError,
	}, ErrorPayload{
		Kind:    kind,
		Message: message,
	})
}

func (c *Connection) sendMessage(msg *Message, payload interface{}) error {
	buf, err := jsoniter.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "error marshaling payload")
	}
	msg.Payload = json.RawMessage(buf)

	data, err := jsoniter.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "error marshaling message")
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}
