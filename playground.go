package tinyc

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/tinylang/tinyc/playground"
	"github.com/tinylang/tinyc/tiny/translate"
)

type playgroundHandler struct {
	Translator *Translator
	Connection *playground.Connection
}

func (h *playgroundHandler) HandleTranslate(id string, source string) {
	output, err := h.Translator.TranslateSource([]byte(source))
	if err != nil {
		kind, message := "error", err.Error()
		if e, ok := err.(*translate.Error); ok {
			kind, message = e.Kind.String(), e.Message()
		}
		if err := h.Connection.SendError(id, kind, message); err != nil {
			h.LogError(err)
		}
		return
	}
	if err := h.Connection.SendResult(id, output); err != nil {
		h.LogError(err)
	}
}

func (h *playgroundHandler) LogError(err error) {
	h.Translator.logger.Error(err)
}

// ServePlaygroundHTTP upgrades the request to a websocket connection and
// serves live translation requests on it until the client disconnects.
func (t *Translator) ServePlaygroundHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := &websocket.Upgrader{
		CheckOrigin: t.config.WebSocketOriginCheck,
	}
	if upgrader.CheckOrigin == nil {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		t.logger.Error(errors.Wrap(err, "websocket upgrade error"))
		return
	}

	connection := &playground.Connection{}
	connection.Handler = &playgroundHandler{
		Translator: t,
		Connection: connection,
	}
	connection.Serve(conn)
}
