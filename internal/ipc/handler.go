package ipc

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 10 * time.Second

// ServeHTTP upgrades the request to a WebSocket and streams messages
// until the client disconnects. Subscribers only receive; anything they
// send is discarded.
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		b.logger.Warn("ipc websocket accept failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()

	id, msgs, unsubscribe := b.subscribe()
	defer unsubscribe()

	b.logger.Debug("ipc subscriber connected", slog.String("subscriber", id))

	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case msg := <-msgs:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, msg)
			cancel()

			if err != nil {
				b.logger.Debug("ipc subscriber write failed",
					slog.String("subscriber", id),
					slog.String("error", err.Error()),
				)

				return
			}
		case <-ctx.Done():
			b.logger.Debug("ipc subscriber disconnected", slog.String("subscriber", id))
			conn.Close(websocket.StatusNormalClosure, "")

			return
		}
	}
}
