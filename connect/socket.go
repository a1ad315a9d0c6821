package connect

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ducka/go-coracle/instrumentation"
	"github.com/ducka/go-coracle/observe"
	"github.com/gorilla/websocket"
)

// SocketSource observes the frames read from a websocket endpoint. Dialing
// retries with a fixed delay; a dial that still fails ends the sequence
// through the error path. A normal close from the peer completes the
// sequence, and unsubscribing closes the connection.
func SocketSource(cfg SocketConfig, opts ...observe.ObservableOption) *observe.Observable[[]byte] {
	opts = append([]observe.ObservableOption{observe.WithActivityName("SocketSource")}, opts...)

	return observe.Producer[[]byte](func(sub *observe.Subscriber[[]byte]) (observe.TeardownFunc, error) {
		dialer := &websocket.Dialer{
			HandshakeTimeout: time.Duration(cfg.HandshakeTimeoutMS) * time.Millisecond,
		}

		ctx := sub.Context()

		var conn *websocket.Conn
		err := retry.Do(
			func() error {
				var err error
				conn, _, err = dialer.DialContext(ctx, cfg.URL, nil)
				return err
			},
			retry.Context(ctx),
			retry.Attempts(cfg.DialAttempts),
			retry.Delay(time.Duration(cfg.DialDelayMS)*time.Millisecond),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			return nil, err
		}

		go func() {
			for {
				_, frame, err := conn.ReadMessage()
				if err != nil {
					if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						sub.Complete()
					} else if ctx.Err() != nil {
						sub.Error(ctx.Err())
					} else {
						sub.Error(err)
					}
					return
				}
				sub.Next(frame)
			}
		}()

		return func() {
			if err := conn.Close(); err != nil {
				instrumentation.Logging().Debug("SocketSource", "failed to close connection: "+err.Error())
			}
		}, nil
	}, opts...)
}
