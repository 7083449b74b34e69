package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/gw-remittance/internal/calculator"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/promo"
	"github.com/shopspring/decimal"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsMaxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewCalculatorWSHandler keeps a calculator session on the server. The first
// frame is the initial state; every CalculatorEvent frame received is
// answered with the next CalculatorResponse.
// @Summary Live calculator session
// @Description WebSocket. Send CalculatorEvent JSON frames, receive CalculatorResponse frames.
// @Tags calculator
// @Param amount query number false "Send amount" default(0)
// @Success 101 {object} models.CalculatorResponse
// @Router /calculator/ws [get]
func NewCalculatorWSHandler(session CalculatorSession) http.HandlerFunc {
	return newCalculatorWSHandler(session, wsPongWait)
}

// newCalculatorWSHandler drops a session when no pong arrives within
// pongWait. Pings go out every nine tenths of pongWait.
func newCalculatorWSHandler(session CalculatorSession, pongWait time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(wsMaxMessageSize)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		done := make(chan struct{})
		defer close(done)
		go keepAlive(conn, pongWait*9/10, done)

		ctx := r.Context()
		amount := promo.ParseAmountParam(r.URL.Query().Get(promo.AmountParam), decimal.Zero)
		state, summary := session.Initial(ctx, amount)

		if err := writeFrame(conn, toCalculatorResponse(state, summary)); err != nil {
			logger.Log.Errorw("websocket write failed", "error", err)
			return
		}

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Log.Warnw("calculator session closed", "error", err)
				}
				return
			}

			var ev models.CalculatorEvent
			if err := json.Unmarshal(msg, &ev); err != nil || ev.Type == "" {
				if err := writeFrame(conn, models.ErrorResponse{Error: "Invalid event"}); err != nil {
					return
				}
				continue
			}

			state, summary = session.Reduce(ctx, state, calculator.Event{
				Type:  calculator.EventType(ev.Type),
				Value: ev.Value,
			})

			if err := writeFrame(conn, toCalculatorResponse(state, summary)); err != nil {
				logger.Log.Errorw("websocket write failed", "error", err)
				return
			}
		}
	}
}

// keepAlive pings conn every period until done is closed or a ping fails.
func keepAlive(conn *websocket.Conn, period time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(v)
}
