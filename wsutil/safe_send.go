package wsutil

import (
	"encoding/json"
	"log/slog"
)

// SafeSend delivers data on ch without panicking if the channel has been
// closed by the hub. If the channel is full or closed the message is
// dropped; the panic is recovered and logged.
func SafeSend(ch chan []byte, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("send to closed channel", "tag", "wsutil", "recovered", r)
		}
	}()
	select {
	case ch <- data:
	default:
	}
}

// SendJSON marshals v and SafeSends the result. Marshal failures are
// logged and the message dropped.
func SendJSON(ch chan []byte, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshaling outbound message", "tag", "wsutil", "err", err)
		return
	}
	SafeSend(ch, data)
}
