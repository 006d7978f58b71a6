package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

type wsMessage struct {
	Type string      `json:"type"`
	View *types.View `json:"view,omitempty"`
}

// hub fans Views out to the WebSocket subscribers of each session. Slow
// subscribers drop intermediate Views; the next one supersedes them anyway.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[chan types.View]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[chan types.View]struct{})}
}

func (h *hub) subscribe(id string) chan types.View {
	ch := make(chan types.View, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[chan types.View]struct{})
	}
	h.subs[id][ch] = struct{}{}
	return ch
}

// unsubscribe removes ch and closes it unless closeSession already did.
func (h *hub) unsubscribe(id string, ch chan types.View) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[id][ch]; !ok {
		return
	}
	delete(h.subs[id], ch)
	if len(h.subs[id]) == 0 {
		delete(h.subs, id)
	}
	close(ch)
}

func (h *hub) publish(id string, v types.View) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[id] {
		select {
		case ch <- v:
		default:
		}
	}
}

// closeSession closes every subscriber of id.
func (h *hub) closeSession(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[id] {
		close(ch)
	}
	delete(h.subs, id)
}

func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	ref := sessionFrom(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "session", ref.id, "err", err)
		return
	}
	defer conn.Close()

	ch := h.hub.subscribe(ref.id)
	defer h.hub.unsubscribe(ref.id, ch)

	send := func(msg wsMessage) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}

	v := ref.s.View()
	if err := send(wsMessage{Type: "view", View: &v}); err != nil {
		return
	}

	// Reader: the client sends nothing meaningful; reading detects close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case v, ok := <-ch:
			if !ok {
				send(wsMessage{Type: "closed"}) //nolint:errcheck
				return
			}
			if err := send(wsMessage{Type: "view", View: &v}); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
