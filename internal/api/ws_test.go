package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

type wsMsg struct {
	Type string      `json:"type"`
	View *types.View `json:"view,omitempty"`
}

func dialWS(t *testing.T, srv *httptest.Server, path string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	return websocket.DefaultDialer.Dial(wsURL, nil)
}

func readMsg(t *testing.T, conn *websocket.Conn) wsMsg {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg wsMsg
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWSNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	_, resp, err := dialWS(t, srv, "/api/sessions/nonexistent/ws")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWSPushesViews(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createSession(t, srv)

	conn, _, err := dialWS(t, srv, "/api/sessions/"+id+"/ws")
	require.NoError(t, err)
	defer conn.Close()

	first := readMsg(t, conn)
	assert.Equal(t, "view", first.Type)
	require.NotNil(t, first.View)
	assert.Zero(t, first.View.Len())

	do(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/items", `{"category":"pickup","text":"Milk"}`)

	next := readMsg(t, conn)
	require.NotNil(t, next.View)
	assert.Equal(t, []string{"Milk"}, next.View.Pickup)
}

func TestWSClosedWhenSessionEnds(t *testing.T) {
	srv, _ := newTestServer(t)
	id := createSession(t, srv)

	conn, _, err := dialWS(t, srv, "/api/sessions/"+id+"/ws")
	require.NoError(t, err)
	defer conn.Close()
	readMsg(t, conn)

	do(t, http.MethodDelete, srv.URL+"/api/sessions/"+id, "")

	msg := readMsg(t, conn)
	assert.Equal(t, "closed", msg.Type)
}
