package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	updates []UpdateToWeb
	logs    []string
}

func (r *recorder) write(v any) Error {
	switch v := v.(type) {
	case UpdateToWeb:
		r.updates = append(r.updates, v)
	case []string:
		r.logs = append(r.logs, v...)
	}
	return NilError
}

func newTestSession(t *testing.T) (*session, *recorder) {
	r := &recorder{}
	s, err := newSession(r.write, chessgo.WithDepth(1))
	assert.True(t, IsNil(err), err)
	return s, r
}

func send(t *testing.T, s *session, message string) {
	err := s.handleMessage(context.Background(), []byte(message))
	assert.True(t, IsNil(err), err)
}

func TestMoveTriggersEngineReply(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"move": "e2e4"}`)
	assert.Len(t, r.updates, 2)

	human := r.updates[0]
	assert.Equal(t, "e2e4", human.LastMove)
	assert.Equal(t, "black", human.Player)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1", human.FenString)
	assert.Empty(t, human.Error)

	engine := r.updates[1]
	assert.Equal(t, "white", engine.Player)
	assert.NotEqual(t, "e2e4", engine.LastMove)
	assert.Equal(t, "in progress", engine.Status)
	assert.NotEmpty(t, r.logs)
}

func TestIllegalMoveIsReported(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"move": "e2e5"}`)
	assert.Len(t, r.updates, 1)
	assert.Contains(t, r.updates[0].Error, "illegal move")
	assert.Equal(t, "white", r.updates[0].Player)
	assert.Equal(t, "", r.updates[0].LastMove)
}

func TestSelection(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"selection": "b1"}`)
	assert.Len(t, r.updates, 1)
	assert.Equal(t, "b1", r.updates[0].Selection)
	assert.Equal(t, []string{"b1a3", "b1c3"}, r.updates[0].PossibleMoves)
}

func TestUndoAndSettings(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"move": "d2d4"}`)
	send(t, s, `{"undo": true}`)
	last := r.updates[len(r.updates)-1]
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", last.FenString)

	send(t, s, `{"depth": 4}`)
	assert.Equal(t, 4, r.updates[len(r.updates)-1].Depth)

	send(t, s, `{"depth": 40}`)
	assert.NotEmpty(t, r.updates[len(r.updates)-1].Error)
	assert.Equal(t, 4, r.updates[len(r.updates)-1].Depth)

	send(t, s, `{"automated": "none"}`)
	assert.Equal(t, "none", r.updates[len(r.updates)-1].Automated)

	before := len(r.updates)
	send(t, s, `{"move": "e2e4"}`)
	assert.Len(t, r.updates, before+1)
}

func TestEngineCanPlayWhite(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"automated": "white"}`)
	assert.Len(t, r.updates, 2)
	assert.Equal(t, "black", r.updates[1].Player)
	assert.NotEmpty(t, r.updates[1].LastMove)
}

func TestNewFen(t *testing.T) {
	s, r := newTestSession(t)

	send(t, s, `{"automated": "none"}`)
	send(t, s, `{"newFen": "k7/7Q/1K6/8/8/8/8/8 w - - 0 1"}`)
	send(t, s, `{"move": "h7b7"}`)

	last := r.updates[len(r.updates)-1]
	assert.Equal(t, "checkmate", last.Status)
	assert.Equal(t, "white", last.Winner)

	send(t, s, `{"newFen": "not a fen"}`)
	last = r.updates[len(r.updates)-1]
	assert.NotEmpty(t, last.Error)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", last.FenString)

	send(t, s, `{}`)
	assert.Contains(t, r.updates[len(r.updates)-1].Error, "empty message")

	err := s.handleMessage(context.Background(), []byte("{"))
	assert.False(t, IsNil(err))
}

func readUpdate(t *testing.T, c *websocket.Conn) UpdateToWeb {
	for {
		assert.NoError(t, c.SetReadDeadline(time.Now().Add(10*time.Second)))
		_, bytes, err := c.ReadMessage()
		if !assert.NoError(t, err) {
			return UpdateToWeb{}
		}
		if strings.HasPrefix(string(bytes), "[") {
			continue
		}

		var update UpdateToWeb
		assert.NoError(t, json.Unmarshal(bytes, &update))
		return update
	}
}

func TestWebsocketRoundTrip(t *testing.T) {
	server := httptest.NewServer(newRouter(chessgo.WithDepth(1)))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer c.Close()

	initial := readUpdate(t, c)
	assert.Equal(t, "white", initial.Player)
	assert.Equal(t, 0, initial.Evaluation)

	assert.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(`{"move": "g1f3"}`)))
	assert.Equal(t, "g1f3", readUpdate(t, c).LastMove)
	assert.Equal(t, "white", readUpdate(t, c).Player)
}

func TestStateAndIndex(t *testing.T) {
	server := httptest.NewServer(newRouter())
	defer server.Close()

	response, err := http.Get(server.URL + "/state")
	assert.NoError(t, err)
	defer response.Body.Close()

	var update UpdateToWeb
	assert.NoError(t, json.NewDecoder(response.Body).Decode(&update))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", update.FenString)
	assert.Equal(t, "black", update.Automated)
	assert.Equal(t, 3, update.Depth)

	index, err := http.Get(server.URL + "/")
	assert.NoError(t, err)
	defer index.Body.Close()
	assert.Equal(t, http.StatusOK, index.StatusCode)
}
