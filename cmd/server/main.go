package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"sync"

	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

var logger Logger = &DefaultLogger

func ws(options ...chessgo.ChessGoOption) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Println("upgrade:", err)
			return
		}
		defer c.Close()

		writeLock := sync.Mutex{}
		write := func(v any) Error {
			bytes, err := json.Marshal(v)
			if err != nil {
				return Wrap(err)
			}

			writeLock.Lock()
			defer writeLock.Unlock()
			return Wrap(c.WriteMessage(websocket.TextMessage, bytes))
		}

		s, sessionErr := newSession(write, options...)
		if !IsNil(sessionErr) {
			logger.Println("session:", sessionErr)
			return
		}

		sessionErr = s.send(UpdateToWeb{})
		if !IsNil(sessionErr) {
			logger.Println("websocket:", sessionErr)
			return
		}

		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				logger.Printf("Error: %v", err)
				break
			}

			sessionErr := s.handleMessage(r.Context(), message)
			if !IsNil(sessionErr) {
				logger.Println("handleMessage:", sessionErr)
			}
		}
	}
}

func state(options ...chessgo.ChessGoOption) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := newSession(func(v any) Error { return NilError }, options...)
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.state(UpdateToWeb{})); err != nil {
			logger.Println("state:", err)
		}
	}
}

func index(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "chessduel: connect a client to /ws")
}

func newRouter(options ...chessgo.ChessGoOption) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", ws(options...))
	router.HandleFunc("/state", state(options...)).Methods(http.MethodGet)
	router.HandleFunc("/", index)
	return router
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	port := 8002

	args := os.Args[1:]
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		}
	}

	logger.Println("serving at", port)

	err := Wrap(http.ListenAndServe(fmt.Sprintf(":%v", port), newRouter()))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
