package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	jobWatchTimeout = 5 * time.Minute
	writeWait       = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleGetJob returns the latest snapshot of a job
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobRunner.Get(mux.Vars(r)["id"])
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSONResponse(w, job)
}

// handleWatchJob upgrades to a websocket, sends the finished job once and closes
func (s *Server) handleWatchJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := s.jobRunner.Get(id); err != nil {
		s.sendError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Jobs: websocket upgrade failed for %s: %v", id, err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(r.Context(), jobWatchTimeout)
	defer cancel()

	// The client never sends anything; a read error means it went away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	job, err := s.jobRunner.Wait(ctx, id)
	if err != nil {
		log.Printf("Jobs: stopped watching %s: %v", id, err)
		closeMessage := websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error())
		_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(writeWait))
		return
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(job); err != nil {
		log.Printf("Jobs: failed to send job %s: %v", id, err)
		return
	}

	closeMessage := websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(job.Status))
	_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(writeWait))
}
