// Package server is the hub shared by every terminal session: it registers
// players, keeps a live leaderboard of the best scores of connected players
// and broadcasts hub-wide events such as shutdown.
//
// Each session owns its own fireworks field; the hub never touches game
// state. Scores live only as long as the session does.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fireworks/internal/loop/config"
)

// GameServer is the interface clients use to talk to the hub.
// Decouples the Client from the concrete Server implementation, enabling
// testing and potential network-based implementations.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID int, score int)
	GetSnapshot() *HubSnapshot
}

// Server registers sessions and aggregates their scores.
type Server struct {
	snapshot     atomic.Pointer[HubSnapshot]
	clients      map[int]*ClientHandle
	nextClientID int
	scoreCh      chan ScoreReport
	registerCh   chan *ClientHandle
	unregisterCh chan int
	mu           sync.RWMutex
	record       TopScoreEntry
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a session's registration with the hub.
type ClientHandle struct {
	ID       int
	Username string
	Score    int              // score of the current round
	Best     int              // best round score this session
	EventsCh chan ClientEvent // Events sent to the session
}

// ScoreReport carries a session's current score to the hub.
type ScoreReport struct {
	ClientID int
	Score    int
}

// ClientEvent represents an event sent from the hub to a session.
type ClientEvent struct {
	Type     ClientEventType
	Username string // player the event is about
	Score    int    // for record events
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventPlayerJoined ClientEventType = iota
	EventPlayerLeft
	EventNewRecord
	EventServerShutdown
)

// NewServer creates a hub. A nil logger uses the default logger.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scoreCh:      make(chan ScoreReport, 256),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
		logger:       logger,
	}

	s.snapshot.Store(&HubSnapshot{})
	return s
}

// Run processes hub traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(config.ServerTickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step applies pending registrations and score reports, then publishes a
// fresh snapshot. Run calls it on every hub tick.
func (s *Server) Step() {
	s.processRegistrations()
	s.collectScores()
	s.createSnapshot()
}

// Shutdown notifies all connected sessions and waits for them to disconnect
// (up to the given timeout). The caller should cancel the hub context after
// Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown}, 0)

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.mu.RLock()
			remaining := len(s.clients)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new session with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	if r := []rune(username); len(r) > config.MaxUsernameLength {
		username = string(r[:config.MaxUsernameLength])
	}

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a session from the hub.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// ReportScore records the current score of a session. Reports are dropped
// when the hub falls behind; the next report carries the newer value.
func (s *Server) ReportScore(clientID int, score int) {
	select {
	case s.scoreCh <- ScoreReport{ClientID: clientID, Score: score}:
	default:
	}
}

// GetSnapshot returns the latest published hub state.
func (s *Server) GetSnapshot() *HubSnapshot {
	return s.snapshot.Load()
}

// processRegistrations handles pending registrations and unregistrations.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
			s.logger.Info("player joined", "id", handle.ID, "user", handle.Username)
			s.broadcast(ClientEvent{Type: EventPlayerJoined, Username: handle.Username}, handle.ID)
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			handle, ok := s.clients[clientID]
			if ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
			if ok {
				s.logger.Info("player left", "id", clientID, "user", handle.Username, "best", handle.Best)
				s.broadcast(ClientEvent{Type: EventPlayerLeft, Username: handle.Username}, clientID)
			}
		default:
			return
		}
	}
}

// collectScores applies all pending score reports.
func (s *Server) collectScores() {
	for {
		select {
		case r := <-s.scoreCh:
			s.applyScore(r)
		default:
			return
		}
	}
}

func (s *Server) applyScore(r ScoreReport) {
	s.mu.Lock()
	handle, ok := s.clients[r.ClientID]
	if !ok {
		s.mu.Unlock()
		return
	}
	handle.Score = r.Score
	if r.Score > handle.Best {
		handle.Best = r.Score
	}
	newRecord := handle.Best > s.record.Score
	if newRecord {
		s.record = TopScoreEntry{Username: handle.Username, Score: handle.Best, clientID: handle.ID}
	}
	s.mu.Unlock()

	if newRecord {
		s.logger.Info("new record", "user", handle.Username, "score", handle.Best)
		s.broadcast(ClientEvent{Type: EventNewRecord, Username: handle.Username, Score: handle.Best}, handle.ID)
	}
}

// broadcast sends ev to every session except the one with id skip.
// Sessions with a full event queue miss the event.
func (s *Server) broadcast(ev ClientEvent, skip int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, handle := range s.clients {
		if id == skip {
			continue
		}
		select {
		case handle.EventsCh <- ev:
		default:
		}
	}
}

// createSnapshot publishes an immutable view of the hub.
func (s *Server) createSnapshot() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &HubSnapshot{
		Players:   len(s.clients),
		TopScores: topScores(s.clients, config.LeaderboardSize),
		Record:    s.record,
	}
	s.snapshot.Store(snap)
}
