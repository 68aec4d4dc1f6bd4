package server

import "sort"

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// HubSnapshot is an immutable view of the hub for rendering.
type HubSnapshot struct {
	Players   int
	TopScores []TopScoreEntry // best scores of connected players, highest first
	Record    TopScoreEntry   // best score since the hub started
}

// topScores returns the n best session scores, highest first. Equal scores
// rank the earlier session first. Sessions that never scored are left out.
func topScores(clients map[int]*ClientHandle, n int) []TopScoreEntry {
	entries := make([]TopScoreEntry, 0, len(clients))
	for _, h := range clients {
		if h.Best <= 0 {
			continue
		}
		entries = append(entries, TopScoreEntry{Username: h.Username, Score: h.Best, clientID: h.ID})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
