package realtime

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

// presenceEntry is one joined connection. A user with two open tabs has two
// entries.
type presenceEntry struct {
	userID   uuid.UUID
	userName string
	seq      uint64
}

// room is the set of connections joined to one board.
type room struct {
	members map[*Client]presenceEntry
	nextSeq uint64
}

func newRoom() *room {
	return &room{members: make(map[*Client]presenceEntry)}
}

// add joins c. It reports false if c was already present.
func (r *room) add(c *Client) bool {
	if _, ok := r.members[c]; ok {
		return false
	}
	r.nextSeq++
	r.members[c] = presenceEntry{userID: c.userID, userName: c.userName, seq: r.nextSeq}
	return true
}

func (r *room) remove(c *Client) (presenceEntry, bool) {
	e, ok := r.members[c]
	if ok {
		delete(r.members, c)
	}
	return e, ok
}

func (r *room) has(c *Client) bool {
	_, ok := r.members[c]
	return ok
}

func (r *room) empty() bool { return len(r.members) == 0 }

// snapshot lists every joined connection except exclude, in join order.
func (r *room) snapshot(exclude *Client) []dto.Presence {
	entries := make([]presenceEntry, 0, len(r.members))
	for c, e := range r.members {
		if c == exclude {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]dto.Presence, len(entries))
	for i, e := range entries {
		out[i] = dto.Presence{UserID: e.userID, UserName: e.userName}
	}
	return out
}
