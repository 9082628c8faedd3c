// Package dto holds the JSON wire types shared by the REST API, the
// websocket channel and the board sync client.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// User is the public view of an account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *domain.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL, CreatedAt: u.CreatedAt}
}

// UserRef is a user id with a display name.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Board is a board as seen by the requesting member.
type Board struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	OwnerID     uuid.UUID `json:"ownerId"`
	MyRole      string    `json:"myRole,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBoard(b *domain.BoardWithRole) Board {
	return Board{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Color:       b.Color,
		OwnerID:     b.OwnerID,
		MyRole:      b.MyRole.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BoardSummary is one row of the caller's board list.
type BoardSummary struct {
	Board
	OwnerName string `json:"ownerName"`
	ListCount int    `json:"listCount"`
	TaskCount int    `json:"taskCount"`
}

func FromBoardSummaries(in []domain.BoardSummary) []BoardSummary {
	out := make([]BoardSummary, len(in))
	for i := range in {
		out[i] = BoardSummary{
			Board:     FromBoard(&in[i].BoardWithRole),
			OwnerName: in[i].OwnerName,
			ListCount: in[i].ListCount,
			TaskCount: in[i].TaskCount,
		}
	}
	return out
}

// Member is a board membership with the member's profile.
type Member struct {
	UserID    uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

func FromMember(m *domain.Member) Member {
	return Member{
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		AvatarURL: m.AvatarURL,
		Role:      m.Role.String(),
		JoinedAt:  m.JoinedAt,
	}
}

// List is an ordered column on a board.
type List struct {
	ID        uuid.UUID `json:"id"`
	BoardID   uuid.UUID `json:"boardId"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromList(l *domain.List) List {
	return List{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func FromLists(in []domain.List) []List {
	out := make([]List, len(in))
	for i := range in {
		out[i] = FromList(&in[i])
	}
	return out
}

// ToDomain converts the wire list back into the domain model.
func (l List) ToDomain() domain.List {
	return domain.List{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// Task is a hydrated task card.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"listId"`
	BoardID     uuid.UUID  `json:"boardId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatorName string     `json:"creatorName"`
	Assignees   []UserRef  `json:"assignees"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromTask(t *domain.Task) Task {
	assignees := make([]UserRef, len(t.Assignees))
	for i, a := range t.Assignees {
		assignees[i] = UserRef{ID: a.ID, Name: a.Name}
	}
	return Task{
		ID:          t.ID,
		ListID:      t.ListID,
		BoardID:     t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Position:    t.Position,
		Priority:    t.Priority.String(),
		DueDate:     t.DueDate,
		CreatedBy:   t.CreatedBy,
		CreatorName: t.CreatorName,
		Assignees:   assignees,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTasks(in []domain.Task) []Task {
	out := make([]Task, len(in))
	for i := range in {
		out[i] = FromTask(&in[i])
	}
	return out
}

// ToDomain converts the wire task back into the domain model.
func (t Task) ToDomain() domain.Task {
	assignees := make([]domain.UserRef, len(t.Assignees))
	for i, a := range t.Assignees {
		assignees[i] = domain.UserRef{ID: a.ID, Name: a.Name}
	}
	return domain.Task{
		ID:          t.ID,
		ListID:      t.ListID,
		BoardID:     t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Position:    t.Position,
		Priority:    domain.Priority(t.Priority),
		DueDate:     t.DueDate,
		CreatedBy:   t.CreatedBy,
		CreatorName: t.CreatorName,
		Assignees:   assignees,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// BoardDetail is the full board snapshot.
type BoardDetail struct {
	Board   Board    `json:"board"`
	Lists   []List   `json:"lists"`
	Tasks   []Task   `json:"tasks"`
	Members []Member `json:"members"`
}

func FromBoardDetail(d *domain.BoardDetail) BoardDetail {
	members := make([]Member, len(d.Members))
	for i := range d.Members {
		members[i] = FromMember(&d.Members[i])
	}
	return BoardDetail{
		Board:   FromBoard(&d.BoardWithRole),
		Lists:   FromLists(d.Lists),
		Tasks:   FromTasks(d.Tasks),
		Members: members,
	}
}

// Activity is one entry of a board's activity feed.
type Activity struct {
	ID          uuid.UUID      `json:"id"`
	BoardID     uuid.UUID      `json:"boardId"`
	UserID      uuid.UUID      `json:"userId"`
	UserName    string         `json:"userName"`
	Action      string         `json:"action"`
	EntityType  string         `json:"entityType"`
	EntityID    uuid.UUID      `json:"entityId"`
	EntityTitle string         `json:"entityTitle"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func FromActivities(in []domain.ActivityEntry) []Activity {
	out := make([]Activity, len(in))
	for i, e := range in {
		md := e.Metadata
		if md == nil {
			md = map[string]any{}
		}
		out[i] = Activity{
			ID:          e.ID,
			BoardID:     e.BoardID,
			UserID:      e.UserID,
			UserName:    e.UserName,
			Action:      e.Action.String(),
			EntityType:  e.EntityType.String(),
			EntityID:    e.EntityID,
			EntityTitle: e.EntityTitle,
			Metadata:    md,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}

// Pagination describes a page of results.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func FromPagination(p domain.Pagination) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: p.Total, TotalPages: pages}
}
