package domain

// Role is a member's permission level on a board.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityTypeList EntityType = "list"
	EntityTypeTask EntityType = "task"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeList, EntityTypeTask:
		return true
	}
	return false
}

// ActivityAction is the verb recorded in the activity feed.
type ActivityAction string

const (
	ActivityCreated  ActivityAction = "created"
	ActivityUpdated  ActivityAction = "updated"
	ActivityDeleted  ActivityAction = "deleted"
	ActivityMoved    ActivityAction = "moved"
	ActivityAssigned ActivityAction = "assigned"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityDeleted, ActivityMoved, ActivityAssigned:
		return true
	}
	return false
}
