package models

import "time"

// Roles known to the dashboard.
const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// Host approval statuses reported by the upstream API.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// User is the authenticated account the dashboard renders for.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ApprovalStatus string    `json:"approvalStatus,omitempty"` // host accounts only
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// IsApprovedHost reports whether the user may access host-only feeds.
func (u *User) IsApprovedHost() bool {
	return u.Role == RoleHost && u.ApprovalStatus == ApprovalApproved
}

// HostApplication is the state of a pending host application, surfaced to
// non-approved hosts instead of the host feeds.
type HostApplication struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}
