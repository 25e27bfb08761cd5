package models

// DashboardStats are the top-line counters shown on the overview page. The
// record is built up by partial merges: each feed or stat endpoint patches
// only the fields it knows about, so a late response for one feed never
// zeroes a counter populated by another.
type DashboardStats struct {
	TotalProperties     int     `json:"totalProperties"`
	TotalBookings       int     `json:"totalBookings"`
	TotalEarnings       float64 `json:"totalEarnings"`
	AverageRating       float64 `json:"averageRating"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

// StatsPatch is a partial update to DashboardStats. Nil fields are left
// untouched by the merge.
type StatsPatch struct {
	TotalProperties     *int     `json:"totalProperties,omitempty"`
	TotalBookings       *int     `json:"totalBookings,omitempty"`
	TotalEarnings       *float64 `json:"totalEarnings,omitempty"`
	AverageRating       *float64 `json:"averageRating,omitempty"`
	UnreadNotifications *int     `json:"unreadNotifications,omitempty"`
}

// Merge applies every non-nil field of the patch onto s.
func (s *DashboardStats) Merge(p StatsPatch) {
	if p.TotalProperties != nil {
		s.TotalProperties = *p.TotalProperties
	}
	if p.TotalBookings != nil {
		s.TotalBookings = *p.TotalBookings
	}
	if p.TotalEarnings != nil {
		s.TotalEarnings = *p.TotalEarnings
	}
	if p.AverageRating != nil {
		s.AverageRating = *p.AverageRating
	}
	if p.UnreadNotifications != nil {
		s.UnreadNotifications = *p.UnreadNotifications
	}
}
