package dashboard

import "roomfinder/models"

// Snapshot accessors. Each returns a copy of the feed state under the lock
// so callers never observe a half-written update.

func (c *Controller) Properties() FeedState[models.Property] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.properties
}

func (c *Controller) Bookings() FeedState[models.Booking] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookings
}

func (c *Controller) Reviews() FeedState[models.Review] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reviews
}

func (c *Controller) Enquiries() FeedState[models.Enquiry] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enquiries
}

func (c *Controller) Favorites() FeedState[models.Favorite] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.favorites
}

func (c *Controller) Notifications() FeedState[models.Notification] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notifications
}

func (c *Controller) Transactions() FeedState[models.WalletTransaction] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transactions
}

// Stats returns the merged top-line counters.
func (c *Controller) Stats() models.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// VisibleBookings applies the active status filter to the loaded page as a
// display nicety. The server-side filter owns the pagination counts; this
// predicate only narrows what the loaded page shows.
func (c *Controller) VisibleBookings() []models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bookingFilter == "" {
		return c.bookings.Items
	}
	out := make([]models.Booking, 0, len(c.bookings.Items))
	for _, b := range c.bookings.Items {
		if b.Status == c.bookingFilter {
			out = append(out, b)
		}
	}
	return out
}

// VisibleEnquiries mirrors VisibleBookings for the enquiry feed.
func (c *Controller) VisibleEnquiries() []models.Enquiry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enquiryFilter == "" {
		return c.enquiries.Items
	}
	out := make([]models.Enquiry, 0, len(c.enquiries.Items))
	for _, e := range c.enquiries.Items {
		if e.Status == c.enquiryFilter {
			out = append(out, e)
		}
	}
	return out
}

func (c *Controller) setPropertiesLoading(v bool) {
	c.mu.Lock()
	c.properties.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setBookingsLoading(v bool) {
	c.mu.Lock()
	c.bookings.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setReviewsLoading(v bool) {
	c.mu.Lock()
	c.reviews.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setEnquiriesLoading(v bool) {
	c.mu.Lock()
	c.enquiries.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setFavoritesLoading(v bool) {
	c.mu.Lock()
	c.favorites.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setNotificationsLoading(v bool) {
	c.mu.Lock()
	c.notifications.Loading = v
	c.mu.Unlock()
}

func (c *Controller) setTransactionsLoading(v bool) {
	c.mu.Lock()
	c.transactions.Loading = v
	c.mu.Unlock()
}
