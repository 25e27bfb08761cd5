// Package dashboard orchestrates the independently paginated data feeds a
// dashboard page shows. Each feed keeps its own items, pagination record,
// loading flag and error, so one slow or failing feed never disturbs the
// others.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"roomfinder/apiclient"
	"roomfinder/models"

	"go.uber.org/zap"
)

// Fixed gate messages. Role-gated feeds short-circuit with these and never
// issue the network call.
const (
	MsgHostAccessRequired  = "Host access required"
	MsgAdminAccessRequired = "Admin access required"
	msgGenericFetchFailure = "Failed to load data, please try again"
)

// FeedState is the reconciled state of one paginated feed.
type FeedState[T any] struct {
	Items      []T               `json:"items"`
	Pagination models.Pagination `json:"pagination"`
	Loading    bool              `json:"loading"`
	Err        string            `json:"error,omitempty"`
}

// Controller drives every feed for one authenticated user.
type Controller struct {
	api      *apiclient.Client
	user     *models.User
	pageSize int
	logger   *zap.Logger

	mu            sync.Mutex
	properties    FeedState[models.Property]
	bookings      FeedState[models.Booking]
	reviews       FeedState[models.Review]
	enquiries     FeedState[models.Enquiry]
	favorites     FeedState[models.Favorite]
	notifications FeedState[models.Notification]
	transactions  FeedState[models.WalletTransaction]

	bookingFilter string
	enquiryFilter string

	stats models.DashboardStats
}

// NewController builds a controller for the given user. pageSize is the
// per-feed item count requested from the upstream API.
func NewController(api *apiclient.Client, user *models.User, pageSize int, logger *zap.Logger) *Controller {
	if pageSize < 1 {
		pageSize = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		api:      api,
		user:     user,
		pageSize: pageSize,
		logger:   logger,
	}
}

// LoadAll fans out the initial fetch of every feed concurrently. Failures
// are isolated per feed: each is recorded in that feed's state and logged,
// and never blocks or cancels a sibling fetch.
func (c *Controller) LoadAll(ctx context.Context) {
	type task struct {
		name string
		run  func(context.Context) error
	}
	tasks := []task{
		{"properties", func(ctx context.Context) error { return c.FetchProperties(ctx, 1) }},
		{"bookings", func(ctx context.Context) error { return c.FetchBookings(ctx, 1, "") }},
		{"reviews", func(ctx context.Context) error { return c.FetchReviews(ctx, 1) }},
		{"enquiries", func(ctx context.Context) error { return c.FetchEnquiries(ctx, 1, "") }},
		{"favorites", func(ctx context.Context) error { return c.FetchFavorites(ctx, 1) }},
		{"notifications", func(ctx context.Context) error { return c.FetchNotifications(ctx, 1) }},
		{"transactions", func(ctx context.Context) error { return c.FetchTransactions(ctx, 1) }},
		{"unread-count", c.RefreshUnreadCount},
		{"wallet-balance", c.RefreshWalletBalance},
	}

	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go func(t task) {
			defer wg.Done()
			if err := t.run(ctx); err != nil {
				c.logger.Warn("feed load failed",
					zap.String("feed", t.name),
					zap.Error(err))
			}
		}(t)
	}
	wg.Wait()
}

// FetchProperties loads the host's own listings. Host-gated.
func (c *Controller) FetchProperties(ctx context.Context, page int) error {
	if msg := c.hostGate(); msg != "" {
		c.mu.Lock()
		c.properties.Err = msg
		c.mu.Unlock()
		return errors.New(msg)
	}
	c.setPropertiesLoading(true)
	defer c.setPropertiesLoading(false)

	res, err := c.api.HostProperties(ctx, "", normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.properties.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.properties.Err = softFailureMessage(res.Message)
		return nil
	}
	c.properties.Items = res.Properties
	c.properties.Pagination = res.Pagination
	c.properties.Err = ""
	total := res.Pagination.TotalItems
	c.stats.Merge(models.StatsPatch{TotalProperties: &total})
	return nil
}

// FetchBookings loads bookings for the current page and status filter. The
// filter is passed through as a server-side query parameter so pagination
// counts reflect the filtered set. Hosts see bookings against their
// properties; guests see their own.
func (c *Controller) FetchBookings(ctx context.Context, page int, status string) error {
	if c.user.Role == models.RoleHost {
		if msg := c.hostGate(); msg != "" {
			c.mu.Lock()
			c.bookings.Err = msg
			c.mu.Unlock()
			return errors.New(msg)
		}
	}
	c.mu.Lock()
	c.bookingFilter = status
	c.bookings.Loading = true
	c.mu.Unlock()
	defer c.setBookingsLoading(false)

	var res *apiclient.BookingList
	var err error
	if c.user.Role == models.RoleHost {
		res, err = c.api.HostBookings(ctx, status, normalizePage(page), c.pageSize)
	} else {
		res, err = c.api.GuestBookings(ctx, status, normalizePage(page), c.pageSize)
	}
	if err != nil {
		c.mu.Lock()
		c.bookings.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.bookings.Err = softFailureMessage(res.Message)
		return nil
	}
	c.bookings.Items = res.Bookings
	c.bookings.Pagination = res.Pagination
	c.bookings.Err = ""
	// Stats track the unfiltered total only.
	if status == "" {
		total := res.Pagination.TotalItems
		c.stats.Merge(models.StatsPatch{TotalBookings: &total})
	}
	return nil
}

// FetchReviews loads reviews on the host's properties. Host-gated.
func (c *Controller) FetchReviews(ctx context.Context, page int) error {
	if msg := c.hostGate(); msg != "" {
		c.mu.Lock()
		c.reviews.Err = msg
		c.mu.Unlock()
		return errors.New(msg)
	}
	c.setReviewsLoading(true)
	defer c.setReviewsLoading(false)

	res, err := c.api.HostReviews(ctx, normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.reviews.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.reviews.Err = softFailureMessage(res.Message)
		return nil
	}
	c.reviews.Items = res.Reviews
	c.reviews.Pagination = res.Pagination
	c.reviews.Err = ""
	if avg := averageRating(res.Reviews); avg > 0 {
		c.stats.Merge(models.StatsPatch{AverageRating: &avg})
	}
	return nil
}

// FetchEnquiries loads enquiries for the current page and status filter.
func (c *Controller) FetchEnquiries(ctx context.Context, page int, status string) error {
	c.mu.Lock()
	c.enquiryFilter = status
	c.enquiries.Loading = true
	c.mu.Unlock()
	defer c.setEnquiriesLoading(false)

	res, err := c.api.Enquiries(ctx, status, normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.enquiries.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.enquiries.Err = softFailureMessage(res.Message)
		return nil
	}
	c.enquiries.Items = res.Enquiries
	c.enquiries.Pagination = res.Pagination
	c.enquiries.Err = ""
	return nil
}

// FetchFavorites loads the user's saved properties.
func (c *Controller) FetchFavorites(ctx context.Context, page int) error {
	c.setFavoritesLoading(true)
	defer c.setFavoritesLoading(false)

	res, err := c.api.Favorites(ctx, normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.favorites.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.favorites.Err = softFailureMessage(res.Message)
		return nil
	}
	c.favorites.Items = res.Favorites
	c.favorites.Pagination = res.Pagination
	c.favorites.Err = ""
	return nil
}

// FetchNotifications loads the user's notifications.
func (c *Controller) FetchNotifications(ctx context.Context, page int) error {
	c.setNotificationsLoading(true)
	defer c.setNotificationsLoading(false)

	res, err := c.api.Notifications(ctx, normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.notifications.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.notifications.Err = softFailureMessage(res.Message)
		return nil
	}
	c.notifications.Items = res.Notifications
	c.notifications.Pagination = res.Pagination
	c.notifications.Err = ""
	return nil
}

// FetchTransactions loads the wallet ledger.
func (c *Controller) FetchTransactions(ctx context.Context, page int) error {
	c.setTransactionsLoading(true)
	defer c.setTransactionsLoading(false)

	res, err := c.api.WalletTransactions(ctx, normalizePage(page), c.pageSize)
	if err != nil {
		c.mu.Lock()
		c.transactions.Err = fetchFailureMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.transactions.Err = softFailureMessage(res.Message)
		return nil
	}
	c.transactions.Items = res.Transactions
	c.transactions.Pagination = res.Pagination
	c.transactions.Err = ""
	return nil
}

// RefreshUnreadCount patches the unread-notification counter into stats.
func (c *Controller) RefreshUnreadCount(ctx context.Context) error {
	count, err := c.api.UnreadNotificationCount(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Merge(models.StatsPatch{UnreadNotifications: &count})
	return nil
}

// RefreshWalletBalance patches total earnings into stats.
func (c *Controller) RefreshWalletBalance(ctx context.Context) error {
	balance, err := c.api.WalletBalance(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	earnings := balance.Available + balance.Pending
	c.stats.Merge(models.StatsPatch{TotalEarnings: &earnings})
	return nil
}

// hostGate returns a fixed message when the user may not access host feeds.
func (c *Controller) hostGate() string {
	if c.user == nil || !c.user.IsApprovedHost() {
		return MsgHostAccessRequired
	}
	return ""
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// fetchFailureMessage maps an error to the banner text shown on a feed.
// Backend-reported messages surface verbatim; transport errors collapse to
// a generic retry prompt.
func fetchFailureMessage(err error) string {
	var reqErr *apiclient.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return msgGenericFetchFailure
}

func softFailureMessage(msg string) string {
	if msg == "" {
		return msgGenericFetchFailure
	}
	return msg
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
