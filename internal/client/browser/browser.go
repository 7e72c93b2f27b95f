// Package browser is the auction browsing and bidding view-model.
//
// It owns the fetched dashboard state (profile, open auctions, the user's
// active and winning bids), the currently open auction detail with its bid
// history, and the local filter criteria. Presentation layers read derived
// state through accessors and drive it through the Load*/PlaceBid
// operations; the package itself renders nothing.
//
// The remote API is the single source of truth: nothing here mutates an
// auction locally, and a successful bid is followed by a refetch rather
// than an optimistic price bump, since the server may reject raced bids.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bidcars/bidcars-cli/internal/client/api"
	"github.com/bidcars/bidcars-cli/internal/client/models"
	"github.com/bidcars/bidcars-cli/internal/logging"
)

var (
	// ErrBidInFlight is returned when a second bid is attempted while one
	// is still pending for the open detail view. The server is not
	// contacted.
	ErrBidInFlight = errors.New("a bid is already being placed for this auction")

	// ErrNoOpenDetail is returned when PlaceBid is called without an
	// auction detail view open.
	ErrNoOpenDetail = errors.New("no auction is open for bidding")

	// ErrAuctionEnded is returned when bidding on an auction that is
	// closed or past its end time.
	ErrAuctionEnded = errors.New("auction has ended")
)

// ValidationError is a locally detected bid violation: the offered amount
// does not exceed the auction's current bid. It is raised before any
// network call and carries the bid that must be beaten.
type ValidationError struct {
	CurrentBid float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bid must be higher than the current bid of $%.2f", e.CurrentBid)
}

// Stats are the dashboard header figures, derived from loaded state.
type Stats struct {
	ActiveBids   int
	WonAuctions  int
	OpenAuctions int
	TotalSpent   float64
}

// PlaceBidResult is the outcome of an accepted bid: the recorded bid plus
// the refreshed detail and history, so callers never have to reload the
// whole view themselves. Notices report refresh slots that degraded.
type PlaceBidResult struct {
	Bid        *models.Bid
	Detail     *models.AuctionDetail
	BidHistory []models.Bid
	Notices    []string
}

// Browser holds the view state. All fields behind mu; the concurrent slot
// fetches inside the Load operations write local variables and commit under
// the lock in one step.
type Browser struct {
	api api.Client
	log logging.Logger
	now func() time.Time

	mu               sync.Mutex
	profile          *models.UserProfile
	auctions         []models.AuctionSummary
	activeBids       []models.Bid
	wonAuctions      []models.Bid
	detail           *models.AuctionDetail
	bidHistory       []models.Bid
	filters          FilterState
	dashboardLoading bool
	bidInFlight      bool
}

func New(apiClient api.Client, log logging.Logger) *Browser {
	return &Browser{
		api: apiClient,
		log: log.With("component", "browser"),
		now: time.Now,
	}
}

// LoadDashboard issues the four dashboard fetches concurrently. Profile
// failure is fatal and returns an error; the three list slots degrade to
// empty on failure, each reported as a notice. A credential rejection on
// any fetch is returned as-is so the caller can drop to the login state.
func (b *Browser) LoadDashboard(ctx context.Context) ([]string, error) {
	b.mu.Lock()
	b.dashboardLoading = true
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.dashboardLoading = false
		b.mu.Unlock()
	}()

	var (
		profile     *models.UserProfile
		activeBids  []models.Bid
		wonAuctions []models.Bid
		auctions    []models.AuctionSummary

		profileErr, activeErr, wonErr, auctionsErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = b.api.CurrentUser(ctx)
	}()
	go func() {
		defer wg.Done()
		activeBids, activeErr = b.api.MyActiveBids(ctx)
	}()
	go func() {
		defer wg.Done()
		wonAuctions, wonErr = b.api.MyWonAuctions(ctx)
	}()
	go func() {
		defer wg.Done()
		auctions, auctionsErr = b.api.OpenAuctions(ctx)
	}()
	wg.Wait()

	for _, err := range []error{profileErr, activeErr, wonErr, auctionsErr} {
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, err
		}
	}

	if profileErr != nil {
		return nil, fmt.Errorf("loading profile: %w", profileErr)
	}

	var notices []string
	if activeErr != nil {
		b.log.Warn(ctx, "active bids unavailable", "error", activeErr)
		notices = append(notices, "active bids unavailable")
		activeBids = nil
	}
	if wonErr != nil {
		b.log.Warn(ctx, "won auctions unavailable", "error", wonErr)
		notices = append(notices, "won auctions unavailable")
		wonAuctions = nil
	}
	if auctionsErr != nil {
		b.log.Warn(ctx, "open auctions unavailable", "error", auctionsErr)
		notices = append(notices, "open auctions unavailable")
		auctions = nil
	}

	b.mu.Lock()
	b.profile = profile
	b.activeBids = activeBids
	b.wonAuctions = wonAuctions
	b.auctions = auctions
	b.mu.Unlock()

	return notices, nil
}

// LoadAuctions refreshes only the open-auction list. On failure the slot is
// left as it was; recovery is a later explicit reload.
func (b *Browser) LoadAuctions(ctx context.Context) error {
	auctions, err := b.api.OpenAuctions(ctx)
	if err != nil {
		return fmt.Errorf("loading auctions: %w", err)
	}
	b.mu.Lock()
	b.auctions = auctions
	b.mu.Unlock()
	return nil
}

// LoadAuctionDetail opens the detail view for one auction. The detail and
// its bid history are fetched concurrently and fail independently: a detail
// failure is terminal (the view stays closed, the error is returned), a
// history failure degrades to an empty history with a notice.
func (b *Browser) LoadAuctionDetail(ctx context.Context, id int64) ([]string, error) {
	detail, bids, detailErr, bidsErr := b.fetchDetail(ctx, id)

	for _, err := range []error{detailErr, bidsErr} {
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, err
		}
	}

	if detailErr != nil {
		b.mu.Lock()
		b.detail = nil
		b.bidHistory = nil
		b.mu.Unlock()
		return nil, fmt.Errorf("loading auction %d: %w", id, detailErr)
	}

	var notices []string
	if bidsErr != nil {
		b.log.Warn(ctx, "bid history unavailable", "auction_id", id, "error", bidsErr)
		notices = append(notices, "bid history unavailable")
		bids = nil
	}

	b.mu.Lock()
	b.detail = detail
	b.bidHistory = bids
	b.mu.Unlock()

	return notices, nil
}

// fetchDetail runs the detail/history pair of fetches without touching any
// state. Both Load paths and the post-bid refresh share it.
func (b *Browser) fetchDetail(ctx context.Context, id int64) (*models.AuctionDetail, []models.Bid, error, error) {
	var (
		detail    *models.AuctionDetail
		bids      []models.Bid
		detailErr error
		bidsErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		detail, detailErr = b.api.AuctionDetail(ctx, id)
	}()
	go func() {
		defer wg.Done()
		bids, bidsErr = b.api.AuctionBids(ctx, id)
	}()
	wg.Wait()

	return detail, bids, detailErr, bidsErr
}

// CloseDetail leaves the detail view and discards its state.
func (b *Browser) CloseDetail() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detail = nil
	b.bidHistory = nil
	b.bidInFlight = false
}

// PlaceBid submits a bid on the open detail view.
//
// Local checks, in order, none of which contact the server:
//   - a detail view must be open (ErrNoOpenDetail);
//   - the auction must still be active (ErrAuctionEnded);
//   - amount must exceed the current bid (*ValidationError);
//   - no other bid may be in flight for this view (ErrBidInFlight).
//
// On acceptance the detail and history are refetched and returned in the
// result; the local price is never bumped optimistically. On a server
// rejection the error carries the server's message and no state changes,
// so the caller may retry with a corrected amount.
func (b *Browser) PlaceBid(ctx context.Context, amount float64) (*PlaceBidResult, error) {
	b.mu.Lock()
	if b.detail == nil {
		b.mu.Unlock()
		return nil, ErrNoOpenDetail
	}
	detail := b.detail
	if !IsActive(detail.EndTime, detail.IsClosed, b.now()) {
		b.mu.Unlock()
		return nil, ErrAuctionEnded
	}
	if amount <= detail.CurrentBid {
		current := detail.CurrentBid
		b.mu.Unlock()
		return nil, &ValidationError{CurrentBid: current}
	}
	if b.bidInFlight {
		b.mu.Unlock()
		return nil, ErrBidInFlight
	}
	b.bidInFlight = true
	auctionID := detail.ID
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.bidInFlight = false
		b.mu.Unlock()
	}()

	bid, err := b.api.PlaceBid(ctx, auctionID, amount)
	if err != nil {
		return nil, err
	}
	b.log.Info(ctx, "bid placed", "auction_id", auctionID, "amount", amount)

	result := &PlaceBidResult{Bid: bid}

	freshDetail, freshBids, detailErr, bidsErr := b.fetchDetail(ctx, auctionID)
	if detailErr != nil {
		b.log.Warn(ctx, "post-bid refresh failed", "auction_id", auctionID, "error", detailErr)
		result.Notices = append(result.Notices, "auction refresh failed; displayed price may be stale")
		b.mu.Lock()
		result.Detail = b.detail
		result.BidHistory = b.bidHistory
		b.mu.Unlock()
		return result, nil
	}
	if bidsErr != nil {
		b.log.Warn(ctx, "post-bid history refresh failed", "auction_id", auctionID, "error", bidsErr)
		result.Notices = append(result.Notices, "bid history refresh failed")
		b.mu.Lock()
		freshBids = b.bidHistory
		b.mu.Unlock()
	}

	b.mu.Lock()
	b.detail = freshDetail
	b.bidHistory = freshBids
	b.mu.Unlock()

	result.Detail = freshDetail
	result.BidHistory = freshBids
	return result, nil
}

// Reset discards all view state, e.g. on logout.
func (b *Browser) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = nil
	b.auctions = nil
	b.activeBids = nil
	b.wonAuctions = nil
	b.detail = nil
	b.bidHistory = nil
	b.filters = FilterState{}
	b.bidInFlight = false
}

// ---- accessors ----

func (b *Browser) Profile() *models.UserProfile {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.profile == nil {
		return nil
	}
	p := *b.profile
	return &p
}

func (b *Browser) Auctions() []models.AuctionSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.AuctionSummary(nil), b.auctions...)
}

func (b *Browser) ActiveBids() []models.Bid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Bid(nil), b.activeBids...)
}

func (b *Browser) WonAuctions() []models.Bid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Bid(nil), b.wonAuctions...)
}

func (b *Browser) Detail() *models.AuctionDetail {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.detail == nil {
		return nil
	}
	d := *b.detail
	return &d
}

func (b *Browser) BidHistory() []models.Bid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Bid(nil), b.bidHistory...)
}

func (b *Browser) DashboardLoading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dashboardLoading
}

// Stats derives the dashboard header figures from loaded state.
func (b *Browser) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Stats{
		ActiveBids:  len(b.activeBids),
		WonAuctions: len(b.wonAuctions),
	}
	for _, a := range b.auctions {
		if !a.IsClosed {
			s.OpenAuctions++
		}
	}
	for _, w := range b.wonAuctions {
		s.TotalSpent += w.Amount
	}
	return s
}
