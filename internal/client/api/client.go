// Package api implements the typed client for the remote auction service.
//
// All business rules (bid arbitration, auction lifecycle, auth) live on the
// server; this package only speaks its JSON/HTTP contract, decorates
// authenticated requests with the bearer credential, validates response
// bodies at the boundary, and maps failures onto sentinel errors callers can
// branch on with errors.Is.
package api

import (
	"context"

	"github.com/bidcars/bidcars-cli/internal/client/models"
)

// TokenSource supplies the stored session credential for authenticated
// requests. Clear is invoked when the server rejects the credential, so the
// rest of the application treats the session as absent from then on.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client is the outbound port to the auction API, one method per endpoint.
type Client interface {
	// Register creates an account and returns the server's confirmation
	// message. Unauthenticated.
	Register(ctx context.Context, firstName, lastName, email, password string) (string, error)

	// Login exchanges credentials for an access token. Unauthenticated;
	// storing the returned token is the caller's job.
	Login(ctx context.Context, email, password string) (string, error)

	// CurrentUser fetches the authenticated user's profile.
	CurrentUser(ctx context.Context) (*models.UserProfile, error)

	// MyActiveBids lists the caller's bids on still-open auctions.
	MyActiveBids(ctx context.Context) ([]models.Bid, error)

	// MyWonAuctions lists the caller's winning bids on closed auctions.
	MyWonAuctions(ctx context.Context) ([]models.Bid, error)

	// OpenAuctions lists auctions currently accepting bids.
	OpenAuctions(ctx context.Context) ([]models.AuctionSummary, error)

	// AuctionDetail fetches one auction's full record.
	AuctionDetail(ctx context.Context, id int64) (*models.AuctionDetail, error)

	// AuctionBids fetches one auction's bid history, newest first.
	AuctionBids(ctx context.Context, id int64) ([]models.Bid, error)

	// PlaceBid submits a bid and returns the recorded bid on acceptance.
	// A server-side rejection (raced/stale price) comes back as *Error with
	// the server's message.
	PlaceBid(ctx context.Context, auctionID int64, amount float64) (*models.Bid, error)
}
