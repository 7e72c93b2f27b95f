package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bidcars/bidcars-cli/internal/client/api"
	"github.com/bidcars/bidcars-cli/internal/client/browser"
	"github.com/bidcars/bidcars-cli/internal/client/models"
)

// View opens the detail view for one auction, renders it with its bid
// history, and keeps the countdown live until the view is left.
func (a *App) View(ctx context.Context, id string) error {
	if !a.guard() {
		return nil
	}

	auctionID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || auctionID <= 0 {
		printlnFn("Invalid auction id:", id)
		return nil
	}

	notices, err := a.browser.LoadAuctionDetail(ctx, auctionID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Auction not found.")
			return nil
		}
		a.handleError(err)
		return err
	}
	for _, n := range notices {
		printlnFn("Notice:", n)
	}

	a.renderDetail()
	a.startRefresher(ctx, a.renderDetail)
	return nil
}

// Bid places a bid on the open auction. Local violations (too low, ended,
// nothing open, one already pending) are reported without a network call;
// a server rejection prints the server's message and leaves the view as-is
// so the user can retry with a corrected amount.
func (a *App) Bid(ctx context.Context, amount string) error {
	if !a.guard() {
		return nil
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value <= 0 {
		printlnFn("Invalid bid amount:", amount)
		return nil
	}

	result, err := a.browser.PlaceBid(ctx, value)
	if err != nil {
		var verr *browser.ValidationError
		var apiErr *api.Error
		switch {
		case errors.As(err, &verr):
			printlnFn(fmt.Sprintf("Your bid must be higher than the current bid of $%.2f.", verr.CurrentBid))
		case errors.Is(err, browser.ErrBidInFlight):
			printlnFn("Your previous bid is still being placed. Please wait.")
		case errors.Is(err, browser.ErrAuctionEnded):
			printlnFn("This auction has ended.")
		case errors.Is(err, browser.ErrNoOpenDetail):
			printlnFn("Open an auction with 'view <id>' before bidding.")
		case errors.As(err, &apiErr):
			printlnFn("Bid rejected:", apiErr.Message)
		default:
			a.handleError(err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Bid of $%.2f placed!", result.Bid.Amount))
	for _, n := range result.Notices {
		printlnFn("Notice:", n)
	}
	a.renderDetail()
	return nil
}

// Back closes the detail view and stops its countdown refresher.
func (a *App) Back(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	a.stopRefresher()
	a.browser.CloseDetail()
	printlnFn("Back to the auction list.")
	return nil
}

func (a *App) renderDetail() {
	d := a.browser.Detail()
	if d == nil {
		return
	}

	now := timeNow()
	printlnFn("=== " + d.Title() + " ===")
	printlnFn(fmt.Sprintf("Current bid:    $%.2f (started at $%.2f)", d.CurrentBid, d.StartingBid))
	printlnFn("Time remaining:", browser.FormatRemaining(d.EndTime, d.IsClosed, now))
	if d.Mileage != nil {
		printlnFn(fmt.Sprintf("Mileage:        %d mi", *d.Mileage))
	}
	if d.Condition != nil {
		printlnFn("Condition:     ", *d.Condition)
	}
	if d.SellerName != "" {
		printlnFn("Seller:        ", d.SellerName)
	}
	if d.Description != "" {
		printlnFn(d.Description)
	}

	a.renderBidHistory(a.browser.BidHistory())
}

func (a *App) renderBidHistory(bids []models.Bid) {
	if len(bids) == 0 {
		printlnFn("No bids yet.")
		return
	}

	printlnFn("Bid history:")
	for _, b := range bids {
		name := b.BidderName
		if name == "" {
			name = "anonymous"
		}
		printlnFn(fmt.Sprintf("  $%10.2f  %s  %s", b.Amount, b.Timestamp.Format("2006-01-02 15:04"), name))
	}
}
