package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bidcars/bidcars-cli/internal/client/browser"
)

// timeNow is a test seam for the clock used when rendering countdowns.
var timeNow = time.Now

// Dashboard loads the full dashboard (profile, open auctions, the user's
// active and winning bids) and renders the header figures plus the auction
// list. Degraded slots are reported as notices, not errors.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	notices, err := a.browser.LoadDashboard(ctx)
	if err != nil {
		a.handleError(err)
		return err
	}
	for _, n := range notices {
		printlnFn("Notice:", n)
	}

	if p := a.browser.Profile(); p != nil {
		a.userName = p.FirstName
		printlnFn(fmt.Sprintf("Welcome back, %s %s!", p.FirstName, p.LastName))
	}

	a.renderStats()
	a.renderAuctionList()
	a.startRefresher(ctx, a.renderAuctionList)
	return nil
}

// Auctions refreshes and renders the open-auction list with the current
// filters applied.
func (a *App) Auctions(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	if err := a.browser.LoadAuctions(ctx); err != nil {
		a.handleError(err)
		return err
	}

	a.renderAuctionList()
	a.startRefresher(ctx, a.renderAuctionList)
	return nil
}

// Search sets the make/model substring filter and re-renders the list.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.guard() {
		return nil
	}
	a.browser.SetSearchTerm(term)
	a.renderAuctionList()
	return nil
}

// FilterMake sets the exact-make filter and re-renders the list. The known
// makes are printed when the given one matches nothing.
func (a *App) FilterMake(ctx context.Context, make string) error {
	if !a.guard() {
		return nil
	}
	a.browser.SetMakeFilter(make)
	if len(a.browser.FilteredAuctions()) == 0 {
		printlnFn("No auctions for make", strconv.Quote(make)+".", "Known makes:", strings.Join(a.browser.Makes(), ", "))
	}
	a.renderAuctionList()
	return nil
}

// FilterPrice sets the current-bid range filter from positional args:
// "price <min>" is open-ended above, "price <min> <max>" bounds both sides,
// and "price" with no args clears the dimension.
func (a *App) FilterPrice(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}

	if len(args) == 0 {
		a.browser.SetPriceRange(nil, nil)
		printlnFn("Price filter cleared.")
		a.renderAuctionList()
		return nil
	}

	min, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		printlnFn("Invalid minimum price:", args[0])
		return nil
	}
	var max *float64
	if len(args) > 1 {
		m, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			printlnFn("Invalid maximum price:", args[1])
			return nil
		}
		max = &m
	}

	a.browser.SetPriceRange(&min, max)
	a.renderAuctionList()
	return nil
}

// ClearFilters drops every filter dimension and re-renders the list.
func (a *App) ClearFilters(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	a.browser.ClearFilters()
	printlnFn("Filters cleared.")
	a.renderAuctionList()
	return nil
}

// Profile renders the account details loaded by the last dashboard fetch.
func (a *App) Profile(ctx context.Context) error {
	if !a.guard() {
		return nil
	}

	p := a.browser.Profile()
	if p == nil {
		printlnFn("Profile not loaded yet. Run 'dashboard' first.")
		return nil
	}

	printlnFn("Name:  ", p.FirstName, p.LastName)
	printlnFn("Email: ", p.Email)
	if p.Status != "" {
		printlnFn("Status:", p.Status)
	}
	if !p.CreatedAt.IsZero() {
		printlnFn("Member since:", p.CreatedAt.Format("Jan 2, 2006"))
	}
	return nil
}

// Stats renders the dashboard header figures.
func (a *App) Stats(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	a.renderStats()
	return nil
}

func (a *App) renderStats() {
	s := a.browser.Stats()
	printlnFn(fmt.Sprintf("Active bids: %d | Won auctions: %d | Open auctions: %d | Total spent: $%.2f",
		s.ActiveBids, s.WonAuctions, s.OpenAuctions, s.TotalSpent))
}

func (a *App) renderAuctionList() {
	auctions := a.browser.FilteredAuctions()
	if len(auctions) == 0 {
		printlnFn("No auctions match the current filters.")
		return
	}

	now := timeNow()
	for _, auc := range auctions {
		printlnFn(fmt.Sprintf("[%d] %-30s $%10.2f  %s",
			auc.ID, auc.Title(), auc.CurrentBid,
			browser.FormatRemaining(auc.EndTime, auc.IsClosed, now)))
	}
}
