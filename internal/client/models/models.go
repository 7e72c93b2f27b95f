// Package models defines the wire shapes returned by the auction API.
//
// Every type carries a Validate method used by the API client right after
// decoding, so malformed server responses are rejected at the boundary
// instead of leaking zero values into view state. Fields that are optional
// on the wire (mileage, condition) are pointers.
package models

import (
	"errors"
	"fmt"
	"time"
)

// AuctionSummary is the list-view snapshot of one auction. It is never
// mutated locally; a refetch replaces it wholesale.
type AuctionSummary struct {
	ID         int64     `json:"id"`
	CarID      int64     `json:"carId,omitempty"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	CurrentBid float64   `json:"currentBid"`
	EndTime    time.Time `json:"endTime"`
	IsClosed   bool      `json:"isClosed"`
	Images     []string  `json:"images,omitempty"`
	Mileage    *int64    `json:"mileage,omitempty"`
	Condition  *string   `json:"condition,omitempty"`
}

// Title renders the auction heading, e.g. "2020 Ford Mustang".
func (a *AuctionSummary) Title() string {
	return fmt.Sprintf("%d %s %s", a.Year, a.Make, a.Model)
}

func (a *AuctionSummary) Validate() error {
	if a.ID <= 0 {
		return errors.New("auction: missing id")
	}
	if a.Make == "" || a.Model == "" {
		return fmt.Errorf("auction %d: missing make or model", a.ID)
	}
	if a.EndTime.IsZero() {
		return fmt.Errorf("auction %d: missing end time", a.ID)
	}
	return nil
}

// AuctionDetail is the per-auction view fetched on demand.
type AuctionDetail struct {
	AuctionSummary
	Description string    `json:"description"`
	StartingBid float64   `json:"startingBid"`
	StartTime   time.Time `json:"startTime"`
	SellerID    int64     `json:"sellerId"`
	SellerName  string    `json:"sellerName"`
	TotalBids   int       `json:"totalBids"`
	Views       int       `json:"views"`
}

func (a *AuctionDetail) Validate() error {
	if err := a.AuctionSummary.Validate(); err != nil {
		return err
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("auction %d: missing start time", a.ID)
	}
	return nil
}

// Bid is a single monetary offer. The server returns bids ordered by
// timestamp descending; the client treats the list as append-only.
// BidderName is present on auction bid histories but omitted from the
// caller's own bid listings; AuctionID is the reverse, so neither is
// required here.
type Bid struct {
	ID         int64     `json:"id"`
	AuctionID  int64     `json:"auctionId,omitempty"`
	Amount     float64   `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
	BidderName string    `json:"bidderName,omitempty"`
}

func (b *Bid) Validate() error {
	if b.ID <= 0 {
		return errors.New("bid: missing id")
	}
	if b.Amount <= 0 {
		return fmt.Errorf("bid %d: non-positive amount", b.ID)
	}
	if b.Timestamp.IsZero() {
		return fmt.Errorf("bid %d: missing timestamp", b.ID)
	}
	return nil
}

// UserProfile is the authenticated user's account record. Read-only on the
// client; there is no profile mutation endpoint.
type UserProfile struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *UserProfile) Validate() error {
	if p.ID <= 0 {
		return errors.New("profile: missing id")
	}
	if p.Email == "" {
		return fmt.Errorf("profile %d: missing email", p.ID)
	}
	return nil
}
