package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Auctions(ctx context.Context) error
	Search(ctx context.Context, term string) error
	FilterMake(ctx context.Context, make string) error
	FilterPrice(ctx context.Context, args []string) error
	ClearFilters(ctx context.Context) error
	View(ctx context.Context, id string) error
	Bid(ctx context.Context, amount string) error
	Back(ctx context.Context) error
	Profile(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the BidCars CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                 — show available commands
//	  - register             — create a bidder account
//	  - login                — authenticate
//	  - exit | quit          — leave the program
//
//	Logged in:
//	  - help                 — show available commands
//	  - dashboard            — load profile, auctions and bids
//	  - auctions             — list open auctions (current filters applied)
//	  - search <term>        — filter auctions by make/model substring
//	  - make <name>          — filter auctions by exact make
//	  - price <min> [max]    — filter auctions by current-bid range
//	  - clearfilters         — drop all filters
//	  - view <id>            — open an auction with its bid history
//	  - bid <amount>         — place a bid on the open auction
//	  - back                 — close the open auction
//	  - profile              — show account details
//	  - stats                — show dashboard figures
//	  - logout               — log out
//	  - exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, auctions, search <term>, make <name>, price <min> [max], clearfilters, view <id>, bid <amount>, back, profile, stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "auctions":
			_ = a.Auctions(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "make":
			if len(args) == 0 {
				printlnFn("Usage: make <name>")
				continue
			}
			_ = a.FilterMake(ctx, strings.Join(args, " "))

		case "price":
			_ = a.FilterPrice(ctx, args)

		case "clearfilters":
			_ = a.ClearFilters(ctx)

		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <id>")
				continue
			}
			_ = a.View(ctx, args[0])

		case "bid":
			if len(args) == 0 {
				printlnFn("Usage: bid <amount>")
				continue
			}
			_ = a.Bid(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
