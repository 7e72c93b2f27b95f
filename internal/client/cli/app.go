package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/bidcars/bidcars-cli/internal/client/api"
	"github.com/bidcars/bidcars-cli/internal/client/browser"
	"github.com/bidcars/bidcars-cli/internal/client/config"
	"github.com/bidcars/bidcars-cli/internal/client/session"
	"github.com/bidcars/bidcars-cli/internal/logging"
)

// App ties the CLI together: one session, one API client, one browser.
type App struct {
	config  *config.Config
	session *session.Session
	api     api.Client
	browser *browser.Browser
	log     logging.Logger
	reader  *bufio.Reader

	userName      string
	stopCountdown context.CancelFunc
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	sess := session.New(cfg.TokenFile)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sess, log)

	return &App{
		config:  cfg,
		session: sess,
		api:     apiClient,
		browser: browser.New(apiClient, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to BidCars CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	a.stopRefresher()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return ""
}

// guard is the check run before every authenticated view: credential
// present → proceed; absent → bounce to login without any network call.
// Presence does not guarantee validity; a later rejection is handled by
// handleError.
func (a *App) guard() bool {
	if a.session.IsAuthenticated() {
		return true
	}
	printlnFn("You are not logged in. Use 'login' first.")
	return false
}

// handleError renders an operation failure. A credential rejection drops
// the CLI back to the logged-out state (the API client has already cleared
// the stored token by the time this runs).
func (a *App) handleError(err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		a.userName = ""
		a.stopRefresher()
		a.browser.Reset()
		printlnFn("Your session has expired. Please login again.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable. Try again later.")
	default:
		printlnFn("Error:", err.Error())
	}
}

// startRefresher replaces any running countdown refresher with one that
// re-renders the current view, so displayed time-remaining values never go
// stale while a view is open.
func (a *App) startRefresher(ctx context.Context, render func()) {
	a.stopRefresher()
	rctx, cancel := context.WithCancel(ctx)
	a.stopCountdown = cancel
	go a.browser.StartCountdownRefresher(rctx, a.config.CountdownRefreshInterval, render)
}

func (a *App) stopRefresher() {
	if a.stopCountdown != nil {
		a.stopCountdown()
		a.stopCountdown = nil
	}
}
