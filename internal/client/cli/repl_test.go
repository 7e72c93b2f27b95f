package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(call, arg string) {
	f.calls = append(f.calls, call)
	f.args = append(f.args, arg)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", "")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.record("dashboard", "")
	return nil
}
func (f *fakeExec) Auctions(ctx context.Context) error {
	f.record("auctions", "")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.record("search", term)
	return nil
}
func (f *fakeExec) FilterMake(ctx context.Context, make string) error {
	f.record("make", make)
	return nil
}
func (f *fakeExec) FilterPrice(ctx context.Context, args []string) error {
	f.record("price", strings.Join(args, " "))
	return nil
}
func (f *fakeExec) ClearFilters(ctx context.Context) error {
	f.record("clearfilters", "")
	return nil
}
func (f *fakeExec) View(ctx context.Context, id string) error {
	f.record("view", id)
	return nil
}
func (f *fakeExec) Bid(ctx context.Context, amount string) error {
	f.record("bid", amount)
	return nil
}
func (f *fakeExec) Back(ctx context.Context) error {
	f.record("back", "")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.record("profile", "")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.record("stats", "")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"dashboard",
		"auctions",
		"view 7",
		"bid 76000",
		"back",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "dashboard", "auctions", "view", "bid", "back"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgumentsArePassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"search ford mustang",
		"make Land Rover",
		"price 50000 70000",
		"price",
		"view 12",
		"bid 61500.50",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := map[string]string{
		"search": "ford mustang",
		"make":   "Land Rover",
		"view":   "12",
		"bid":    "61500.50",
	}
	got := make(map[string]string)
	for i, c := range exec.calls {
		if _, ok := want[c]; ok {
			got[c] = exec.args[i]
		}
	}
	for cmd, arg := range want {
		if got[cmd] != arg {
			t.Fatalf("command %q got arg %q, want %q", cmd, got[cmd], arg)
		}
	}

	// "price" dispatches even with no args, since bare "price" clears.
	prices := 0
	for _, c := range exec.calls {
		if c == "price" {
			prices++
		}
	}
	if prices != 2 {
		t.Fatalf("price dispatched %d times, want 2", prices)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("view\nbid\nsearch\nmake\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
