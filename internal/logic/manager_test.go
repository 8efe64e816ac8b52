package logic

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"couponstash/internal/amqp"
	"couponstash/internal/command"
	applog "couponstash/internal/log"
	"couponstash/internal/model"
	"couponstash/internal/parser"
	"couponstash/internal/storage/memory"
	"couponstash/internal/summary"
	"couponstash/internal/testutil"
)

type recordingPublisher struct {
	events []*amqp.CouponEvent
	err    error
}

func (p *recordingPublisher) PublishCouponEvent(_ context.Context, evt *amqp.CouponEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

type failingStore struct {
	*memory.Store
}

func (failingStore) SaveStash(context.Context, *model.CouponStash) error {
	return errors.New("disk full")
}

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Component: applog.ComponentLogic, Output: io.Discard})
}

func newTestManager(t *testing.T, store *memory.Store, opts ...Option) *Manager {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	m, err := NewManager(context.Background(), store, model.DefaultUserPrefs(), opts...)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestExecuteAddSavesAndPublishes(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	events := &recordingPublisher{}
	m := newTestManager(t, store, WithEvents(events))

	result, err := m.Execute(context.Background(), "add n/Zed Cafe e/31-12-2030 s/$5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Feedback != "New coupon added: Zed Cafe" {
		t.Errorf("Feedback = %q", result.Feedback)
	}
	if store.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", store.Saves())
	}

	saved, _ := store.LoadStash(context.Background())
	if saved.Len() != len(testutil.TypicalCoupons())+1 {
		t.Errorf("saved stash has %d coupons", saved.Len())
	}

	if len(events.events) != 1 {
		t.Fatalf("published %d events, want 1", len(events.events))
	}
	evt := events.events[0]
	if evt.CommandWord != command.AddCommandWord || evt.CouponName != "Zed Cafe" || evt.Feedback != result.Feedback {
		t.Errorf("event = %+v", evt)
	}
}

func TestExecuteDeleteNamesRemovedCoupon(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	events := &recordingPublisher{}
	m := newTestManager(t, store, WithEvents(events))

	if _, err := m.Execute(context.Background(), "delete 2"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(events.events) != 1 || events.events[0].CouponName != testutil.Benson.Name().String() {
		t.Errorf("events = %+v", events.events)
	}
}

func TestExecuteReadOnlyCommandsDoNotSave(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	events := &recordingPublisher{}
	m := newTestManager(t, store, WithEvents(events))

	for _, input := range []string{"list", "find Meier", "sort e/", "saved", "help", "goto my/12-2020"} {
		if _, err := m.Execute(context.Background(), input); err != nil {
			t.Fatalf("Execute(%q) error = %v", input, err)
		}
	}
	if store.Saves() != 0 || len(events.events) != 0 {
		t.Errorf("Saves() = %d, events = %d; want none", store.Saves(), len(events.events))
	}
}

func TestExecuteParseError(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	m := newTestManager(t, store)

	_, err := m.Execute(context.Background(), "frobnicate 1")
	var pe *parser.ParseError
	if !errors.As(err, &pe) || pe.Message != parser.MessageUnknownCommand {
		t.Fatalf("Execute() error = %v, want unknown command", err)
	}
	if store.Saves() != 0 {
		t.Errorf("Saves() = %d, want 0", store.Saves())
	}
}

func TestExecuteCommandError(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	m := newTestManager(t, store)

	_, err := m.Execute(context.Background(), "delete 99")
	var ce *command.Error
	if !errors.As(err, &ce) || ce.Message != command.MessageInvalidCouponIndex {
		t.Fatalf("Execute() error = %v, want invalid index", err)
	}
	if store.Saves() != 0 {
		t.Errorf("Saves() = %d, want 0", store.Saves())
	}
}

func TestExecuteSaveFailureRestoresStash(t *testing.T) {
	store := failingStore{memory.New(testutil.TypicalCoupons()...)}
	events := &recordingPublisher{}
	m, err := NewManager(context.Background(), store, model.DefaultUserPrefs(),
		WithLogger(quietLogger()), WithEvents(events))
	if err != nil {
		t.Fatal(err)
	}

	_, err = m.Execute(context.Background(), "clear")
	if err == nil {
		t.Fatal("Execute() should fail when the stash cannot be saved")
	}
	if command.IsError(err) {
		t.Errorf("storage failure should not be a command error: %v", err)
	}
	if got := len(m.FilteredCoupons()); got != len(testutil.TypicalCoupons()) {
		t.Errorf("FilteredCoupons() has %d coupons after failed save, want %d", got, len(testutil.TypicalCoupons()))
	}
	if len(events.events) != 0 {
		t.Errorf("no event should be published for an unsaved change")
	}
}

func TestExecutePublishFailureIsNotFatal(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	events := &recordingPublisher{err: amqp.ErrCircuitOpen}
	m := newTestManager(t, store, WithEvents(events))

	if _, err := m.Execute(context.Background(), "used 1"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if store.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", store.Saves())
	}
}

func TestSavedAfterUse(t *testing.T) {
	store := memory.New(testutil.TypicalCoupons()...)
	m := newTestManager(t, store)

	before, err := m.Execute(context.Background(), "saved")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(before.Feedback, summary.SavedTotalPreMessage+"$0.00") {
		t.Fatalf("Feedback before use = %q, want a $0.00 total", before.Feedback)
	}
	if _, err := m.Execute(context.Background(), "used 1"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	after, err := m.Execute(context.Background(), "saved")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(after.Feedback, summary.SavedTotalPreMessage+"$5.00") {
		t.Errorf("Feedback after use = %q, want a $5.00 total", after.Feedback)
	}
}

func TestExecuteLogsChangedCoupon(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Component: applog.ComponentLogic, Output: &buf})
	m, err := NewManager(context.Background(), memory.New(testutil.TypicalCoupons()...), model.DefaultUserPrefs(),
		WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Execute(context.Background(), "used 3"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`coupon_name="Carl Kurz"`, "usage=1", "usage_limit=2", "command_word=used"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestExecuteUsesPreferredMoneySymbol(t *testing.T) {
	prefs := model.DefaultUserPrefs()
	prefs.MoneySymbol = "€"
	m, err := NewManager(context.Background(), memory.New(), prefs, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Execute(context.Background(), "add n/Gelato e/1-8-2030 s/€2.50"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	coupons := m.FilteredCoupons()
	if len(coupons) != 1 {
		t.Fatalf("FilteredCoupons() = %d coupons, want 1", len(coupons))
	}
	amount, ok := coupons[0].Savings().MonetaryAmount()
	if !ok || amount.StringWithSymbol(prefs.MoneySymbol) != "€2.50" {
		t.Errorf("savings = %v, want a monetary amount of €2.50", coupons[0].Savings())
	}
}

func TestNewManagerLoadError(t *testing.T) {
	_, err := NewManager(context.Background(), brokenLoader{}, model.DefaultUserPrefs(), WithLogger(quietLogger()))
	if err == nil {
		t.Fatal("NewManager() should fail when the stash cannot be loaded")
	}
}

type brokenLoader struct{}

func (brokenLoader) LoadStash(context.Context) (*model.CouponStash, error) {
	return nil, errors.New("corrupt database")
}

func (brokenLoader) SaveStash(context.Context, *model.CouponStash) error { return nil }
