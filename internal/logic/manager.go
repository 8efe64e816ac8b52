// Package logic runs user input against the coupon stash and keeps storage
// and subscribers in step with every change.
package logic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"couponstash/internal/amqp"
	"couponstash/internal/command"
	"couponstash/internal/core"
	applog "couponstash/internal/log"
	"couponstash/internal/model"
	"couponstash/internal/parser"
	"couponstash/internal/storage"
)

// EventPublisher announces stash changes. *amqp.Client implements it.
type EventPublisher interface {
	PublishCouponEvent(ctx context.Context, evt *amqp.CouponEvent) error
}

// Manager parses and executes commands, saving the stash after each
// command that changes it. Calls to Execute are serialised.
type Manager struct {
	mu      sync.Mutex
	model   *model.Manager
	parser  *parser.StashParser
	storage storage.StashStorage
	events  EventPublisher
	logger  *applog.Logger
}

type Option func(*Manager)

// WithEvents publishes a CouponEvent after every saved change.
func WithEvents(p EventPublisher) Option {
	return func(m *Manager) { m.events = p }
}

func WithLogger(l *applog.Logger) Option {
	return func(m *Manager) { m.logger = l.WithComponent(applog.ComponentLogic) }
}

// NewManager loads the stash from store and returns a manager ready to
// execute commands.
func NewManager(ctx context.Context, store storage.StashStorage, prefs model.UserPrefs, opts ...Option) (*Manager, error) {
	stash, err := store.LoadStash(ctx)
	if err != nil {
		return nil, fmt.Errorf("load coupon stash: %w", err)
	}

	m := &Manager{
		model:   model.NewManager(stash, prefs),
		parser:  parser.NewStashParser(),
		storage: store,
		logger:  applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentLogic),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger.InfoContext(ctx, "Coupon stash loaded", applog.FieldOperation, applog.OpLoad, applog.FieldCoupons, stash.Len())
	return m, nil
}

// Execute runs one line of user input. Parse and command failures come
// back as *parser.ParseError or *command.Error; anything else is an
// infrastructure failure, after which the stash is left as it was.
func (m *Manager) Execute(ctx context.Context, text string) (command.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	fields := applog.NewFields()

	cmd, err := m.parser.Parse(text, m.model.UserPrefs().MoneySymbol)
	if err != nil {
		m.logger.DebugContext(ctx, "Rejected input", fields.WithOperation(applog.OpParse).WithError(err).ToSlice()...)
		return command.Result{}, err
	}
	fields.WithCommand(cmd.Word()).WithOperation(applog.OpExecute)

	mutates := command.Mutates(cmd)
	var before []core.Coupon
	if mutates {
		before = m.model.Coupons()
	}

	result, err := cmd.Execute(m.model)
	if err != nil {
		m.logger.DebugContext(ctx, "Command failed", fields.WithError(err).ToSlice()...)
		return command.Result{}, err
	}

	if mutates {
		if err := m.save(ctx, before); err != nil {
			m.logger.ErrorContext(ctx, "Failed to save coupon stash",
				fields.WithOperation(applog.OpSave).WithError(err).ToSlice()...)
			return command.Result{}, err
		}
		changed, ok := m.changed(cmd, before)
		if ok {
			fields.WithCoupon(changed.Name().String(), changed.Usage().Value(), changed.Limit().Value())
		}
		m.publish(ctx, cmd, result, changed.Name().String())
	}

	m.logger.InfoContext(ctx, "Command executed",
		fields.WithOutcome(true, time.Since(start).Milliseconds()).ToSlice()...)
	return result, nil
}

// save persists the stash, restoring the previous coupons if that fails.
func (m *Manager) save(ctx context.Context, before []core.Coupon) error {
	err := m.storage.SaveStash(ctx, m.model.Stash())
	if err == nil {
		return nil
	}

	if previous, rerr := model.NewCouponStash(before...); rerr == nil {
		m.model.SetStash(previous)
	} else {
		err = errors.Join(err, fmt.Errorf("restore stash: %w", rerr))
	}
	return fmt.Errorf("save coupon stash: %w", err)
}

// changed returns the coupon cmd added, edited, used or deleted. Clearing
// the stash touches every coupon, so it reports none.
func (m *Manager) changed(cmd command.Command, before []core.Coupon) (core.Coupon, bool) {
	if _, cleared := cmd.(*command.ClearCommand); cleared {
		return core.Coupon{}, false
	}
	return changedCoupon(before, m.model.Coupons())
}

func (m *Manager) publish(ctx context.Context, cmd command.Command, result command.Result, couponName string) {
	if m.events == nil {
		return
	}

	evt := amqp.NewCouponEvent(cmd.Word(), couponName, result.Feedback)
	if err := m.events.PublishCouponEvent(ctx, evt); err != nil {
		m.logger.WarnContext(ctx, "Failed to publish coupon event",
			applog.NewFields().WithOperation(applog.OpPublish).WithCommand(cmd.Word()).WithError(err).ToSlice()...)
	}
}

// changedCoupon finds the coupon a command touched: the first coupon that
// is new after the command, or else the first one that disappeared.
func changedCoupon(before, after []core.Coupon) (core.Coupon, bool) {
	if c, ok := firstMissing(after, before); ok {
		return c, true
	}
	return firstMissing(before, after)
}

func firstMissing(from, in []core.Coupon) (core.Coupon, bool) {
	for _, c := range from {
		if !slices.ContainsFunc(in, c.Equal) {
			return c, true
		}
	}
	return core.Coupon{}, false
}

// FilteredCoupons returns the coupons currently on display.
func (m *Manager) FilteredCoupons() []core.Coupon {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.model.FilteredCoupons()
}

func (m *Manager) UserPrefs() model.UserPrefs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.model.UserPrefs()
}
