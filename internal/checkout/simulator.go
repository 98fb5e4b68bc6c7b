package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fjod/vistara/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDelay is the fixed latency of a simulated checkout
const DefaultDelay = 2 * time.Second

var ErrCheckoutInProgress = errors.New("checkout already in progress")

// Cart is the part of the cart store the simulator needs
type Cart interface {
	Snapshot() domain.CartSnapshot
	SetVisible(visible bool)
}

// Notifier receives the success notification of a completed checkout
type Notifier interface {
	Notify(ctx context.Context, event domain.OrderPlaced) error
}

// Scheduler runs f once after d has elapsed
type Scheduler func(d time.Duration, f func())

func timerScheduler(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type Option func(*Simulator)

func WithDelay(d time.Duration) Option {
	return func(s *Simulator) { s.delay = d }
}

func WithScheduler(schedule Scheduler) Option {
	return func(s *Simulator) { s.schedule = schedule }
}

func WithNotifier(n Notifier) Option {
	return func(s *Simulator) { s.notifier = n }
}

func WithCurrency(currency string) Option {
	return func(s *Simulator) { s.currency = currency }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// Simulator is the IDLE -> IN_PROGRESS -> IDLE checkout state machine.
// Every started attempt completes after the configured delay and always succeeds.
type Simulator struct {
	cart     Cart
	delay    time.Duration
	schedule Scheduler
	notifier Notifier
	currency string
	logger   *zap.Logger
	now      func() time.Time

	mu            sync.Mutex
	current       *Attempt
	last          *domain.OrderPlaced
	notifications int

	wg sync.WaitGroup // completions not yet finished
}

func NewSimulator(cart Cart, opts ...Option) *Simulator {
	s := &Simulator{
		cart:     cart,
		delay:    DefaultDelay,
		schedule: timerScheduler,
		currency: "INR",
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a checkout. It returns ErrCheckoutInProgress while another
// attempt is in flight; in that case no timer is scheduled.
func (s *Simulator) Start(ctx context.Context) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return nil, ErrCheckoutInProgress
	}

	a := &Attempt{
		ID:        uuid.New().String(),
		StartedAt: s.now(),
		done:      make(chan struct{}),
	}
	s.current = a
	s.wg.Add(1)

	s.logger.Info("checkout started",
		zap.String("checkout_id", a.ID),
		zap.Duration("delay", s.delay))

	// the completion outlives the request that started it
	notifyCtx := context.WithoutCancel(ctx)
	s.schedule(s.delay, func() { s.complete(notifyCtx, a) })
	return a, nil
}

func (s *Simulator) complete(ctx context.Context, a *Attempt) {
	defer s.wg.Done()

	s.mu.Lock()
	snap := s.cart.Snapshot()
	event := domain.OrderPlaced{
		CheckoutID:  a.ID,
		Message:     domain.OrderPlacedMessage,
		Items:       domain.NewOrderItems(snap.Lines),
		TotalAmount: snap.TotalPrice,
		TotalItems:  snap.TotalItems,
		Currency:    s.currency,
		StartedAt:   a.StartedAt,
		CompletedAt: s.now(),
	}
	s.last = &event
	s.notifications++
	s.current = nil
	s.cart.SetVisible(false)
	s.mu.Unlock()

	s.logger.Info("order placed",
		zap.String("checkout_id", event.CheckoutID),
		zap.Int("total_items", event.TotalItems),
		zap.String("total_amount", event.TotalAmount.StringFixed(2)))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.Warn("order placed notification failed",
				zap.String("checkout_id", event.CheckoutID),
				zap.Error(err))
		}
	}

	a.resolve(event)
}

// Wait blocks until every started checkout has completed and notified, or ctx is done.
// Call it only once no more Start calls can arrive, e.g. after the HTTP server
// has shut down. If ctx expires first, the waiting goroutine stays until the
// outstanding completions finish.
func (s *Simulator) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulator) Status() domain.CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return domain.CheckoutStatusInProgress
	}
	return domain.CheckoutStatusIdle
}

// InProgress returns the attempt in flight, or nil
func (s *Simulator) InProgress() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// LastNotification returns the most recent success notification
func (s *Simulator) LastNotification() (domain.OrderPlaced, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return domain.OrderPlaced{}, false
	}
	return *s.last, true
}

// NotificationCount is the number of checkouts completed so far
func (s *Simulator) NotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

// Forget drops the last notification. It does not affect an attempt in flight.
func (s *Simulator) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
}
