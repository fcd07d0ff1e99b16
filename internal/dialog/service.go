package dialog

import (
	"fmt"

	"github.com/billie-coop/showcase/internal/csync"
	"github.com/billie-coop/showcase/internal/tui/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// KindCustom labels requests opened without WithKind.
const KindCustom = "custom"

// Service opens dialogs. It publishes requests on the bus and keeps the
// correlation table from request id to the caller's pending result.
type Service struct {
	bus     *events.Bus[*Request]
	pending *csync.Map[string, func(any)]

	logger     zerolog.Logger
	metrics    *Metrics
	strictHost bool
	newID      func() string
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithLogger sets the service logger
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics records dialog traffic in m
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStrictHost makes opening a dialog without a mounted host fail with
// ErrNoHost instead of leaving the result unsettled.
func WithStrictHost(strict bool) ServiceOption {
	return func(s *Service) {
		s.strictHost = strict
	}
}

// WithIDGenerator replaces the uuid request ids
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *Service) {
		s.newID = gen
	}
}

// NewService creates a dialog service publishing on bus
func NewService(bus *events.Bus[*Request], opts ...ServiceOption) *Service {
	s := &Service{
		bus:     bus,
		pending: csync.NewMap[string, func(any)](),
		logger:  zerolog.Nop(),
		newID: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens body and returns its untyped eventual result.
func (s *Service) Open(body Factory, opts ...OpenOption) *Pending[any] {
	return Open[any](s, body, opts...)
}

// Pending returns how many opened dialogs are still waiting for an answer
func (s *Service) Pending() int {
	return s.pending.Len()
}

// Open publishes a request for body and returns a result that settles when the
// host resolves it. A nil resolution (dismissed dialog) settles as
// (zero, false); so does a value that is not a T.
func Open[T any](s *Service, body Factory, opts ...OpenOption) *Pending[T] {
	id := s.newID()
	p := newPending[T](id)

	req := &Request{ID: id, Body: body}
	for _, opt := range opts {
		opt(req)
	}
	if req.Kind == "" {
		req.Kind = KindCustom
	}
	kind := req.Kind
	logger := s.logger.With().Str("dialog_id", id).Str("kind", kind).Logger()

	s.pending.Set(id, func(value any) {
		if value == nil {
			p.settle(*new(T), false, nil)
			s.metrics.recordResolved(kind, "cancel")
			logger.Debug().Msg("dialog cancelled")
			return
		}
		typed, ok := value.(T)
		if !ok {
			logger.Warn().Str("got", fmt.Sprintf("%T", value)).Msg("dialog resolved with unexpected type, treating as cancel")
			p.settle(*new(T), false, nil)
			s.metrics.recordResolved(kind, "cancel")
			return
		}
		p.settle(typed, true, nil)
		s.metrics.recordResolved(kind, "value")
		logger.Debug().Msg("dialog resolved")
	})
	req.resolve = func(value any) bool {
		complete, ok := s.pending.Take(id)
		if !ok {
			logger.Debug().Msg("dialog already resolved, ignoring")
			return false
		}
		complete(value)
		return true
	}

	if err := s.bus.Emit(events.DialogEvent, req); err != nil {
		logger.Error().Err(err).Msg("dialog listener failed")
	}

	if !req.Accepted() {
		s.pending.Delete(id)
		s.metrics.recordDropped(kind)
		if s.strictHost {
			p.settle(*new(T), false, ErrNoHost)
			logger.Error().Msg("dialog opened with no host mounted")
			return p
		}
		logger.Warn().Msg("dialog opened with no host mounted, result will never settle")
		return p
	}

	s.metrics.recordOpened(kind)
	logger.Debug().Msg("dialog opened")
	return p
}
