package model

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// DefaultTimeBits is the width of the device time counter.
const DefaultTimeBits = 32

// DefaultMaxSyncDepth bounds nested pull/push chains started from hooks.
// Cycles are caught before this bound is reached.
const DefaultMaxSyncDepth = 1024

// Handle is the stable position of an Object in its registry.
type Handle int

// Registry owns every Object of a flow graph.
// Objects are kept in creation order and are never removed.
//
// Registry performs no locking. Callers sharing a registry between
// goroutines must serialize all access to it and to its objects.
type Registry struct {
	id       string
	objects  []*Object
	factory  Factory
	timeMask Time
	maxDepth int
	depth    int
	active   map[syncKey]struct{}
	logger   *slog.Logger
	tracer   log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithFactory sets the factory that selects object behaviors.
func WithFactory(f Factory) Option {
	return func(r *Registry) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithTimeBits sets the width of the time counter used by the interval
// evaluator. Values outside 1..32 select DefaultTimeBits.
func WithTimeBits(bits uint) Option {
	return func(r *Registry) {
		r.timeMask = timeMask(bits)
	}
}

// WithMaxSyncDepth bounds how deeply pulls and pushes may nest. It only
// limits long acyclic chains; cycles fail with ErrSyncCycle regardless.
func WithMaxSyncDepth(depth int) Option {
	return func(r *Registry) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the flow event logger.
func WithTracer(t log.Logger) Option {
	return func(r *Registry) {
		r.tracer = t
	}
}

// WithID sets the registry ID used in flow events.
func WithID(id string) Option {
	return func(r *Registry) {
		if id != "" {
			r.id = id
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		id:       uuid.NewString(),
		factory:  defaultFactory,
		timeMask: timeMask(DefaultTimeBits),
		maxDepth: DefaultMaxSyncDepth,
		active:   make(map[syncKey]struct{}),
		logger:   slog.New(slog.DiscardHandler),
		tracer:   log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = log.NoopLogger{}
	}
	return r
}

func timeMask(bits uint) Time {
	if bits == 0 || bits > 32 {
		bits = DefaultTimeBits
	}
	if bits == 32 {
		return ^Time(0)
	}
	return Time(1)<<bits - 1
}

// ID returns the registry ID.
func (r *Registry) ID() string {
	return r.id
}

// Logger returns the operational logger.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// TimeMask returns the mask applied to time counter values.
func (r *Registry) TimeMask() Time {
	return r.timeMask
}

// NewObject creates an object and appends it to the registry.
// The factory chooses its behavior. Duplicate identities are allowed;
// lookups return the earliest one.
func (r *Registry) NewObject(typeID, instanceID uint16) *Object {
	behavior := r.factory.NewBehavior(typeID, instanceID)
	if behavior == nil {
		behavior = DefaultBehavior{}
	}

	o := &Object{
		typeID:     typeID,
		instanceID: instanceID,
		handle:     Handle(len(r.objects)),
		registry:   r,
		behavior:   behavior,
	}
	r.objects = append(r.objects, o)
	return o
}

// Object returns the first object with the given identity.
func (r *Registry) Object(typeID, instanceID uint16) (*Object, bool) {
	for _, o := range r.objects {
		if o.typeID == typeID && o.instanceID == instanceID {
			return o, true
		}
	}
	return nil, false
}

// Get returns the object at handle h.
func (r *Registry) Get(h Handle) (*Object, bool) {
	if h < 0 || int(h) >= len(r.objects) {
		return nil, false
	}
	return r.objects[h], true
}

// Objects returns all objects in creation order.
func (r *Registry) Objects() []*Object {
	result := make([]*Object, len(r.objects))
	copy(result, r.objects)
	return result
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// AdvanceTime feeds now to every object that carries the timer resources,
// in creation order. It returns how many objects fired. Objects without
// timer resources are skipped.
func (r *Registry) AdvanceTime(now Time) (int, error) {
	fired := 0
	var errs []error
	for _, o := range r.Objects() {
		if !o.HasTimer() {
			continue
		}
		ok, err := o.AdvanceTime(now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			fired++
		}
	}
	return fired, errors.Join(errs...)
}

// syncKey identifies one object's pull or push that is in progress.
type syncKey struct {
	handle Handle
	push   bool
}

// enter marks the start of a nested synchronization by o. An object that
// is already synchronizing in the same direction closes a cycle.
func (r *Registry) enter(o *Object, push bool) error {
	key := syncKey{handle: o.handle, push: push}
	if _, ok := r.active[key]; ok {
		return ErrSyncCycle
	}
	if r.depth >= r.maxDepth {
		return ErrSyncDepth
	}
	r.active[key] = struct{}{}
	r.depth++
	return nil
}

func (r *Registry) leave(o *Object, push bool) {
	delete(r.active, syncKey{handle: o.handle, push: push})
	r.depth--
}
