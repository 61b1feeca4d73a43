package session

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Philanthropists/linkedcontainers/internal/logging"
	"github.com/Philanthropists/linkedcontainers/internal/queue"
	linkedqueue "github.com/Philanthropists/linkedcontainers/internal/queue/impl/linked"
	mutexqueue "github.com/Philanthropists/linkedcontainers/internal/queue/impl/mutex"
	"github.com/Philanthropists/linkedcontainers/internal/stack"
	linkedstack "github.com/Philanthropists/linkedcontainers/internal/stack/impl/linked"
	mutexstack "github.com/Philanthropists/linkedcontainers/internal/stack/impl/mutex"
)

var (
	ErrNotFound  = errs.Class("container not found")
	ErrExists    = errs.Class("container already exists")
	ErrWrongKind = errs.Class("wrong container kind")
)

type Kind string

const (
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
)

// Container is what stacks and queues have in common.
type Container interface {
	Size() int
	IsEmpty() bool
	Clear()
}

type entry struct {
	kind  Kind
	stack stack.LIFOStack[string]
	queue queue.FIFOQueue[string]
}

func (e *entry) container() Container {
	if e.kind == KindStack {
		return e.stack
	}
	return e.queue
}

type Options struct {
	// TTL is how long an unused container is kept. Zero keeps it forever.
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Registry holds named string containers. Containers are guarded by a mutex
// since expiry happens on a background goroutine.
type Registry struct {
	cache *cache.Cache
	log   *logging.Logger
}

func NewRegistry(opts Options, log *logging.Logger) *Registry {
	if log == nil {
		log = logging.New()
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	r := &Registry{
		cache: cache.New(ttl, opts.CleanupInterval),
		log:   log.With(logging.String(logging.ComponentKey, "session")),
	}
	r.cache.OnEvicted(r.evicted)

	return r
}

func (r *Registry) evicted(name string, v interface{}) {
	e, ok := v.(*entry)
	if !ok {
		return
	}

	c := e.container()
	size := c.Size()
	c.Clear()

	r.log.Debug("container released",
		logging.Container(name),
		logging.String(logging.KindKey, e.kind),
		logging.Size(size),
	)
}

// purge evicts expired entries now instead of waiting for the janitor, so
// that their containers are released before the name is reused.
func (r *Registry) purge() {
	r.cache.DeleteExpired()
}

func (r *Registry) add(name string, e *entry) error {
	r.purge()
	if err := r.cache.Add(name, e, cache.DefaultExpiration); err != nil {
		return ErrExists.New("%q", name)
	}

	return nil
}

// CreateStack registers a stack of the given capacity. A negative capacity
// means unbounded.
func (r *Registry) CreateStack(name string, capacity int) (stack.LIFOStack[string], error) {
	var inner *linkedstack.Stack[string]
	if capacity < 0 {
		inner = linkedstack.New[string]()
	} else {
		inner = linkedstack.WithCapacity[string](capacity)
	}

	e := &entry{
		kind:  KindStack,
		stack: mutexstack.CreateStack[string](inner),
	}
	if err := r.add(name, e); err != nil {
		return nil, err
	}

	r.log.Debug("stack created",
		logging.Container(name),
		logging.Capacity(inner.Capacity()),
	)

	return e.stack, nil
}

func (r *Registry) CreateQueue(name string) (queue.FIFOQueue[string], error) {
	e := &entry{
		kind:  KindQueue,
		queue: mutexqueue.CreateQueue[string](linkedqueue.New[string]()),
	}
	if err := r.add(name, e); err != nil {
		return nil, err
	}

	r.log.Debug("queue created", logging.Container(name))

	return e.queue, nil
}

func (r *Registry) lookup(name string) (*entry, error) {
	v, ok := r.cache.Get(name)
	if !ok {
		r.purge()
		return nil, ErrNotFound.New("%q", name)
	}

	// Replace only succeeds while the entry is still live, so an entry
	// evicted since Get is not brought back.
	e := v.(*entry)
	if err := r.cache.Replace(name, e, cache.DefaultExpiration); err != nil {
		return nil, ErrNotFound.New("%q", name)
	}

	return e, nil
}

// Lookup returns the named container, whatever its kind.
func (r *Registry) Lookup(name string) (Kind, Container, error) {
	e, err := r.lookup(name)
	if err != nil {
		return "", nil, err
	}

	return e.kind, e.container(), nil
}

func (r *Registry) Stack(name string) (stack.LIFOStack[string], error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	if e.kind != KindStack {
		return nil, ErrWrongKind.New("%q is a %s", name, e.kind)
	}

	return e.stack, nil
}

func (r *Registry) Queue(name string) (queue.FIFOQueue[string], error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	if e.kind != KindQueue {
		return nil, ErrWrongKind.New("%q is a %s", name, e.kind)
	}

	return e.queue, nil
}

// Drop removes the named container and releases its elements.
func (r *Registry) Drop(name string) error {
	if _, ok := r.cache.Get(name); !ok {
		r.purge()
		return ErrNotFound.New("%q", name)
	}

	r.cache.Delete(name)

	return nil
}

// Names returns the names of every live container in order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.cache.Items())
	slices.Sort(names)

	return names
}

// Close releases every container.
func (r *Registry) Close() {
	names := r.Names()
	for _, name := range names {
		r.cache.Delete(name)
	}
	r.purge()

	r.log.Info("registry closed", logging.Int("released", len(names)))
}
