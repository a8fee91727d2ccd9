package assets

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/internal/cache"
	"github.com/gogpu/walltex/internal/parallel"
)

// DefaultExtension is appended to asset keys to form file names.
const DefaultExtension = ".webp"

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	workers int
	ext     string
	onLoad  func(*Image)
	logger  *slog.Logger
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		workers: 4,
		ext:     DefaultExtension,
	}
}

// WithWorkers sets the number of concurrent loads. Values <= 0 use
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *storeOptions) { o.workers = n }
}

// WithExtension sets the file extension appended to asset keys.
func WithExtension(ext string) Option {
	return func(o *storeOptions) { o.ext = ext }
}

// WithOnLoad sets a callback invoked from a worker goroutine after an image
// finishes loading successfully.
func WithOnLoad(fn func(*Image)) Option {
	return func(o *storeOptions) { o.onLoad = fn }
}

// WithLogger sets the logger. Defaults to walltex.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

// Store loads and keeps texture images. Every requested key keeps its
// handle for the life of the store, so each texture is fetched at most once.
//
// Store is safe for concurrent use.
type Store struct {
	fetcher Fetcher
	images  *cache.Cache[string, *Image]
	pool    *parallel.WorkerPool
	opts    storeOptions
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	idle     *sync.Cond
	inflight int
}

// NewStore creates a store that reads textures through f.
// Call Close to stop the loader goroutines.
func NewStore(f Fetcher, opts ...Option) *Store {
	o := defaultStoreOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = walltex.Logger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		fetcher: f,
		images:  cache.New[string, *Image](),
		pool:    parallel.NewWorkerPool(o.workers),
		opts:    o,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
	s.idle = sync.NewCond(&s.mu)
	logger.Info("assets: store started", "workers", s.pool.Workers(), "ext", o.ext)
	return s
}

// Image returns the handle for key, starting a load on first request.
// The returned image may still be pending. Image returns nil for an empty
// key.
//
// Keys are compared in Unicode NFC form.
func (s *Store) Image(key string) *Image {
	if key == "" {
		return nil
	}
	key = norm.NFC.String(key)

	img, created := s.images.GetOrCreate(key, func() *Image {
		return &Image{key: key}
	})
	if created {
		s.load(img)
	}
	return img
}

// Preload requests every key so that loading starts before first use.
func (s *Store) Preload(keys ...string) {
	for _, k := range keys {
		s.Image(k)
	}
}

func (s *Store) load(img *Image) {
	s.begin()
	ok := s.pool.Submit(func() {
		defer s.done()
		s.fetch(img)
	})
	if !ok {
		s.done()
		img.fail(ErrClosed)
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Store) done() {
	s.mu.Lock()
	s.inflight--
	if s.inflight == 0 {
		s.idle.Broadcast()
	}
	s.mu.Unlock()
}

func (s *Store) fetch(img *Image) {
	name := img.key + s.opts.ext
	data, err := s.fetcher.Fetch(s.ctx, name)
	if err != nil {
		img.fail(err)
		s.logger.Warn("assets: fetch failed", "key", img.key, "err", err)
		return
	}
	decoded, err := Decode(data)
	if err != nil {
		img.fail(err)
		s.logger.Warn("assets: decode failed", "key", img.key, "err", err)
		return
	}

	img.complete(decoded)
	s.logger.Debug("assets: loaded", "key", img.key, "width", img.width, "height", img.height)
	if s.opts.onLoad != nil {
		s.opts.onLoad(img)
	}
}

// Wait blocks until no load is in flight. Loads started by concurrent
// Image or Preload calls extend the wait.
func (s *Store) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inflight > 0 {
		s.idle.Wait()
	}
}

// Len returns the number of image handles held by the store.
func (s *Store) Len() int {
	return s.images.Len()
}

// Counts returns how many held images are pending, loaded and failed.
func (s *Store) Counts() (pending, loaded, failed int) {
	for _, img := range s.images.Values() {
		switch img.State() {
		case Pending:
			pending++
		case Loaded:
			loaded++
		case Failed:
			failed++
		}
	}
	return pending, loaded, failed
}

// Stats describes the store's handle registry and loader.
type Stats struct {
	// Images is the number of handles held.
	Images int

	// Hits counts requests served by an existing handle; Misses counts
	// requests that created one and started a fetch.
	Hits, Misses uint64

	// Queued is the number of fetches waiting for a worker.
	Queued int
}

// Stats returns registry and loader statistics.
func (s *Store) Stats() Stats {
	cs := s.images.Stats()
	return Stats{
		Images: cs.Len,
		Hits:   cs.Hits,
		Misses: cs.Misses,
		Queued: s.pool.QueuedWork(),
	}
}

// Close cancels in-flight fetches and stops the workers. Images requested
// afterwards fail with ErrClosed.
func (s *Store) Close() {
	s.cancel()
	s.pool.Close()
}
