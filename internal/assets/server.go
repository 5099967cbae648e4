package assets

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrAssetResolutionFailed marks a sub-resource that will never become ready.
var ErrAssetResolutionFailed = errors.New("asset resolution failed")

var errServerClosed = errors.New("asset server closed")

type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Handle identifies a requested sub-resource. The zero Handle is invalid.
type Handle struct {
	id   uint64
	Path string
}

func (h Handle) IsValid() bool {
	return h.id != 0
}

// Loader reads a whole asset container. Implementations may require the main
// thread (raylib) or be safe to call from worker goroutines.
type Loader interface {
	LoadContainer(path string) (*Container, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*Container, error)

func (f LoaderFunc) LoadContainer(path string) (*Container, error) {
	return f(path)
}

type Options struct {
	// Workers > 0 loads containers on background goroutines.
	// Workers == 0 defers loads to Pump, which must run on the thread that owns the loader.
	Workers int
	// PumpBudget caps containers loaded per Pump call in deferred mode (0 = 1).
	PumpBudget int
}

type entry struct {
	handle Handle
	label  Label
	state  LoadState
	value  any
	err    error
}

type containerEntry struct {
	state     LoadState
	container *Container
	err       error
	waiting   []*entry
}

// Server hands out handles immediately and resolves them asynchronously.
// Readiness is only ever observed by polling State / TryGet*.
type Server struct {
	mu         sync.Mutex
	loader     Loader
	opts       Options
	entries    map[string]*entry
	byID       map[uint64]*entry
	containers map[string]*containerEntry
	queue      []string
	jobs       chan string
	sendMu     sync.RWMutex // held for reading while sending on jobs
	wg         sync.WaitGroup
	closed     bool
	nextID     uint64
}

func NewServer(loader Loader, opts Options) *Server {
	s := &Server{
		loader:     loader,
		opts:       opts,
		entries:    make(map[string]*entry),
		byID:       make(map[uint64]*entry),
		containers: make(map[string]*containerEntry),
	}
	if opts.Workers > 0 {
		s.jobs = make(chan string, 64)
		for range opts.Workers {
			s.wg.Add(1)
			go s.worker()
		}
	}
	return s
}

// Load returns a handle for path ("file.glb" or "file.glb#Label"). Repeated
// calls with the same path return the same handle and never reload.
func (s *Server) Load(path string) Handle {
	s.mu.Lock()
	if e, ok := s.entries[path]; ok {
		s.mu.Unlock()
		return e.handle
	}

	s.nextID++
	e := &entry{handle: Handle{id: s.nextID, Path: path}, state: Loading}
	s.entries[path] = e
	s.byID[e.handle.id] = e

	file, raw := SplitPath(path)
	label, err := ParseLabel(raw)
	if err != nil {
		s.failEntry(e, err)
		s.mu.Unlock()
		return e.handle
	}
	e.label = label

	enqueue := false
	ce, ok := s.containers[file]
	switch {
	case !ok:
		ce = &containerEntry{state: Loading}
		s.containers[file] = ce
		ce.waiting = append(ce.waiting, e)
		enqueue = true
	case ce.state == Loading:
		ce.waiting = append(ce.waiting, e)
	default:
		s.resolveEntry(e, ce)
	}
	closed := s.closed
	if enqueue && !closed && s.jobs == nil {
		s.queue = append(s.queue, file)
	}
	s.mu.Unlock()

	if enqueue && s.jobs != nil && !closed {
		s.sendMu.RLock()
		closed = s.isClosed()
		if !closed {
			s.jobs <- file
		}
		s.sendMu.RUnlock()
	}
	if enqueue && closed {
		s.finish(file, nil, errServerClosed)
	}
	return e.handle
}

// Pump performs deferred container loads on the calling goroutine.
// It returns the number of containers processed.
func (s *Server) Pump() int {
	budget := s.opts.PumpBudget
	if budget <= 0 {
		budget = 1
	}
	done := 0
	for done < budget {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			break
		}
		file := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		c, err := s.loader.LoadContainer(file)
		s.finish(file, c, err)
		done++
	}
	return done
}

func (s *Server) worker() {
	defer s.wg.Done()
	for file := range s.jobs {
		c, err := s.loader.LoadContainer(file)
		s.finish(file, c, err)
	}
}

func (s *Server) finish(file string, c *Container, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ce := s.containers[file]
	if ce == nil {
		return
	}
	if err == nil && c == nil {
		err = errors.New("loader returned no container")
	}
	if err != nil {
		ce.state = Failed
		ce.err = err
		log.Printf("Assets: failed to load %s: %v", file, err)
	} else {
		ce.state = Loaded
		ce.container = c
		log.Printf("Assets: loaded %s (%d scenes, %d meshes)", file, len(c.Scenes), len(c.Meshes))
	}
	for _, e := range ce.waiting {
		s.resolveEntry(e, ce)
	}
	ce.waiting = nil
}

func (s *Server) resolveEntry(e *entry, ce *containerEntry) {
	if ce.state == Failed {
		s.failEntry(e, ce.err)
		return
	}
	value, err := ce.container.resolve(e.label)
	if err != nil {
		s.failEntry(e, fmt.Errorf("%w: %s", err, e.label))
		return
	}
	e.state = Loaded
	e.value = value
}

func (s *Server) failEntry(e *entry, err error) {
	e.state = Failed
	e.err = fmt.Errorf("%w: %s: %w", ErrAssetResolutionFailed, e.handle.Path, err)
}

// State returns the load state of h. Unknown handles are NotLoaded.
func (s *Server) State(h Handle) LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.byID[h.id]; e != nil {
		return e.state
	}
	return NotLoaded
}

// Err returns the failure of a Failed handle, wrapping ErrAssetResolutionFailed.
func (s *Server) Err(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.byID[h.id]; e != nil {
		return e.err
	}
	return nil
}

// TryGetMesh returns the mesh for h once it is loaded.
func (s *Server) TryGetMesh(h Handle) (*MeshData, bool) {
	mesh, ok := s.get(h).(*MeshData)
	return mesh, ok
}

// TryGetScene returns the renderable scene for h once it is loaded.
func (s *Server) TryGetScene(h Handle) (*SceneData, bool) {
	scene, ok := s.get(h).(*SceneData)
	return scene, ok
}

func (s *Server) get(h Handle) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.byID[h.id]
	if e == nil || e.state != Loaded {
		return nil
	}
	return e.value
}

type Stats struct {
	Loading int
	Loaded  int
	Failed  int
}

func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st Stats
	for _, e := range s.entries {
		switch e.state {
		case Loading:
			st.Loading++
		case Loaded:
			st.Loaded++
		case Failed:
			st.Failed++
		}
	}
	return st
}

// Close stops the workers. In-flight loads finish; later loads fail.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	jobs := s.jobs
	s.mu.Unlock()

	if jobs != nil {
		s.sendMu.Lock()
		close(jobs)
		s.sendMu.Unlock()
		s.wg.Wait()
	}
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Unload releases every loaded container. Handles become NotLoaded.
func (s *Server) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ce := range s.containers {
		if ce.container != nil && ce.container.Release != nil {
			ce.container.Release()
		}
	}
	s.entries = make(map[string]*entry)
	s.byID = make(map[uint64]*entry)
	s.containers = make(map[string]*containerEntry)
	s.queue = nil
}
