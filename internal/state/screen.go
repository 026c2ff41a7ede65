package state

import (
	"context"
	"slices"
	"sync"

	"interview/notes/internal/domain"
	"interview/notes/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ContentScreen owns the state of one contents screen. Only the most recently
// started load may publish; results of superseded loads are dropped.
type ContentScreen struct {
	key        string
	repository repository.ContentRepository

	ctx    context.Context
	cancel context.CancelFunc

	// publishMu keeps observer notifications in publish order.
	publishMu sync.Mutex

	mu         sync.Mutex
	state      ScreenState
	generation uint64
	cancelLoad context.CancelFunc
	observers  map[uint64]func(ScreenState)
	nextID     uint64
	closed     bool
}

func NewContentScreen(ctx context.Context, repository repository.ContentRepository) *ContentScreen {
	ctx, cancel := context.WithCancel(ctx)

	s := &ContentScreen{
		key:        uuid.NewString(),
		repository: repository,
		ctx:        ctx,
		cancel:     cancel,
		state:      ScreenState{Status: StatusIdle, Contents: []domain.ContentItem{}},
		observers:  make(map[uint64]func(ScreenState)),
	}

	log.WithField("screen", s.key).Debug("Screen opened")
	return s
}

// Key uniquely identifies the screen instance.
func (s *ContentScreen) Key() string {
	return s.key
}

func (s *ContentScreen) State() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to be called with every new state. Calls are made in
// publish order and fn must not call Handle. The returned function removes the
// observer.
func (s *ContentScreen) Subscribe(fn func(ScreenState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *ContentScreen) Handle(event domain.ContentEvent) {
	switch e := event.(type) {
	case domain.FetchContents:
		s.fetchContents(e.Category)
	default:
		log.WithField("screen", s.key).Warnf("⚠️ Unsupported event %T", event)
	}
}

// Close cancels any load in flight and detaches all observers.
func (s *ContentScreen) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.generation++
	s.observers = make(map[uint64]func(ScreenState))
	s.mu.Unlock()

	s.cancel()
	log.WithField("screen", s.key).Debug("Screen closed")
}

func (s *ContentScreen) fetchContents(category domain.Category) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if s.cancelLoad != nil {
		s.cancelLoad()
	}

	s.generation++
	generation := s.generation

	loadCtx, cancel := context.WithCancel(s.ctx)
	s.cancelLoad = cancel

	s.state = ScreenState{
		Status:   StatusLoading,
		Category: category,
		Contents: []domain.ContentItem{},
	}
	snapshot, observers := s.snapshotLocked()
	s.mu.Unlock()

	notify(observers, snapshot)

	log.WithFields(log.Fields{
		"screen":   s.key,
		"category": category.Type,
	}).Debug("🔄 Fetching contents")

	resultCh := s.repository.LoadContents(loadCtx, category)

	go func() {
		defer cancel()

		select {
		case <-loadCtx.Done():
			return
		case contents, ok := <-resultCh:
			if !ok {
				contents = []domain.ContentItem{}
			}
			s.publish(generation, category, contents)
		}
	}()
}

func (s *ContentScreen) publish(generation uint64, category domain.Category, contents []domain.ContentItem) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	if s.closed || generation != s.generation {
		s.mu.Unlock()
		log.WithField("screen", s.key).Debugf("Dropped superseded contents of %s", category.Title)
		return
	}

	status := StatusPopulated
	if len(contents) == 0 {
		status = StatusEmpty
	}

	s.state = ScreenState{
		Status:   status,
		Category: category,
		Contents: contents,
	}
	snapshot, observers := s.snapshotLocked()
	s.mu.Unlock()

	notify(observers, snapshot)
}

func (s *ContentScreen) snapshotLocked() (ScreenState, []func(ScreenState)) {
	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	observers := make([]func(ScreenState), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}

	return s.state.clone(), observers
}

func notify(observers []func(ScreenState), state ScreenState) {
	for _, fn := range observers {
		fn(state.clone())
	}
}
