package jobfilter

import (
	jobpostapimodels "recruit-backend/models/api/jobpost"
	"sync"
)

// State единый источник выбранных пользователем фильтров и переключателей интерфейса
type State struct {
	JobList jobpostapimodels.JobPostFilter
	UI      UI
}

type UI struct {
	SidebarOpen bool
}

func Reduce(state State, action Action) State {
	if action == nil {
		return state
	}
	return action.apply(state)
}

func JobListSlice(state State) jobpostapimodels.JobPostFilter {
	return state.JobList
}

func UISlice(state State) UI {
	return state.UI
}

type Store struct {
	dispatchMu sync.Mutex // порядок уведомлений совпадает с порядком Dispatch
	mu         sync.RWMutex
	state      State
	nextID     int
	listeners  map[int]func(prev, next State)
}

func NewStore(initial State) *Store {
	return &Store{
		state:     initial,
		listeners: map[int]func(prev, next State){},
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch применяет action и уведомляет подписчиков. Подписчик не должен вызывать Dispatch синхронно.
func (s *Store) Dispatch(action Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := make([]func(prev, next State), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(prev, next)
	}
}

func (s *Store) addListener(listener func(prev, next State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Subscribe вызывает fn только когда значение selector изменилось
func Subscribe[T comparable](s *Store, selector func(State) T, fn func(T)) (unsubscribe func()) {
	return s.addListener(func(prev, next State) {
		prevValue, nextValue := selector(prev), selector(next)
		if prevValue != nextValue {
			fn(nextValue)
		}
	})
}
