package keymutex

import "sync"

// KeyMutex 按 key 串行化操作。计票与成员变更要求同一实体内的
// 读改写串行执行，互不相关的实体之间不受影响。
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

func (s *KeyMutex) Lock(key string) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &entry{}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
}

func (s *KeyMutex) Unlock(key string) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(s.locks, key)
	}
	s.mu.Unlock()

	e.mu.Unlock()
}
