package store

import (
	"container/list"
	"fmt"
	"sync"

	"catalog/pkg/logger"
	"catalog/pkg/metric"
)

// Ordered is a mutex-guarded map that iterates in insertion order.
// Updating an existing key keeps its original position. Nothing is ever
// evicted; records leave only through Delete.
type Ordered[K comparable, V any] struct {
	index   map[K]*list.Element
	seq     *list.List
	mutex   sync.Mutex
	log     logger.Logger
	metrics metric.Store
	name    string
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func NewOrdered[K comparable, V any](
	name string,
	log logger.Logger,
	metrics metric.Store,
) *Ordered[K, V] {
	return &Ordered[K, V]{
		index:   make(map[K]*list.Element),
		seq:     list.New(),
		log:     log,
		metrics: metrics,
		name:    name,
	}
}

func (s *Ordered[K, V]) Put(key K, value V) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if elem, ok := s.index[key]; ok {
		if entry, exist := elem.Value.(*entry[K, V]); exist {
			entry.value = value
			return
		}
		s.seq.Remove(elem)
		delete(s.index, key)
	}

	e := &entry[K, V]{
		key:   key,
		value: value,
	}
	s.index[key] = s.seq.PushBack(e)
	s.metrics.Size(s.name, s.seq.Len())
}

func (s *Ordered[K, V]) Get(key K) (V, bool) {
	var zero V

	s.mutex.Lock()
	defer s.mutex.Unlock()

	elem, ok := s.index[key]
	if !ok {
		s.metrics.Miss(s.name)
		return zero, false
	}

	entry, ok := elem.Value.(*entry[K, V])
	if !ok {
		s.log.Errorw("store contains value of unexpected type",
			"type", fmt.Sprintf("%T", elem.Value),
		)
		s.seq.Remove(elem)
		delete(s.index, key)
		s.metrics.Miss(s.name)
		return zero, false
	}

	s.metrics.Hit(s.name)
	return entry.value, true
}

func (s *Ordered[K, V]) Delete(key K) (V, bool) {
	var zero V

	s.mutex.Lock()
	defer s.mutex.Unlock()

	elem, ok := s.index[key]
	if !ok {
		s.metrics.Miss(s.name)
		return zero, false
	}

	s.seq.Remove(elem)
	delete(s.index, key)
	s.metrics.Size(s.name, s.seq.Len())

	entry, ok := elem.Value.(*entry[K, V])
	if !ok {
		s.log.Errorw("store contains value of unexpected type",
			"type", fmt.Sprintf("%T", elem.Value),
		)
		return zero, false
	}

	s.metrics.Hit(s.name)
	return entry.value, true
}

func (s *Ordered[K, V]) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.seq.Len()
}

// Values returns a snapshot slice in insertion order.
func (s *Ordered[K, V]) Values() []V {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	values := make([]V, 0, s.seq.Len())
	for elem := s.seq.Front(); elem != nil; elem = elem.Next() {
		entry, ok := elem.Value.(*entry[K, V])
		if !ok {
			continue
		}
		values = append(values, entry.value)
	}
	return values
}
