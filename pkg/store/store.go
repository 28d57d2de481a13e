package store

// Store is a mutable keyed collection that remembers insertion order.
type Store[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K) (V, bool)
	Len() int
	Values() []V
}
