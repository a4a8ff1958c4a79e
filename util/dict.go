package util

//*******************************************
// dictionary
//*******************************************

type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](cap int) Dict[K, V] {
	return make(map[K]V, cap)
}

func (self Dict[K, V]) ContainsKey(key K) bool {
	_, ok := self[key]
	return ok
}
func (self Dict[K, V]) Get(key K) V {
	return self[key]
}
func (self Dict[K, V]) Set(key K, value V) {
	self[key] = value
}
func (self Dict[K, V]) Delete(key K) {
	delete(self, key)
}
func (self Dict[K, V]) Length() int {
	return len(self)
}

//*******************************************
// set
//*******************************************

type Set[T comparable] map[T]bool

func NewSet[T comparable](cap int) Set[T] {
	return make(map[T]bool, cap)
}

func (self Set[T]) Add(value T) {
	self[value] = true
}
func (self Set[T]) Contains(value T) bool {
	return self[value]
}
func (self Set[T]) Remove(value T) {
	delete(self, value)
}
func (self Set[T]) Length() int {
	return len(self)
}
func (self Set[T]) Extend(other Set[T]) {
	for value := range other {
		self[value] = true
	}
}
func (self Set[T]) Intersection(other Set[T]) Set[T] {
	result := NewSet[T](10)
	for value := range self {
		if other.Contains(value) {
			result.Add(value)
		}
	}
	return result
}
