package util

//*******************************************
// list
//*******************************************

type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}
func (self *List[T]) Get(index int) T {
	return (*self)[index]
}
func (self *List[T]) Set(index int, value T) {
	(*self)[index] = value
}
func (self *List[T]) Length() int {
	return len(*self)
}
func (self *List[T]) Last() T {
	return (*self)[len(*self)-1]
}
func (self *List[T]) Pop() T {
	value := (*self)[len(*self)-1]
	*self = (*self)[:len(*self)-1]
	return value
}
func (self *List[T]) Clear() {
	*self = (*self)[:0]
}

// Rotates the list in place, moving the first count items to the end.
func (self *List[T]) RotateLeft(count int) {
	l := len(*self)
	if l == 0 {
		return
	}
	count = count % l
	rotated := make([]T, 0, l)
	rotated = append(rotated, (*self)[count:]...)
	rotated = append(rotated, (*self)[:count]...)
	*self = rotated
}

//*******************************************
// fixed-size array
//*******************************************

type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make([]T, size)
}

func (self *Array[T]) Get(index int) T {
	return (*self)[index]
}
func (self *Array[T]) Set(index int, value T) {
	(*self)[index] = value
}
func (self *Array[T]) Length() int {
	return len(*self)
}
