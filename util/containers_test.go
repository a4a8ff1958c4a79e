package util

import (
	"testing"
)

func TestList(t *testing.T) {
	list := NewList[int](4)
	list.Add(1)
	list.Add(2)
	list.Add(3)
	if list.Length() != 3 {
		t.Errorf("list.Length() = %v; want 3", list.Length())
	}
	if list.Last() != 3 {
		t.Errorf("list.Last() = %v; want 3", list.Last())
	}
	if list.Pop() != 3 || list.Length() != 2 {
		t.Errorf("list = %v; want [1 2] after pop", list)
	}
}

func TestListRotateLeft(t *testing.T) {
	list := List[int]{1, 2, 3, 4}
	list.RotateLeft(1)
	if list.Get(0) != 2 || list.Last() != 1 {
		t.Errorf("list = %v; want [2 3 4 1]", list)
	}
	list.RotateLeft(3)
	if list.Get(0) != 1 || list.Last() != 4 {
		t.Errorf("list = %v; want [1 2 3 4]", list)
	}
}

func TestSet(t *testing.T) {
	set := NewSet[int](4)
	set.Add(1)
	set.Add(2)
	set.Add(2)
	if set.Length() != 2 {
		t.Errorf("set.Length() = %v; want 2", set.Length())
	}
	if !set.Contains(1) || set.Contains(3) {
		t.Errorf("set = %v; want {1 2}", set)
	}

	other := NewSet[int](4)
	other.Add(2)
	other.Add(3)
	common := set.Intersection(other)
	if common.Length() != 1 || !common.Contains(2) {
		t.Errorf("common = %v; want {2}", common)
	}

	set.Extend(other)
	if set.Length() != 3 {
		t.Errorf("set.Length() = %v; want 3 after extend", set.Length())
	}
}

func TestOptional(t *testing.T) {
	some := Some(42)
	if !some.HasValue() || some.Value != 42 {
		t.Errorf("some = %v; want 42", some)
	}
	none := None[int]()
	if none.HasValue() {
		t.Errorf("none.HasValue() = true; want false")
	}
}
