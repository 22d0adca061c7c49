package ds

import "iter"

// IntoIter owns a stack's chain and pops it one element at a time.
type IntoIter[T any] struct {
	stack Stack[T]
}

// IntoIter moves the whole chain into a consuming iterator.
// The receiver must not be used afterwards; doing so panics with ErrMoved.
func (n *Stack[T]) IntoIter() *IntoIter[T] {
	n.markMoved("into_iter")

	it := &IntoIter[T]{
		stack: Stack[T]{head: n.take(), size: n.size},
	}
	n.size = 0
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.stack.Pop()
}

// Len reports how many elements are left.
func (it *IntoIter[T]) Len() int {
	return it.stack.Len()
}

// All drains the iterator.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iter walks the chain from the top without changing it.
// While it is open the stack rejects every mutation.
type Iter[T any] struct {
	next  *stackNode[T]
	owner *borrows
}

func (n *Stack[T]) Iter() *Iter[T] {
	n.lockShared("iter")
	return &Iter[T]{
		next:  n.head,
		owner: &n.borrows,
	}
}

// Next returns the current element and moves to its successor.
// Once the chain is exhausted the iterator closes itself.
func (it *Iter[T]) Next() (T, bool) {
	node := it.next
	if node == nil {
		it.Close()
		var zero T
		return zero, false
	}
	it.next = node.Next
	return node.Value, true
}

// Close gives the borrow back to the stack. It is safe to call more than once.
func (it *Iter[T]) Close() {
	it.next = nil
	if it.owner != nil {
		it.owner.unlockShared()
		it.owner = nil
	}
}

// IterMut walks the chain from the top handing out pointers to the elements.
// While it is open the stack rejects every other access to the chain.
type IterMut[T any] struct {
	next  *stackNode[T]
	owner *borrows
}

func (n *Stack[T]) IterMut() *IterMut[T] {
	n.lockExclusive("iter_mut")
	return &IterMut[T]{
		next:  n.head,
		owner: &n.borrows,
	}
}

// Next returns a pointer to the current element and moves to its successor.
// The cursor is emptied before the successor is installed, so the iterator
// never holds the node it just handed out.
func (it *IterMut[T]) Next() (*T, bool) {
	node := it.next
	it.next = nil
	if node == nil {
		it.Close()
		return nil, false
	}
	it.next = node.Next
	return &node.Value, true
}

func (it *IterMut[T]) Close() {
	it.next = nil
	if it.owner != nil {
		it.owner.unlockExclusive()
		it.owner = nil
	}
}

// All ranges over the elements from top to bottom. The stack is borrowed for
// the duration of the loop.
func (n *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := n.Iter()
		defer it.Close()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// AllMut is like All but yields pointers to the elements and borrows the stack
// exclusively.
func (n *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := n.IterMut()
		defer it.Close()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
