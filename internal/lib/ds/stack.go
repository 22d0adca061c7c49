package ds

// Stack is a LIFO stack over a singly linked chain of nodes.
// The stack owns the head node and every node owns its successor.
//
// A Stack is not safe for concurrent use. Borrowing iterators are tracked at
// runtime and conflicting use panics with an error wrapping ErrBorrowed.
type Stack[T any] struct {
	head *stackNode[T]
	size int
	borrows
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

type stackNode[T any] struct {
	Value T
	Next  *stackNode[T]
}

// Push places c on top of the stack. The current head becomes the successor
// of the new node.
func (n *Stack[T]) Push(c T) {
	n.checkWrite("push")

	node := &stackNode[T]{
		Value: c,
		Next:  n.take(),
	}
	n.head = node
	n.size++
}

// Pop removes the top element and hands it to the caller.
// It returns false, leaving the stack untouched, when the stack is empty.
func (n *Stack[T]) Pop() (T, bool) {
	n.checkWrite("pop")

	node := n.take()
	if node == nil {
		var zero T
		return zero, false
	}
	n.head = node.Next
	n.size--

	v := node.Value
	node.release()
	return v, true
}

// Peek returns a copy of the top element.
func (n *Stack[T]) Peek() (T, bool) {
	n.checkRead("peek")

	if n.head == nil {
		var zero T
		return zero, false
	}
	return n.head.Value, true
}

// PeekMut returns a pointer to the top element so it can be changed in place.
// The pointer must not be used after the next Push, Pop or Reset.
func (n *Stack[T]) PeekMut() (*T, bool) {
	n.checkWrite("peek_mut")

	if n.head == nil {
		return nil, false
	}
	return &n.head.Value, true
}

func (n *Stack[T]) Len() int {
	return n.size
}

func (n *Stack[T]) IsEmpty() bool {
	return n.size == 0
}

// Values returns the elements from top to bottom.
func (n *Stack[T]) Values() []T {
	n.checkRead("values")

	vals := make([]T, 0, n.size)
	for node := n.head; node != nil; node = node.Next {
		vals = append(vals, node.Value)
	}
	return vals
}

// Reset releases every node and leaves the stack empty and usable.
// The chain is unwound in a loop: each node's link is detached before the node
// is released, so no node is ever reached through a chain of nested releases.
func (n *Stack[T]) Reset() {
	n.checkWrite("reset")

	cur := n.take()
	for cur != nil {
		next := cur.Next
		cur.release()
		cur = next
	}
	n.size = 0
}

// take detaches the head, leaving the stack without a chain.
func (n *Stack[T]) take() *stackNode[T] {
	head := n.head
	n.head = nil
	return head
}

// release drops the node's element and its link to the successor.
func (s *stackNode[T]) release() {
	var zero T
	s.Value = zero
	s.Next = nil
}
