package ds

import (
	"errors"

	"github.com/quintans/faults"
	"github.com/quintans/linkstack/internal/lib/fails"
)

var (
	// ErrBorrowed is the cause of the panic raised when an operation conflicts
	// with a live iterator.
	ErrBorrowed = errors.New("stack is borrowed")
	// ErrMoved is the cause of the panic raised when a stack is used after its
	// chain was handed to a consuming iterator.
	ErrMoved = errors.New("stack was moved")
)

// borrows tracks the live views into a stack's chain.
// Any number of shared views may coexist; an exclusive view excludes all others.
type borrows struct {
	shared    int
	exclusive bool
	moved     bool
}

// checkRead guards operations that only observe the chain.
func (b *borrows) checkRead(op string) {
	if b.moved {
		b.violation(op, ErrMoved)
	}
	if b.exclusive {
		b.violation(op, ErrBorrowed)
	}
}

// checkWrite guards operations that change the chain or hand out a mutable view.
func (b *borrows) checkWrite(op string) {
	if b.moved {
		b.violation(op, ErrMoved)
	}
	if b.exclusive || b.shared > 0 {
		b.violation(op, ErrBorrowed)
	}
}

func (b *borrows) lockShared(op string) {
	b.checkRead(op)
	b.shared++
}

func (b *borrows) unlockShared() {
	if b.shared > 0 {
		b.shared--
	}
}

func (b *borrows) lockExclusive(op string) {
	b.checkWrite(op)
	b.exclusive = true
}

func (b *borrows) unlockExclusive() {
	b.exclusive = false
}

func (b *borrows) markMoved(op string) {
	b.checkWrite(op)
	b.moved = true
}

func (b *borrows) violation(op string, cause error) {
	panic(faults.Errorf("%s: %w", op, fails.NewWithErr(cause, "borrow check", "shared", b.shared, "exclusive", b.exclusive)))
}
