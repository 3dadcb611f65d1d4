package arnorm

import (
	"context"
	"errors"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// ErrInvalidArgument flags a violation of an operation's input contract,
// e.g. a Tashkil code not matching the text it belongs to.
var ErrInvalidArgument = errors.New("arnorm: invalid argument")

// A Rewriter is a scan buffer for single-pass text rewriting. It holds
// the input text as a sequence of code-points and collects output code-points.
// Output is built append-only.
//
// Rewriters are short-lived objects and clients should get them by calling
// NewPooledRewriter() and give them back with Release().
type Rewriter struct {
	input  []rune
	output []rune
}

// NewRewriter creates a new Rewriter for a text.
// This is rarely used, as clients rather should call NewPooledRewriter().
func NewRewriter(text string) *Rewriter {
	rw := &Rewriter{}
	rw.reset(text)
	return rw
}

func (rw *Rewriter) reset(text string) {
	rw.input = rw.input[:0]
	for _, r := range text {
		rw.input = append(rw.input, r)
	}
	if cap(rw.output) < len(rw.input) {
		rw.output = make([]rune, 0, len(rw.input)+len(rw.input)/8)
	} else {
		rw.output = rw.output[:0]
	}
}

// Rewriters are used by every call of a context sensitive operation. To avoid
// multiple allocation of their buffers we will pool them.
type rewriterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRewriterPool *rewriterPool

func init() {
	globalRewriterPool = &rewriterPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rw := &Rewriter{}
			return rw, nil
		})
	globalRewriterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRewriterPool.opool = pool.NewObjectPool(globalRewriterPool.ctx, factory, config)
}

// NewPooledRewriter returns a Rewriter, pre-filled with text. The Rewriter
// is pooled for efficiency.
func NewPooledRewriter(text string) *Rewriter {
	o, err := globalRewriterPool.opool.BorrowObject(globalRewriterPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow rewriter from pool: %v", err)
		return NewRewriter(text)
	}
	rw := o.(*Rewriter)
	rw.reset(text)
	return rw
}

// Release clears the Rewriter and puts it back into the pool.
// The Rewriter must not be used afterwards.
func (rw *Rewriter) Release() {
	rw.input = rw.input[:0]
	rw.output = rw.output[:0]
	_ = globalRewriterPool.opool.ReturnObject(globalRewriterPool.ctx, rw)
}

// Len is the number of code-points of the input.
func (rw *Rewriter) Len() int {
	return len(rw.input)
}

// At returns the input code-point at position i. Positions outside of the
// input return rune(0), which no classification predicate treats as special.
func (rw *Rewriter) At(i int) rune {
	if i < 0 || i >= len(rw.input) {
		return 0
	}
	return rw.input[i]
}

// IsLast is true if i is the position of the final input code-point.
func (rw *Rewriter) IsLast(i int) bool {
	return i == len(rw.input)-1
}

// Run returns the length of the run of code-points starting at position i,
// all of which satisfy pred. Runs are consumed once by the caller, which
// advances its position by the length of the run.
func (rw *Rewriter) Run(i int, pred func(rune) bool) int {
	n := 0
	for j := i; j < len(rw.input) && pred(rw.input[j]); j++ {
		n++
	}
	return n
}

// Skip returns the first position at or after i which does not satisfy pred.
func (rw *Rewriter) Skip(i int, pred func(rune) bool) int {
	return i + rw.Run(i, pred)
}

// Emit appends code-points to the output.
func (rw *Rewriter) Emit(r ...rune) {
	rw.output = append(rw.output, r...)
}

// Last returns the most recently emitted code-point, or rune(0) if nothing
// has been emitted yet.
func (rw *Rewriter) Last() rune {
	if len(rw.output) == 0 {
		return 0
	}
	return rw.output[len(rw.output)-1]
}

// Emitted is the number of code-points emitted so far.
func (rw *Rewriter) Emitted() int {
	return len(rw.output)
}

// String returns the output as a string.
func (rw *Rewriter) String() string {
	return string(rw.output)
}

// Simple stringer for debugging purposes.
func (rw *Rewriter) GoString() string {
	if rw == nil {
		return "[nil rewriter]"
	}
	return fmt.Sprintf("[rewriter %d -> %d]", len(rw.input), len(rw.output))
}
