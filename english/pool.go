package english

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Clause reduction recurses into sub-spans, creating one short-lived matcher
// per span. To avoid multiple allocation of small objects we pool them.
type matcherPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalMatcherPool *matcherPool

func init() {
	globalMatcherPool = &matcherPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			m := &matcher{}
			return m, nil
		})
	globalMatcherPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalMatcherPool.opool = pool.NewObjectPool(globalMatcherPool.ctx, factory, config)
}

// newPooledMatcher returns a matcher for a token span, pre-filled with the
// reduction context. The matcher is pooled for efficiency.
func newPooledMatcher(tokens []Token, ctx *Context) *matcher {
	o, _ := globalMatcherPool.opool.BorrowObject(globalMatcherPool.ctx)
	m := o.(*matcher)
	m.tokens = tokens
	m.ctx = ctx
	return m
}

// release clears the matcher and puts it back into the pool.
func (m *matcher) release() {
	m.tokens = nil
	m.ctx = nil
	_ = globalMatcherPool.opool.ReturnObject(globalMatcherPool.ctx, m)
}
