package hellings

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/cfpq/internal/ntset"
)

// additions buffers non-terminals found while scanning a single row or column
// of the table. They are merged into the table after the scan is complete.
type additions struct {
	marks ntset.Set
	heads []int
}

func (a *additions) add(nt int) {
	if !a.marks.Has(nt) {
		a.marks.Set(nt)
		a.heads = append(a.heads, nt)
	}
}

func (a *additions) reset() {
	for _, nt := range a.heads {
		a.marks.Unset(nt)
	}
	a.heads = a.heads[:0]
}

// fit makes room for non-terminals 0 … size-1. A reset buffer has no marks
// set, so a larger set may simply replace the old one.
func (a *additions) fit(size int) {
	if need := ntset.New(size); len(need) > len(a.marks) {
		a.marks = need
	}
}

// Addition buffers are needed once per query. They are pooled across queries.
type additionsPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAdditionsPool *additionsPool

func init() {
	globalAdditionsPool = &additionsPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &additions{}, nil
		})
	globalAdditionsPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAdditionsPool.opool = pool.NewObjectPool(globalAdditionsPool.ctx, factory, config)
}

// borrowAdditions returns a cleared buffer for non-terminals 0 … size-1.
func borrowAdditions(size int) (*additions, error) {
	o, err := globalAdditionsPool.opool.BorrowObject(globalAdditionsPool.ctx)
	if err != nil {
		return nil, err
	}
	buf := o.(*additions)
	buf.fit(size)
	return buf, nil
}

// release clears the buffer and puts it back into the pool.
func (a *additions) release() {
	a.reset()
	_ = globalAdditionsPool.opool.ReturnObject(globalAdditionsPool.ctx, a)
}
