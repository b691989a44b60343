package ponyexpress_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/ponyexpress/pkg/executor"
	"github.com/dmitrymomot/ponyexpress/pkg/logger"
	"github.com/dmitrymomot/ponyexpress/pkg/ponyexpress"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type userInfo struct {
	ObjectKeys []int
}

type graph struct {
	name     string
	received []ponyexpress.Letter[userInfo]
}

func (g *graph) Receive(letter ponyexpress.Letter[userInfo]) {
	g.received = append(g.received, letter)
}

func newExpress() *ponyexpress.Express[userInfo] {
	return ponyexpress.New[userInfo](ponyexpress.WithLogger(logger.New(logger.WithDiscard())))
}

func TestExpress_Recipient(t *testing.T) {
	t.Parallel()

	x := newExpress()
	g := &graph{name: "graph"}
	ponyexpress.AddRecipient(x, "day-changed", g)

	x.Post("day-changed", nil, userInfo{ObjectKeys: []int{12, 13}})

	require.Len(t, g.received, 1)
	letter := g.received[0]
	assert.Equal(t, "day-changed", letter.Name)
	assert.Nil(t, letter.Sender)
	assert.Equal(t, []int{12, 13}, letter.Contents.ObjectKeys)
}

func TestExpress_Block(t *testing.T) {
	t.Parallel()

	x := newExpress()
	sender := &graph{name: "sender"}

	var order []string
	x.Add("tick", func(l ponyexpress.Letter[userInfo]) {
		order = append(order, "first")
		assert.Same(t, sender, l.Sender)
	})
	x.Add("tick", func(ponyexpress.Letter[userInfo]) { order = append(order, "second") })
	x.Add("other", func(ponyexpress.Letter[userInfo]) { order = append(order, "other") })
	x.Add("tick", nil)

	x.Post("tick", sender, userInfo{})
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 3, x.Count())
}

func TestExpress_UnknownName(t *testing.T) {
	t.Parallel()

	x := newExpress()
	assert.NotPanics(t, func() { x.Post("nobody", nil, userInfo{}) })
	assert.Equal(t, 0, x.Count())
}

func TestExpress_Remove(t *testing.T) {
	t.Parallel()

	x := newExpress()
	var calls int
	x.Add("tick", func(ponyexpress.Letter[userInfo]) { calls++ })
	x.Add("tick", func(ponyexpress.Letter[userInfo]) { calls++ })
	x.Add("tock", func(ponyexpress.Letter[userInfo]) { calls++ })

	x.Remove("tick")
	x.Remove("tick")
	x.Post("tick", nil, userInfo{})
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, x.Count())
}

func TestExpress_WeakRecipient(t *testing.T) {
	t.Parallel()

	x := newExpress()
	func() {
		g := &graph{name: "short-lived"}
		ponyexpress.AddRecipient(x, "tick", g)
	}()
	assert.Equal(t, 1, x.Count())

	runtime.GC()
	runtime.GC()

	x.Post("tick", nil, userInfo{})
	assert.Equal(t, 0, x.Count())
}

func TestExpress_RecipientFunc(t *testing.T) {
	t.Parallel()

	x := newExpress()
	var got string
	fn := ponyexpress.RecipientFunc[userInfo](func(l ponyexpress.Letter[userInfo]) { got = l.Name })
	x.Add("named", fn.Receive)
	x.Post("named", nil, userInfo{})
	assert.Equal(t, "named", got)
}

func TestExpress_WithQueue(t *testing.T) {
	t.Parallel()

	x := newExpress()
	queue := executor.NewSerial(executor.WithLogger(logger.New(logger.WithDiscard())))

	g := &graph{name: "queued"}
	ponyexpress.AddRecipient(x, "tick", g, ponyexpress.WithQueue(queue))

	for i := range 3 {
		x.Post("tick", nil, userInfo{ObjectKeys: []int{i}})
	}
	require.NoError(t, queue.Close(context.Background()))

	require.Len(t, g.received, 3)
	for i, l := range g.received {
		assert.Equal(t, []int{i}, l.Contents.ObjectKeys)
	}
	runtime.KeepAlive(g)
}

func TestExpress_ReentrantPost(t *testing.T) {
	t.Parallel()

	x := newExpress()
	var depth int
	x.Add("echo", func(l ponyexpress.Letter[userInfo]) {
		depth++
		if depth < 3 {
			x.Add("late", func(ponyexpress.Letter[userInfo]) {})
			x.Post("echo", nil, l.Contents)
		}
	})
	x.Post("echo", nil, userInfo{})
	assert.Equal(t, 3, depth)
	assert.Equal(t, 3, x.Count())
}
