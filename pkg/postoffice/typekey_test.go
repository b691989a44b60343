package postoffice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ponyexpress/pkg/postoffice"
)

type Box[T any] struct {
	postoffice.Unmarked
	Value T
}

func TestTypeKey(t *testing.T) {
	t.Parallel()

	t.Run("identity", func(t *testing.T) {
		assert.True(t, postoffice.KeyFor[Ping]().Equal(postoffice.KeyFor[Ping]()))
		assert.False(t, postoffice.KeyFor[Ping]().Equal(postoffice.KeyFor[Pong]()))
		assert.False(t, postoffice.KeyFor[Box[int]]().Equal(postoffice.KeyFor[Box[string]]()))
		assert.False(t, postoffice.KeyFor[Ping]().Equal(postoffice.KeyFor[*Ping]()))
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "postoffice_test.Ping", postoffice.KeyFor[Ping]().Name())
		assert.Equal(t, "<nil>", postoffice.TypeKey{}.Name())
		assert.True(t, postoffice.TypeKey{}.IsZero())
		assert.False(t, postoffice.KeyFor[Ping]().IsZero())
	})

	t.Run("matches concrete", func(t *testing.T) {
		key := postoffice.KeyFor[Dog]()
		assert.True(t, key.Matches(Dog{}))
		assert.False(t, key.Matches(Cat{}))
		assert.False(t, key.Matches(&Dog{}))
		assert.False(t, key.Matches(nil))
	})

	t.Run("matches interface", func(t *testing.T) {
		key := postoffice.KeyFor[Animal]()
		assert.True(t, key.Matches(Dog{}))
		assert.True(t, key.Matches(Cat{}))
		assert.False(t, key.Matches(Ping{}))
		assert.False(t, key.Matches(nil))
	})

	t.Run("zero key never matches", func(t *testing.T) {
		assert.False(t, postoffice.TypeKey{}.Matches(Ping{}))
	})
}

func TestPost_GenericLettersDoNotCollide(t *testing.T) {
	t.Parallel()

	po := newOffice()
	var ints, strs int
	postoffice.Register(po, func(Box[int]) { ints++ })
	postoffice.Register(po, func(Box[string]) { strs++ })

	po.Post(Box[int]{Value: 1})
	assert.Equal(t, 1, ints)
	assert.Equal(t, 0, strs)
}
