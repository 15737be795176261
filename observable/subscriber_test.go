package observable_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/delaneyj/signalgraph/observable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func sumInts(args ...any) int {
	sum := 0
	for _, arg := range args {
		sum += arg.(int)
	}
	return sum
}

func TestNoArgSubscriber(t *testing.T) {
	callCount := 0
	s := observable.NewSubscriber(nil, func(args ...any) int {
		callCount++
		return 42
	})

	assert.False(t, s.Valid())
	assert.False(t, s.Tracking())
	assert.Equal(t, 42, s.Get())
	assert.Equal(t, 42, s.Get())
	assert.Equal(t, 1, callCount)
	assert.True(t, s.Valid())
}

func TestMemoization(t *testing.T) {
	a := observable.NewPublisher(7)
	b := observable.NewPublisher(1)
	callCount := 0
	c := observable.NewSubscriber([]any{a, b, 2}, func(args ...any) int {
		callCount++
		return args[0].(int) * args[1].(int) * args[2].(int)
	})

	assert.Equal(t, 14, c.Get())
	assert.Equal(t, 14, c.Get())
	assert.Equal(t, 1, callCount)

	a.Set(2)
	assert.Equal(t, 4, c.Get())
	b.Set(3)
	assert.Equal(t, 12, c.Get())
	assert.Equal(t, 3, callCount)

	c.Get()
	assert.Equal(t, 3, callCount)
}

func TestInvalidationPropagation(t *testing.T) {
	p := observable.NewPublisher(1)
	callCount := 0
	s := observable.Map(p, func(x int) int {
		callCount++
		return x * 2
	})

	assert.Equal(t, 2, s.Get())
	assert.Equal(t, 1, callCount)

	p.Set(2)
	s.Invalidate()
	p.Set(3)
	s.Invalidate()
	assert.Equal(t, observable.CacheDirty, s.State())

	assert.Equal(t, 6, s.Get())
	assert.Equal(t, 2, callCount)
}

func TestInvalidationReachesEveryNodeBeforeSetReturns(t *testing.T) {
	//   p
	//   |
	//   a
	//  / \
	// b   c
	//     |
	//     d
	p := observable.NewPublisher(1)
	a := observable.Map(p, func(x int) int { return x + 1 })
	b := observable.Map(a, func(x int) int { return x + 1 })
	c := observable.Map(a, func(x int) int { return x + 1 })
	d := observable.Map(c, func(x int) int { return x + 1 })
	assert.Equal(t, 3, b.Get())
	assert.Equal(t, 4, d.Get())

	p.Set(10)
	for _, s := range []*observable.Subscriber[int]{a, b, c, d} {
		assert.False(t, s.Valid())
	}
	assert.Equal(t, observable.CacheDirty, a.State())
	assert.Equal(t, observable.CacheCheck, d.State())

	assert.Equal(t, 13, d.Get())
	assert.Equal(t, 12, b.Get())
}

func TestChangeSuppression(t *testing.T) {
	p := observable.NewPublisher(1)
	s1Count, s2Count := 0, 0
	s1 := observable.Map(p, func(x int) int {
		s1Count++
		return x % 2
	})
	s2 := observable.Map(s1, func(y int) int {
		s2Count++
		return y + 100
	})

	assert.Equal(t, 101, s2.Get())
	assert.Equal(t, 1, s1Count)
	assert.Equal(t, 1, s2Count)

	// still odd
	p.Set(3)
	assert.Equal(t, observable.CacheCheck, s2.State())
	assert.Equal(t, 101, s2.Get())
	assert.Equal(t, 2, s1Count)
	assert.Equal(t, 1, s2Count)

	p.Set(4)
	assert.Equal(t, 100, s2.Get())
	assert.Equal(t, 3, s1Count)
	assert.Equal(t, 2, s2Count)
}

func TestIdempotentInvalidation(t *testing.T) {
	p := observable.NewPublisher(1)
	s := observable.Map(p, func(x int) int { return x })
	s.Get()

	notified := 0
	s.Subscribe(func(src observable.Observable) {
		assert.Same(t, s, src)
		notified++
	})

	s.Invalidate()
	s.Invalidate()
	p.Set(2)
	assert.Equal(t, 1, notified)
}

func TestRecomputeNotifiesOnlyOnChange(t *testing.T) {
	p := observable.NewPublisher(1)
	s := observable.Map(p, func(x int) int { return x / 10 })
	assert.Equal(t, 0, s.Get())

	notified := 0
	s.Subscribe(func(observable.Observable) { notified++ })

	p.Set(5)
	assert.Equal(t, 1, notified) // invalidation
	s.Get()
	assert.Equal(t, 1, notified) // 0 == 0, suppressed

	p.Set(20)
	s.Get()
	assert.Equal(t, 3, notified) // invalidation and changed value
}

func TestFirstComputeNotifies(t *testing.T) {
	s := observable.NewSubscriber(nil, func(args ...any) int { return 0 })
	notified := 0
	s.Subscribe(func(observable.Observable) { notified++ })

	// zero value, still a change from nothing
	assert.Equal(t, 0, s.Get())
	assert.Equal(t, 1, notified)

	s.Invalidate()
	assert.Equal(t, 2, notified)
	s.Get()
	assert.Equal(t, 2, notified)

	empty := observable.Map(observable.NewPublisher(""), func(v string) string { return v })
	seen := 0
	empty.Subscribe(func(observable.Observable) { seen++ })
	empty.Get()
	assert.Equal(t, 1, seen)
}

func TestUncomparableValuesAlwaysNotify(t *testing.T) {
	p := observable.NewPublisher(1)
	s := observable.Map(p, func(x int) []int { return []int{x} })
	s.Get()

	notified := 0
	s.Subscribe(func(observable.Observable) { notified++ })
	s.Invalidate()
	s.Get()
	assert.Equal(t, 2, notified)

	eq := observable.Map(p, func(x int) []int {
		return []int{x}
	}, observable.WithEquals(slices.Equal[[]int]))
	eq.Get()

	notified = 0
	eq.Subscribe(func(observable.Observable) { notified++ })
	eq.Invalidate()
	eq.Get()
	assert.Equal(t, 1, notified)
}

func TestAddArg(t *testing.T) {
	a := observable.NewPublisher(1)
	b := observable.NewPublisher(2)
	callCount := 0
	s := observable.NewSubscriber([]any{a}, func(args ...any) int {
		callCount++
		return sumInts(args...)
	})
	assert.Equal(t, 1, s.Get())

	assert.Same(t, s, s.AddArg(b).AddArg(3))
	assert.Equal(t, []any{a, b, 3}, s.Args())
	assert.False(t, s.Valid())
	assert.Equal(t, 6, s.Get())

	b.Set(20)
	assert.Equal(t, 24, s.Get())
	assert.Equal(t, 3, callCount)
}

func TestDynamicArgumentRebinding(t *testing.T) {
	p1 := observable.NewPublisher(1)
	p2 := observable.NewPublisher(10)
	list := observable.NewPublisher([]any{p1})

	callCount := 0
	s := observable.NewDynamicSubscriber(list, func(args ...any) int {
		callCount++
		return sumInts(args...)
	})
	assert.True(t, s.Tracking())
	assert.Equal(t, 1, s.Get())

	list.Set([]any{p2})
	assert.False(t, s.Valid())
	assert.Equal(t, 10, s.Get())
	assert.Equal(t, 2, callCount)

	// the old member no longer reaches s
	p1.Set(5)
	assert.True(t, s.Valid())
	assert.Equal(t, 0, p1.SubscriberCount())
	assert.Equal(t, 10, s.Get())
	assert.Equal(t, 2, callCount)

	p2.Set(20)
	assert.Equal(t, 20, s.Get())
	assert.Equal(t, 3, callCount)
}

func TestDynamicArgumentsFromSubscriber(t *testing.T) {
	//   n        a  b  c
	//   |        |  |  |
	// members -> first n of [a b c]
	//   |
	// total
	n := observable.NewPublisher(1)
	a := observable.NewPublisher(1)
	b := observable.NewPublisher(10)
	c := observable.NewPublisher(100)
	all := []any{a, b, c}

	members := observable.Map(n, func(k int) []any {
		return all[:k]
	})
	callCount := 0
	total := observable.NewDynamicSubscriber(members, func(args ...any) int {
		callCount++
		return sumInts(args...)
	})

	assert.Equal(t, 1, total.Get())
	assert.Equal(t, 1, callCount)

	n.Set(3)
	assert.Equal(t, observable.CacheCheck, total.State())
	assert.Equal(t, 111, total.Get())
	assert.Equal(t, 2, callCount)
	assert.Len(t, total.Args(), 3)

	b.Set(20)
	assert.Equal(t, 121, total.Get())

	n.Set(1)
	assert.Equal(t, 1, total.Get())
	assert.Equal(t, 0, b.SubscriberCount())
	assert.Equal(t, 0, c.SubscriberCount())
	assert.Equal(t, 1, a.SubscriberCount())

	b.Set(30)
	assert.True(t, total.Valid())
	assert.Equal(t, 1, total.Get())
}

func TestComputePanicLeavesSubscriberDirty(t *testing.T) {
	p := observable.NewPublisher(1)
	fail := true
	callCount := 0
	s := observable.Map(p, func(x int) int {
		callCount++
		if fail {
			panic("boom")
		}
		return x * 10
	})

	assert.PanicsWithValue(t, "boom", func() { s.Get() })
	assert.Equal(t, observable.CacheDirty, s.State())

	fail = false
	assert.Equal(t, 10, s.Get())
	assert.Equal(t, 2, callCount)
}

func TestCycleIsReported(t *testing.T) {
	var self *observable.Subscriber[int]
	self = observable.NewSubscriber(nil, func(args ...any) int {
		return self.Get() + 1
	})
	err := recoverErr(func() { self.Get() })
	require.Error(t, err)
	assert.True(t, errors.Is(err, observable.ErrCycle))

	// a -> b -> a
	a := observable.NewSubscriber(nil, sumInts)
	b := observable.Map(a, func(x int) int { return x + 1 })
	a.AddArg(b)
	err = recoverErr(func() { b.Get() })
	assert.ErrorIs(t, err, observable.ErrCycle)
	assert.False(t, a.Valid())
	assert.False(t, b.Valid())
}
