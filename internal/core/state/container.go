package state

import "sync"

// Listener は状態が変化したときに (新しい状態, 直前の状態) で呼ばれます。
type Listener func(next, prev *Snapshot)

type subscription struct {
	fn Listener
}

// Container は現在の Snapshot を保持する唯一の書き手です。
// intent は一つずつ最後まで適用され、購読者は登録順に同期的に呼ばれます。
type Container struct {
	reducer *Reducer

	mu          sync.Mutex
	current     *Snapshot
	subs        []*subscription
	dispatching bool
	pending     []Intent
}

// NewContainer は初期状態と Reducer から Container を生成します。
func NewContainer(initial *Snapshot, reducer *Reducer) *Container {
	if reducer == nil {
		reducer = NewReducer(nil)
	}
	if initial == nil {
		initial = NewSnapshot(EmployeesState{List: nil}, DefaultApp(LanguageEN), DefaultRoute())
	}
	return &Container{reducer: reducer, current: initial}
}

// State は現在の Snapshot を参照で返します。呼び出し側は変更してはいけません。
func (c *Container) State() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe は購読者を登録し、登録解除関数を返します。解除は何度呼んでも安全です。
func (c *Container) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	sub := &subscription{fn: fn}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s == sub {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch は intent を Reducer に通し、状態が変われば購読者へ通知します。
// 通知中に発行された intent は、購読者からの呼び出しか別 goroutine からの呼び出しかに関わらず
// キューに積まれ、実行中の Dispatch が通知を終えてから順に適用されます。
// この場合 Dispatch は適用を待たずに戻るため、呼び出し元が戻り直後の State で結果を観測できるとは限りません。
func (c *Container) Dispatch(in Intent) {
	if in == nil {
		return
	}

	c.mu.Lock()
	if c.dispatching {
		c.pending = append(c.pending, in)
		c.mu.Unlock()
		return
	}
	c.dispatching = true

	for {
		prev := c.current
		next := c.reducer.Reduce(prev, in)
		var subs []*subscription
		if next != prev {
			c.current = next
			subs = append(subs, c.subs...)
		}
		c.mu.Unlock()

		c.notify(subs, next, prev)

		c.mu.Lock()
		if len(c.pending) == 0 {
			c.dispatching = false
			c.mu.Unlock()
			return
		}
		in = c.pending[0]
		c.pending = c.pending[1:]
	}
}

func (c *Container) notify(subs []*subscription, next, prev *Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			c.mu.Lock()
			c.dispatching = false
			c.pending = nil
			c.mu.Unlock()
			panic(r)
		}
	}()
	for _, s := range subs {
		s.fn(next, prev)
	}
}
