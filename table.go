package chainmap

const (
	// defaultCapacity is the bucket count a fresh table starts with.
	defaultCapacity = 16

	// Grow once size reaches 3/4 of the bucket count.
	loadFactorNum = 3
	loadFactorDen = 4
)

type table[V any] struct {
	chains []chain[V]

	// capMinus1 doubles as the bucket mask; capacity is always a power
	// of two, so hash & capMinus1 == hash % capacity.
	capMinus1 uint64
	growAt    int
	size      int

	hashFunc HashFunc
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// WithCapacity sets the initial bucket count, normalized up to a power
// of two and never below the default. Growth still doubles from there.
func WithCapacity[V any](capacity int) Option[V] {
	return func(t *table[V]) {
		if capacity > defaultCapacity {
			t.allocate(int(NextPowerOf2(uint32(capacity))))
		}
	}
}

func (t *table[V]) init(opts ...Option[V]) {
	t.hashFunc = DefaultHashFunc
	t.allocate(defaultCapacity)

	for _, opt := range opts {
		opt(t)
	}
}

func (t *table[V]) allocate(capacity int) {
	t.chains = make([]chain[V], capacity)
	t.capMinus1 = uint64(capacity - 1)
	t.growAt = capacity * loadFactorNum / loadFactorDen
}

func (t *table[V]) capacity() int {
	return len(t.chains)
}

// bucket returns the chain the key hashes into under the current
// capacity. Indices are only valid until the next grow, since growing
// changes the mask.
func (t *table[V]) bucket(key string) *chain[V] {
	return &t.chains[t.hashFunc(key)&t.capMinus1]
}

func (t *table[V]) set(key string, value V) {
	if created := t.bucket(key).insert(key, value); created {
		t.size++
		if t.size >= t.growAt {
			t.grow()
		}
	}
}

func (t *table[V]) get(key string) (V, bool) {
	return t.bucket(key).get(key)
}

func (t *table[V]) has(key string) bool {
	return t.bucket(key).has(key)
}

func (t *table[V]) delete(key string) bool {
	if removed := t.bucket(key).remove(key); removed {
		t.size--
		return true
	}

	return false
}

// grow doubles the bucket count and reinserts every entry against the
// new mask. Old chains are discarded wholesale; a new bucket receives
// its entries in the old bucket-then-chain order.
func (t *table[V]) grow() {
	old := t.chains
	t.allocate(len(old) * 2)

	for i := range old {
		for n := old[i].head; n != nil; n = n.next {
			t.bucket(n.key).insert(n.key, n.value)
		}
	}
}

func (t *table[V]) clearAll() {
	for i := range t.chains {
		t.chains[i].clear()
	}

	t.size = 0
}

func (t *table[V]) keys() []string {
	dst := make([]string, 0, t.size)
	for i := range t.chains {
		dst = t.chains[i].appendKeys(dst)
	}

	return dst
}

func (t *table[V]) values() []V {
	dst := make([]V, 0, t.size)
	for i := range t.chains {
		dst = t.chains[i].appendValues(dst)
	}

	return dst
}

func (t *table[V]) entries() []Entry[V] {
	dst := make([]Entry[V], 0, t.size)
	for i := range t.chains {
		dst = t.chains[i].appendEntries(dst)
	}

	return dst
}
