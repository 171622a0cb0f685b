package chainmap

// node is a single key/value entry in a bucket chain. Nodes are owned
// exclusively by their chain and never shared between buckets.
type node[V any] struct {
	key   string
	value V

	next *node[V]
	prev *node[V]
}

// chain is the ordered list of entries sharing one bucket.
// head and tail are both nil iff size is 0; for a non-empty chain
// head.prev == nil, tail.next == nil, and the links form a single
// linear path with no cycles.
type chain[V any] struct {
	head *node[V]
	tail *node[V]
	size int
}

// insert overwrites the value in place if key is already present,
// otherwise appends a new entry at the tail.
// Reports whether a new entry was created.
func (c *chain[V]) insert(key string, value V) bool {
	if n := c.find(key); n != nil {
		n.value = value
		return false
	}

	n := &node[V]{key: key, value: value, prev: c.tail}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++

	return true
}

// find scans from head and returns the first entry whose key matches
// exactly, or nil.
func (c *chain[V]) find(key string) *node[V] {
	for n := c.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}

func (c *chain[V]) get(key string) (V, bool) {
	if n := c.find(key); n != nil {
		return n.value, true
	}

	var zero V
	return zero, false
}

func (c *chain[V]) has(key string) bool {
	return c.find(key) != nil
}

// remove unlinks the entry for key, reattaching its neighbours so the
// chain stays one linear path. Reports whether an entry was removed.
func (c *chain[V]) remove(key string) bool {
	n := c.find(key)
	if n == nil {
		return false
	}

	if n.prev == nil {
		c.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		c.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.next, n.prev = nil, nil
	c.size--

	return true
}

// clear drops every entry, severing links so a detached node can't keep
// the rest of the chain reachable.
func (c *chain[V]) clear() {
	for n := c.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}

	c.head, c.tail = nil, nil
	c.size = 0
}

func (c *chain[V]) appendKeys(dst []string) []string {
	for n := c.head; n != nil; n = n.next {
		dst = append(dst, n.key)
	}

	return dst
}

func (c *chain[V]) appendValues(dst []V) []V {
	for n := c.head; n != nil; n = n.next {
		dst = append(dst, n.value)
	}

	return dst
}

func (c *chain[V]) appendEntries(dst []Entry[V]) []Entry[V] {
	for n := c.head; n != nil; n = n.next {
		dst = append(dst, Entry[V]{Key: n.key, Value: n.value})
	}

	return dst
}
