package shadercache

// node is an entry in the recency list of one shard.
type node[V any] struct {
	key        string
	value      V
	prev, next *node[V]
}

// recency is a doubly linked list, most recently used at head.
// Not safe for concurrent use; the owning shard holds the lock.
type recency[V any] struct {
	head, tail *node[V]
	n          int
}

func (l *recency[V]) pushFront(nd *node[V]) {
	nd.prev = nil
	nd.next = l.head
	if l.head != nil {
		l.head.prev = nd
	}
	l.head = nd
	if l.tail == nil {
		l.tail = nd
	}
	l.n++
}

func (l *recency[V]) moveToFront(nd *node[V]) {
	if nd == l.head {
		return
	}
	l.unlink(nd)
	l.pushFront(nd)
}

// popBack removes the least recently used node, or returns nil.
func (l *recency[V]) popBack() *node[V] {
	nd := l.tail
	if nd != nil {
		l.unlink(nd)
	}
	return nd
}

func (l *recency[V]) unlink(nd *node[V]) {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev, nd.next = nil, nil
	l.n--
}
