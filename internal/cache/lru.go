package cache

// node is an entry in the recency list. It stores its key so eviction can
// delete it from the map.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// list is a doubly-linked recency list. The head is the most recently used
// entry, the tail the least recently used one.
// The list is not thread-safe; Cache holds its mutex around every call.
type list[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	len  int
}

func (l *list[K, V]) pushFront(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	l.linkFront(n)
	return n
}

func (l *list[K, V]) moveToFront(n *node[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

func (l *list[K, V]) back() *node[K, V] {
	return l.tail
}

func (l *list[K, V]) remove(n *node[K, V]) {
	if n != nil {
		l.unlink(n)
	}
}

func (l *list[K, V]) linkFront(n *node[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *list[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}
