package memspace

import (
	"github.com/cockroachdb/errors"
)

// BlockList is an ordered sequence of blocks.
//
// Nodes live in an arena slice and link to each other by id, so a block can be
// resized in place through the pointer returned by Get without any aliasing
// between lists. Node ids are 1-based; id 0 terminates the chain, which keeps
// the zero value an empty, ready to use list.
type BlockList struct {
	nodes []node
	spare []int

	head, tail int
	size       int
}

type node struct {
	block Block
	next  int
}

// NewBlockList returns a list holding blocks in the given order.
func NewBlockList(blocks ...Block) *BlockList {
	l := &BlockList{}
	for _, b := range blocks {
		l.PushBack(b)
	}
	return l
}

func (l *BlockList) at(id int) *node {
	return &l.nodes[id-1]
}

// newNode takes a slot from the spare stack, or grows the arena.
func (l *BlockList) newNode(b Block) int {
	if n := len(l.spare); n > 0 {
		id := l.spare[n-1]
		l.spare = l.spare[:n-1]
		*l.at(id) = node{block: b}
		return id
	}
	l.nodes = append(l.nodes, node{block: b})
	return len(l.nodes)
}

func (l *BlockList) freeNode(id int) {
	*l.at(id) = node{}
	l.spare = append(l.spare, id)
}

// nodeAt walks to position index, which must be in [0, size).
func (l *BlockList) nodeAt(index int) int {
	id := l.head
	for i := 0; i < index; i++ {
		id = l.at(id).next
	}
	return id
}

// Len returns the number of blocks in the list.
func (l *BlockList) Len() int {
	return l.size
}

// PushFront inserts b at the head of the list in O(1).
func (l *BlockList) PushFront(b Block) {
	id := l.newNode(b)
	l.at(id).next = l.head
	l.head = id
	if l.tail == 0 {
		l.tail = id
	}
	l.size++
}

// PushBack inserts b at the tail of the list in O(1).
func (l *BlockList) PushBack(b Block) {
	id := l.newNode(b)
	if l.tail == 0 {
		l.head = id
	} else {
		l.at(l.tail).next = id
	}
	l.tail = id
	l.size++
}

// InsertAt inserts b before position index. Valid indices are [0, Len()];
// inserting at Len() appends.
func (l *BlockList) InsertAt(index int, b Block) error {
	if index < 0 || index > l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, size %d", index, l.size)
	}

	switch index {
	case 0:
		l.PushFront(b)
	case l.size:
		l.PushBack(b)
	default:
		prev := l.nodeAt(index - 1)
		// newNode may grow the arena, so hold ids rather than node pointers.
		id := l.newNode(b)
		l.at(id).next = l.at(prev).next
		l.at(prev).next = id
		l.size++
	}
	return nil
}

// Get returns the block at index. The pointer may be used to resize the block
// in place and stays valid until the next insertion into the list.
func (l *BlockList) Get(index int) (*Block, error) {
	if index < 0 || index >= l.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "get %d, size %d", index, l.size)
	}
	return &l.at(l.nodeAt(index)).block, nil
}

// IndexOf returns the position of the first block equal to b, or -1.
func (l *BlockList) IndexOf(b Block) int {
	return l.IndexFunc(func(x Block) bool { return x == b })
}

// IndexFunc returns the position of the first block satisfying f, or -1.
func (l *BlockList) IndexFunc(f func(Block) bool) int {
	index, _ := l.find(f)
	return index
}

// find is IndexFunc that also hands back the matching block for in-place updates.
func (l *BlockList) find(f func(Block) bool) (int, *Block) {
	i := 0
	for id := l.head; id != 0; id = l.at(id).next {
		if n := l.at(id); f(n.block) {
			return i, &n.block
		}
		i++
	}
	return -1, nil
}

// RemoveAt unlinks and returns the block at index.
func (l *BlockList) RemoveAt(index int) (Block, error) {
	if index < 0 || index >= l.size {
		return Block{}, errors.Wrapf(ErrIndexOutOfRange, "remove %d, size %d", index, l.size)
	}

	var id int
	if index == 0 {
		id = l.head
		l.head = l.at(id).next
		if l.head == 0 {
			l.tail = 0
		}
	} else {
		prev := l.nodeAt(index - 1)
		id = l.at(prev).next
		l.at(prev).next = l.at(id).next
		if id == l.tail {
			l.tail = prev
		}
	}

	b := l.at(id).block
	l.freeNode(id)
	l.size--
	return b, nil
}

// Remove removes the first block equal to b.
func (l *BlockList) Remove(b Block) error {
	index := l.IndexOf(b)
	if index < 0 {
		return errors.Wrapf(ErrNotFound, "remove %v", b)
	}
	_, err := l.RemoveAt(index)
	return err
}

// Scan calls f for each block in list order until f returns false.
func (l *BlockList) Scan(f func(i int, b Block) bool) {
	i := 0
	for id := l.head; id != 0; id = l.at(id).next {
		if !f(i, l.at(id).block) {
			return
		}
		i++
	}
}

// Blocks returns a copy of the blocks in list order.
func (l *BlockList) Blocks() []Block {
	blocks := make([]Block, 0, l.size)
	l.Scan(func(_ int, b Block) bool {
		blocks = append(blocks, b)
		return true
	})
	return blocks
}

// Reset empties the list, keeping the arena for reuse.
func (l *BlockList) Reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.spare = l.spare[:0]
	l.head, l.tail, l.size = 0, 0, 0
}

// String renders the list as "[(0 , 10), (10 , 5)]".
func (l *BlockList) String() string {
	buf := make([]byte, 0, 2+l.size*16)
	buf = append(buf, '[')
	l.Scan(func(i int, b Block) bool {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = b.appendTo(buf)
		return true
	})
	return string(append(buf, ']'))
}
