package voronoi

// Красно-черное дерево событий. Узлы дополнительно связаны в список
// (previous/next) в порядке обхода, поэтому минимум и соседи доступны сразу.
type rbt struct {
	root  *rbtNode
	first *rbtNode
	size  int
}

type rbtNode struct {
	value    *event
	left     *rbtNode
	right    *rbtNode
	parent   *rbtNode
	previous *rbtNode
	next     *rbtNode
	red      bool
}

// insert ставит событие на его место в порядке less.
func (t *rbt) insert(e *event) {
	var predecessor *rbtNode
	node := t.root
	for node != nil {
		if e.less(node.value) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	t.insertSuccessor(predecessor, e)
}

// insertSuccessor вставляет значение сразу после node (nil - в начало).
func (t *rbt) insertSuccessor(node *rbtNode, value *event) {
	successor := &rbtNode{value: value, red: true}
	value.node = successor
	t.size++

	var parent *rbtNode
	switch {
	case node != nil:
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			// самый левый узел правого поддерева
			node = t.leftmost(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	case t.root != nil:
		node = t.leftmost(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
	default:
		t.root = successor
	}
	successor.parent = parent
	if successor.previous == nil {
		t.first = successor
	}

	node = successor
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if uncle != nil && uncle.red {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if uncle != nil && uncle.red {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

func (t *rbt) removeNode(node *rbtNode) {
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	} else {
		t.first = node.next
	}
	node.next, node.previous = nil, nil
	node.value.node = nil
	t.size--

	parent := node.parent
	left, right := node.left, node.right
	var next *rbtNode
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = t.leftmost(right)
	}
	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nil && right != nil {
		isRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		isRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if isRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}

	for node != t.root {
		var sibling *rbtNode
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRedNode(sibling.left) || isRedNode(sibling.right) {
				if !isRedNode(sibling.right) {
					sibling.left.red, sibling.red = false, true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red, parent.red = parent.red, false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRedNode(sibling.left) || isRedNode(sibling.right) {
				if !isRedNode(sibling.left) {
					sibling.right.red, sibling.red = false, true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red, parent.red = parent.red, false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func isRedNode(n *rbtNode) bool { return n != nil && n.red }

func (t *rbt) rotateLeft(p *rbtNode) {
	q := p.right
	t.replaceChild(p, q)
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbt) rotateRight(p *rbtNode) {
	q := p.left
	t.replaceChild(p, q)
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

// replaceChild ставит q на место p у родителя p, p становится ребенком q.
func (t *rbt) replaceChild(p, q *rbtNode) {
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
}

func (t *rbt) leftmost(node *rbtNode) *rbtNode {
	for node.left != nil {
		node = node.left
	}
	return node
}
