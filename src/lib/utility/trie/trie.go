package trie

// Node is one edge target in the tree. A node is terminal when the path
// from the root to it spells a whole word.
type Node struct {
	children map[byte]*Node
	terminal bool
}

func newNode() *Node {
	return &Node{children: map[byte]*Node{}}
}

// Child returns the node reached by following c, or nil.
func (n *Node) Child(c byte) *Node {
	if n == nil {
		return nil
	}
	return n.children[c]
}

func (n *Node) Terminal() bool {
	return n != nil && n.terminal
}

type Trie struct {
	root *Node
	size int
}

func New(ss []string) *Trie {
	result := &Trie{root: newNode()}
	for _, s := range ss {
		result.Put(s)
	}
	return result
}

// Root is the entry point for callers that walk the tree one byte at a time.
func (t *Trie) Root() *Node {
	return t.root
}

// Len is the number of distinct words stored.
func (t *Trie) Len() int {
	return t.size
}

// Exist reports whether some stored word starts with s.
func (t *Trie) Exist(s string) bool {
	// definitionally either the empty string always exists or does not exist
	// here we define it as non existent.
	if s == "" {
		return false
	}
	return walk(t.root, []byte(s)) != nil
}

// IsWord reports whether s was stored exactly.
func (t *Trie) IsWord(s string) bool {
	if s == "" {
		return false
	}
	return walk(t.root, []byte(s)).Terminal()
}

// Put stores s. Putting the same word twice is a no-op.
func (t *Trie) Put(s string) {
	if s == "" {
		return
	}
	if insert(t.root, []byte(s)) {
		t.size++
	}
}

// insert returns true when s was not already a word.
func insert(n *Node, s []byte) bool {
	temp := n
	for _, c := range s {
		val, ok := temp.children[c]
		if !ok {
			val = newNode()
			temp.children[c] = val
		}
		temp = val
	}
	fresh := !temp.terminal
	temp.terminal = true
	return fresh
}

func walk(n *Node, s []byte) *Node {
	temp := n
	for _, c := range s {
		temp = temp.Child(c)
		if temp == nil {
			return nil
		}
	}
	return temp
}
