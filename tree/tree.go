package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"sync"
)

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for performing a concurrent top-down
// traversal of a (sub-)tree, starting at (and including) the node given
// to NewWalker.
type Walker[T comparable] struct {
	root *Node[T]
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
//
// If root is nil, NewWalker returns nil, resulting in a NOP traversal:
// Promise() will report ErrEmptyTree.
func NewWalker[T comparable](root *Node[T]) *Walker[T] {
	if root == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, root node = %v", root)
	return &Walker[T]{root: root}
}

// Action is a function type to operate on tree nodes, invoked once per
// node by TopDown. A non-nil result is collected into TopDown's
// Promise(); a non-nil error aborts descending into that node's
// children, but sibling branches keep going.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// Promise is a future synchronisation point returned by TopDown.
// Calling it blocks until the whole traversal has finished, then
// returns every node an Action call produced (in no particular order)
// and the last error any Action call reported, if any.
type Promise[T comparable] func() ([]*Node[T], error)

// topDownResult collects concurrent TopDown output under a mutex.
type topDownResult[T comparable] struct {
	mu      sync.Mutex
	nodes   []*Node[T]
	lasterr error
}

func (r *topDownResult[T]) add(n *Node[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = append(r.nodes, n)
}

func (r *topDownResult[T]) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lasterr = err
}

// TopDown traverses the tree starting at (and including) the root node,
// running action on a node before visiting its children — so an action
// that adds children of its own (building tree structure on the fly)
// has those new children visited in turn. Every node's action runs
// concurrently with its siblings'; a node's children are only
// dispatched once its own action has returned.
//
// If w is nil, TopDown returns a Promise that reports ErrEmptyTree.
func (w *Walker[T]) TopDown(action Action[T]) Promise[T] {
	if w == nil {
		return func() ([]*Node[T], error) { return nil, ErrEmptyTree }
	}
	result := &topDownResult[T]{}
	var wg sync.WaitGroup
	wg.Add(1)
	go topDownWalk(w.root, nil, 0, action, result, &wg)
	return func() ([]*Node[T], error) {
		wg.Wait()
		return result.nodes, result.lasterr
	}
}

func topDownWalk[T comparable](node, parent *Node[T], position int, action Action[T],
	result *topDownResult[T], wg *sync.WaitGroup) {
	//
	defer wg.Done()
	res, err := action(node, parent, position)
	tracer().Debugf("action for node %s returned: %v, err=%v", node, res, err)
	if err != nil {
		result.fail(err)
		return // do not descend further
	}
	if res != nil {
		result.add(res)
	}
	children := node.Children(true)
	for i, ch := range children {
		wg.Add(1)
		go topDownWalk(ch, node, i, action, result, wg)
	}
}
