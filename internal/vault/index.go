package vault

import (
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-sync/models"
)

// Index is the in-memory catalogue of every tracked item of one vault,
// organised as a tree keyed by normalized path segments. "Descendants of
// folder X" is an explicit subtree walk, not a prefix scan over a flat list.
type Index struct {
	mu   sync.RWMutex
	root *indexNode
}

type indexNode struct {
	name     string
	item     *models.TrackedItem
	children map[string]*indexNode
}

func newIndexNode(name string) *indexNode {
	return &indexNode{name: name, children: make(map[string]*indexNode)}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{root: newIndexNode("")}
}

// Put inserts or replaces the item at its relative path. Intermediate
// folders are created implicitly as pathless nodes; a later Put for the
// folder itself fills in its item.
func (ix *Index) Put(item models.TrackedItem) {
	rel := NormalizePath(item.RelativePath)
	if rel == "" {
		return
	}
	item.RelativePath = rel

	ix.mu.Lock()
	defer ix.mu.Unlock()

	node := ix.root
	for _, seg := range strings.Split(rel, "/") {
		child, ok := node.children[seg]
		if !ok {
			child = newIndexNode(seg)
			node.children[seg] = child
		}
		node = child
	}
	node.item = &item
}

// Get returns the item at the relative path.
func (ix *Index) Get(rel string) (models.TrackedItem, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	node := ix.lookup(rel)
	if node == nil || node.item == nil {
		return models.TrackedItem{}, false
	}
	return *node.item, true
}

// Remove deletes the item and, when the subtree is empty, prunes the branch.
func (ix *Index) Remove(rel string) {
	rel = NormalizePath(rel)
	if rel == "" {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	segs := strings.Split(rel, "/")
	ix.removeFrom(ix.root, segs)
}

func (ix *Index) removeFrom(node *indexNode, segs []string) bool {
	child, ok := node.children[segs[0]]
	if !ok {
		return false
	}

	if len(segs) == 1 {
		child.item = nil
	} else if !ix.removeFrom(child, segs[1:]) {
		return false
	}

	if child.item == nil && len(child.children) == 0 {
		delete(node.children, segs[0])
	}
	return true
}

// DescendantsOf returns every file item strictly below the given folder, in
// lexicographic path order. The folder's own item, if any, is not included.
// An unknown path yields an empty slice.
func (ix *Index) DescendantsOf(rel string) []models.TrackedItem {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	node := ix.lookup(rel)
	if node == nil {
		return nil
	}

	var out []models.TrackedItem
	collect(node, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].RelativePath < out[j].RelativePath })
	return out
}

func collect(node *indexNode, out *[]models.TrackedItem) {
	for _, child := range node.children {
		if child.item != nil && !child.item.IsDirectory {
			*out = append(*out, *child.item)
		}
		collect(child, out)
	}
}

// HasLocalPresence reports whether the folder itself or any descendant has a
// copy on disk. A folder is "cloud-only" only when this is false for its
// whole subtree.
func (ix *Index) HasLocalPresence(rel string) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	node := ix.lookup(rel)
	if node == nil {
		return false
	}
	return anyLocal(node)
}

func anyLocal(node *indexNode) bool {
	if node.item != nil && node.item.ExistsLocally {
		return true
	}
	for _, child := range node.children {
		if anyLocal(child) {
			return true
		}
	}
	return false
}

// All returns every file item in the index in lexicographic path order.
func (ix *Index) All() []models.TrackedItem {
	return ix.DescendantsOf("")
}

// InvalidateHash clears the cached content hash of the item at rel, if
// present. Called by the watcher when a local write is observed; pending
// metadata is deliberately untouched.
func (ix *Index) InvalidateHash(rel string) {
	rel = NormalizePath(rel)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	node := ix.lookup(rel)
	if node != nil && node.item != nil {
		node.item.LocalContentHash = ""
	}
}

// lookup must be called with at least a read lock held.
func (ix *Index) lookup(rel string) *indexNode {
	rel = NormalizePath(rel)
	if rel == "" {
		return ix.root
	}

	node := ix.root
	for _, seg := range strings.Split(rel, "/") {
		child, ok := node.children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}
