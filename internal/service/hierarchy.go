package service

import (
	"context"
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/strata/internal/cache"
	"github.com/emrgen/strata/internal/model"
	"github.com/emrgen/strata/internal/store"
	"github.com/sirupsen/logrus"
)

// DefaultMaxNodes bounds the total number of nodes a single traversal may
// visit. Depth alone does not bound the cost of walking a wide or cyclic
// graph.
const DefaultMaxNodes = 100000

// NewHierarchyService creates a new HierarchyService.
func NewHierarchyService(store store.Store, cache cache.TreeCache) *HierarchyService {
	return &HierarchyService{
		store:    store,
		cache:    cache,
		maxNodes: DefaultMaxNodes,
	}
}

// HierarchyService builds hierarchical views rooted at an object, safely in
// the presence of arbitrary, possibly cyclic, link graphs.
type HierarchyService struct {
	store    store.Store
	cache    cache.TreeCache
	maxNodes int
}

// Node is one node of a built tree: the object fields plus the labeled
// children below it. Depth is populated only for depth-bounded traversals.
type Node struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Version   int64   `json:"version"`
	TypeID    string  `json:"type_id"`
	CreatedOn string  `json:"created_on"`
	CreatedBy string  `json:"created_by"`
	Children  []*Edge `json:"children"`
	Depth     *int    `json:"depth,omitempty"`
}

// Edge pairs a child subtree with the relationship label on the link
// leading to it.
type Edge struct {
	Relationship string `json:"relationship"`
	Object       *Node  `json:"object"`
}

// frame is one pending node of the iterative walk. path holds the ids on the
// root-to-parent chain; frames never mutate it after creation, so sibling
// frames may share one set.
type frame struct {
	objectID     int64
	relationship string
	depth        int
	parent       *Node
	path         mapset.Set[int64]
}

// BuildTree builds the tree rooted at rootID. A nil maxDepth walks until the
// graph runs out; maxDepth of 0 returns the bare root. Traversal is an
// explicit stack walk rather than recursion, so graph depth never translates
// into native stack growth.
//
// Cycle rule: an edge pointing back to any object already on the current
// root-to-node path is pruned. The same object may still appear in two
// sibling branches; the visited set is per branch, not global.
func (h *HierarchyService) BuildTree(ctx context.Context, rootID int64, maxDepth *int) (*Node, error) {
	bounded := maxDepth != nil
	if bounded && *maxDepth < 0 {
		return nil, invalidf("depth must be non-negative")
	}

	if cached := h.cachedTree(ctx, rootID, maxDepth); cached != nil {
		return cached, nil
	}

	if _, err := h.store.GetObject(ctx, rootID); err != nil {
		return nil, storeError(err, objectRef(rootID))
	}

	var root *Node
	visited := 0
	stack := []*frame{{
		objectID: rootID,
		depth:    0,
		path:     mapset.NewSet[int64](),
	}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj, err := h.store.GetObject(ctx, f.objectID)
		if err != nil {
			// an edge may outlive its endpoint; prune the branch
			if isMissing(err) {
				continue
			}
			return nil, err
		}

		visited++
		if visited > h.maxNodes {
			return nil, ErrTreeTooLarge
		}

		node := newNode(obj, f.depth, bounded)
		if f.parent == nil {
			root = node
		} else {
			f.parent.Children = append(f.parent.Children, &Edge{
				Relationship: f.relationship,
				Object:       node,
			})
		}

		if bounded && f.depth >= *maxDepth {
			continue
		}

		links, err := h.store.ListLinks(ctx, store.LinkFilter{ParentID: &f.objectID})
		if err != nil {
			return nil, err
		}

		path := f.path.Clone()
		path.Add(f.objectID)

		// push in reverse so children pop, and attach, in link order
		for i := len(links) - 1; i >= 0; i-- {
			link := links[i]
			if path.Contains(link.ChildID) {
				continue
			}
			stack = append(stack, &frame{
				objectID:     link.ChildID,
				relationship: link.RName,
				depth:        f.depth + 1,
				parent:       node,
				path:         path,
			})
		}
	}

	h.storeTree(ctx, rootID, maxDepth, root)

	return root, nil
}

func newNode(obj *model.Object, depth int, bounded bool) *Node {
	node := &Node{
		ID:        obj.ID,
		Name:      obj.Name,
		Version:   obj.Version,
		TypeID:    obj.TypeID,
		CreatedOn: obj.CreatedOn,
		CreatedBy: obj.CreatedBy,
		Children:  []*Edge{},
	}
	if bounded {
		d := depth
		node.Depth = &d
	}

	return node
}

func (h *HierarchyService) cachedTree(ctx context.Context, rootID int64, maxDepth *int) *Node {
	data, err := h.cache.GetTree(ctx, rootID, cacheDepth(maxDepth))
	if err != nil {
		logrus.Warnf("tree cache read failed for object %d: %v", rootID, err)
		return nil
	}
	if data == nil {
		return nil
	}

	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		logrus.Warnf("tree cache entry corrupted for object %d: %v", rootID, err)
		return nil
	}

	return &node
}

func (h *HierarchyService) storeTree(ctx context.Context, rootID int64, maxDepth *int, root *Node) {
	data, err := json.Marshal(root)
	if err != nil {
		logrus.Warnf("tree cache encode failed for object %d: %v", rootID, err)
		return
	}

	if err := h.cache.SetTree(ctx, rootID, cacheDepth(maxDepth), data); err != nil {
		logrus.Warnf("tree cache write failed for object %d: %v", rootID, err)
	}
}

// cacheDepth folds the unbounded case into a sentinel cache key segment.
func cacheDepth(maxDepth *int) int {
	if maxDepth == nil {
		return -1
	}
	return *maxDepth
}
