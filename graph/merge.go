package graph

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bionetkit/interactome/attrs"
)

// Merger collapses structural duplicates in a store: nodes sharing a
// canonical identity and the edges their redirection produces. Merge
// operations mutate the store in place and are atomic from the caller's
// perspective at the batch level, not per merge.
type Merger struct {
	store  *Store
	logger *slog.Logger
}

// NewMerger creates a merger over the store. A nil logger falls back to the
// default slog logger.
func NewMerger(store *Store, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{store: store, logger: logger}
}

// CollapseDuplicatesByID finds groups of live nodes sharing the same
// canonical identifier and merges each group into its primary node. The
// primary is the node with the lowest creation order; ties cannot arise
// because creation order is total. Returns the number of nodes merged away.
func (m *Merger) CollapseDuplicatesByID() (int, error) {
	groups := make(map[string][]NodeHandle)
	for _, h := range m.store.Nodes() {
		id := m.store.NodeAt(h).ID()
		groups[id] = append(groups[id], h)
	}

	ids := make([]string, 0, len(groups))
	for id, group := range groups {
		if len(group) > 1 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	merged := 0
	for _, id := range ids {
		group := groups[id]
		// Nodes() yields creation order, so the primary is first.
		if err := m.MergeNodes(group, group[0]); err != nil {
			return merged, fmt.Errorf("collapse %s: %w", id, err)
		}
		merged += len(group) - 1
		m.logger.Debug("collapsed duplicate nodes", "id", id, "count", len(group))
	}
	return merged, nil
}

// MergeNodes merges every node of the group into the primary: attribute
// maps combine through the attribute combinator, incident edges redirect to
// the primary endpoint, and the non-primary nodes are deleted. A zero
// primary selects the group member with the lowest creation order.
func (m *Merger) MergeNodes(group []NodeHandle, primary NodeHandle) error {
	if primary.IsZero() {
		for _, h := range group {
			if primary.IsZero() || h.index < primary.index {
				primary = h
			}
		}
	}
	target := m.store.NodeAt(primary)
	if target == nil {
		return ErrNodeNotFound
	}

	for _, h := range group {
		if h == primary {
			continue
		}
		n := m.store.NodeAt(h)
		if n == nil {
			return ErrNodeNotFound
		}
		merged, err := attrs.CombineMaps(target.Attrs, n.Attrs, m.store.tiebreak)
		if err != nil {
			return fmt.Errorf("merge node %s: %w", n.ID(), err)
		}
		target.Attrs = merged
		if target.Label == "" {
			target.Label = n.Label
		}
		if (target.Kind == "" || target.Kind == EntityUnknown) && n.Kind != "" {
			target.Kind = n.Kind
		}
		if target.Taxon == 0 {
			target.Taxon = n.Taxon
		}
		if err := m.CopyEdges([]NodeHandle{h}, primary, true); err != nil {
			return err
		}
		if err := m.store.DeleteNode(h); err != nil {
			return err
		}
		// The deleted duplicate may have owned the shared identifier.
		m.store.indexNode(primary)
	}
	return nil
}

// CopyEdges redirects every edge incident to a source node onto the target
// endpoint. When an edge already exists between the redirected pair, the
// direction record translates onto the new identifiers and merges into the
// existing edge along with the other attributes; otherwise a new edge is
// created carrying the translated record. With move set the originals are
// deleted afterwards; without it they are retained.
//
// Redirections that would produce a self-loop are skipped (and deleted when
// moving) rather than materialized.
func (m *Merger) CopyEdges(sources []NodeHandle, target NodeHandle, move bool) error {
	targetNode := m.store.NodeAt(target)
	if targetNode == nil {
		return ErrNodeNotFound
	}

	for _, src := range sources {
		if src == target {
			continue
		}
		if m.store.NodeAt(src) == nil {
			return ErrNodeNotFound
		}
		for _, eh := range m.store.EdgesOf(src) {
			e := m.store.EdgeAt(eh)
			if e == nil {
				continue
			}
			srcPos := 0
			if e.handles[1] == src {
				srcPos = 1
			}
			otherID := e.Endpoints[1-srcPos]
			otherH := e.handles[1-srcPos]

			if otherH == target || otherH == src || otherID == targetNode.ID() {
				// Redirection collapses the pair into a self-loop.
				if move {
					_ = m.store.DeleteEdge(eh)
				}
				continue
			}

			idMap := map[string]string{
				e.Endpoints[srcPos]: targetNode.ID(),
				otherID:             otherID,
			}
			translated, err := e.Direction.Translate(idMap)
			if err != nil {
				return fmt.Errorf("redirect edge (%s, %s): %w", e.Endpoints[0], e.Endpoints[1], err)
			}

			if existing, ok := m.edgeBetweenHandles(target, otherH, eh); ok {
				ex := m.store.EdgeAt(existing)
				if err := ex.Direction.Merge(translated); err != nil {
					return fmt.Errorf("merge edge (%s, %s): %w", targetNode.ID(), otherID, err)
				}
				merged, err := attrs.CombineMaps(ex.Attrs, e.Attrs, m.store.tiebreak)
				if err != nil {
					return fmt.Errorf("merge edge (%s, %s): %w", targetNode.ID(), otherID, err)
				}
				ex.Attrs = merged
				if ex.Type == "" || ex.Type == InteractionUnknown {
					ex.Type = e.Type
				}
				if move {
					_ = m.store.DeleteEdge(eh)
					// The deleted original may have owned the pair index slot.
					m.store.indexEdge(existing)
				}
				continue
			}

			endpoints := [2]string{targetNode.ID(), otherID}
			handles := [2]NodeHandle{target, otherH}
			if srcPos == 1 {
				endpoints = [2]string{otherID, targetNode.ID()}
				handles = [2]NodeHandle{otherH, target}
			}
			m.store.insertEdge(Edge{
				Endpoints: endpoints,
				Direction: translated,
				Type:      e.Type,
				Attrs:     attrs.CloneMap(e.Attrs),
				handles:   handles,
			})
			if move {
				_ = m.store.DeleteEdge(eh)
			}
		}
	}
	return nil
}

// edgeBetweenHandles finds a live edge joining the two nodes by walking a's
// incident set. Matching by handle rather than the pair index keeps the
// lookup correct while shadowed duplicates are still being folded; skip
// excludes the edge currently being redirected.
func (m *Merger) edgeBetweenHandles(a, b NodeHandle, skip EdgeHandle) (EdgeHandle, bool) {
	for _, eh := range m.store.EdgesOf(a) {
		if eh == skip {
			continue
		}
		e := m.store.EdgeAt(eh)
		if e == nil {
			continue
		}
		if e.handles[0] == b || e.handles[1] == b {
			return eh, true
		}
	}
	return EdgeHandle{}, false
}
