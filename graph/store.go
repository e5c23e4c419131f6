package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bionetkit/interactome/attrs"
	"github.com/bionetkit/interactome/direction"
)

// Sentinel errors for store operations. Lookup misses are reported through
// ok-booleans, never through errors.
var (
	// ErrNodeNotFound indicates a handle or identifier resolved to no live node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a handle resolved to no live edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEndpointMissing indicates an edge upsert referenced a node that has
	// not been upserted yet. Callers must upsert all nodes of a batch before
	// its edges.
	ErrEndpointMissing = errors.New("graph: edge endpoint not in store")
)

// Store is the arena of nodes and edges. It deduplicates nodes by canonical
// identity and edges by unordered endpoint pair, combining attributes and
// direction assertions on every repeated upsert.
//
// The store is single-threaded by design: ingestion is batch-oriented and
// synchronous, and no operation blocks.
type Store struct {
	nodes []nodeSlot
	edges []edgeSlot

	// byID maps canonical node identifiers to handles. It is rebuilt, not
	// patched, after bulk deletions.
	byID map[string]NodeHandle

	// byPair maps unordered endpoint pairs to edge handles.
	byPair map[string]EdgeHandle

	// incident maps node slot indices to the edges touching them.
	incident map[uint32]map[EdgeHandle]struct{}

	tiebreak attrs.Tiebreak
}

type nodeSlot struct {
	node Node
	gen  uint32
	live bool
}

type edgeSlot struct {
	edge Edge
	gen  uint32
	live bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTiebreak sets the numeric tiebreak used when combining attributes.
// The default keeps the maximum.
func WithTiebreak(tb attrs.Tiebreak) StoreOption {
	return func(s *Store) {
		if tb != nil {
			s.tiebreak = tb
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		byID:     make(map[string]NodeHandle),
		byPair:   make(map[string]EdgeHandle),
		incident: make(map[uint32]map[EdgeHandle]struct{}),
		tiebreak: attrs.Max,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pairKey canonicalizes an unordered endpoint pair into one index key.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// UpsertNode creates the node on first sight and combines attributes into it
// on every subsequent upsert of the same canonical identity. Zero-valued
// fields of an existing node (label, kind, taxon) are filled from the new
// record; established values are never overwritten.
func (s *Store) UpsertNode(ident Identity, label string, kind EntityKind, taxon int, am attrs.Map) (NodeHandle, error) {
	if ident.IsZero() {
		return NodeHandle{}, ErrEmptyIdentity
	}
	if h, ok := s.byID[ident.String()]; ok {
		n := s.NodeAt(h)
		merged, err := attrs.CombineMaps(n.Attrs, am, s.tiebreak)
		if err != nil {
			return NodeHandle{}, fmt.Errorf("upsert node %s: %w", ident, err)
		}
		n.Attrs = merged
		if n.Label == "" {
			n.Label = label
		}
		if (n.Kind == "" || n.Kind == EntityUnknown) && kind != "" {
			n.Kind = kind
		}
		if n.Taxon == 0 {
			n.Taxon = taxon
		}
		return h, nil
	}

	idx := uint32(len(s.nodes))
	s.nodes = append(s.nodes, nodeSlot{
		node: Node{Identity: ident, Label: label, Kind: kind, Taxon: taxon, Attrs: attrs.CloneMap(am)},
		gen:  1,
		live: true,
	})
	h := NodeHandle{index: idx, gen: 1}
	s.byID[ident.String()] = h
	s.incident[idx] = make(map[EdgeHandle]struct{})
	return h, nil
}

// UpsertEdge creates the edge between the unordered pair on first sight, or
// folds the update into the existing edge: direction and sign assertions
// accumulate on the direction record and attributes combine key by key.
// Both endpoints must already exist.
func (s *Store) UpsertEdge(idA, idB string, upd EdgeUpdate) (EdgeHandle, error) {
	ha, ok := s.Node(idA)
	if !ok {
		return EdgeHandle{}, fmt.Errorf("%w: %s", ErrEndpointMissing, idA)
	}
	hb, ok := s.Node(idB)
	if !ok {
		return EdgeHandle{}, fmt.Errorf("%w: %s", ErrEndpointMissing, idB)
	}

	eh, ok := s.byPair[pairKey(idA, idB)]
	if !ok {
		rec, err := direction.New(idA, idB)
		if err != nil {
			return EdgeHandle{}, err
		}
		eh = s.insertEdge(Edge{
			Endpoints: [2]string{idA, idB},
			Direction: rec,
			Type:      InteractionUnknown,
			Attrs:     make(attrs.Map),
			handles:   [2]NodeHandle{ha, hb},
		})
	}

	e := s.EdgeAt(eh)
	if upd.Directed || upd.Stimulation || upd.Inhibition {
		e.Direction.SetDirection(idA, idB, upd.Sources)
		if upd.Stimulation {
			e.Direction.SetSign(idA, idB, direction.Positive, upd.Sources)
		}
		if upd.Inhibition {
			e.Direction.SetSign(idA, idB, direction.Negative, upd.Sources)
		}
	} else {
		e.Direction.SetUndirected(upd.Sources)
	}
	if upd.Type != "" && (e.Type == "" || e.Type == InteractionUnknown) {
		e.Type = upd.Type
	}
	if len(upd.Attrs) > 0 {
		merged, err := attrs.CombineMaps(e.Attrs, upd.Attrs, s.tiebreak)
		if err != nil {
			return EdgeHandle{}, fmt.Errorf("upsert edge (%s, %s): %w", idA, idB, err)
		}
		e.Attrs = merged
	}
	return eh, nil
}

// insertEdge places a fully formed edge into the arena and indexes it.
func (s *Store) insertEdge(e Edge) EdgeHandle {
	idx := uint32(len(s.edges))
	s.edges = append(s.edges, edgeSlot{edge: e, gen: 1, live: true})
	eh := EdgeHandle{index: idx, gen: 1}
	s.byPair[pairKey(e.Endpoints[0], e.Endpoints[1])] = eh
	for _, nh := range e.handles {
		s.incident[nh.index][eh] = struct{}{}
	}
	return eh
}

// Node returns the handle for a canonical identifier.
func (s *Store) Node(id string) (NodeHandle, bool) {
	h, ok := s.byID[id]
	return h, ok
}

// NodeAt resolves a handle to its node, or nil when the handle is stale.
func (s *Store) NodeAt(h NodeHandle) *Node {
	if int(h.index) >= len(s.nodes) {
		return nil
	}
	slot := &s.nodes[h.index]
	if !slot.live || slot.gen != h.gen {
		return nil
	}
	return &slot.node
}

// EdgeBetween returns the handle of the edge between the unordered pair.
func (s *Store) EdgeBetween(idA, idB string) (EdgeHandle, bool) {
	h, ok := s.byPair[pairKey(idA, idB)]
	return h, ok
}

// EdgeAt resolves a handle to its edge, or nil when the handle is stale.
func (s *Store) EdgeAt(h EdgeHandle) *Edge {
	if int(h.index) >= len(s.edges) {
		return nil
	}
	slot := &s.edges[h.index]
	if !slot.live || slot.gen != h.gen {
		return nil
	}
	return &slot.edge
}

// Nodes returns handles for all live nodes in creation order.
func (s *Store) Nodes() []NodeHandle {
	out := make([]NodeHandle, 0, len(s.byID))
	for i := range s.nodes {
		if s.nodes[i].live {
			out = append(out, NodeHandle{index: uint32(i), gen: s.nodes[i].gen})
		}
	}
	return out
}

// Edges returns handles for all live edges in creation order.
func (s *Store) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, len(s.byPair))
	for i := range s.edges {
		if s.edges[i].live {
			out = append(out, EdgeHandle{index: uint32(i), gen: s.edges[i].gen})
		}
	}
	return out
}

// EdgesOf returns the edges incident to the node, in creation order.
func (s *Store) EdgesOf(h NodeHandle) []EdgeHandle {
	if s.NodeAt(h) == nil {
		return nil
	}
	out := make([]EdgeHandle, 0, len(s.incident[h.index]))
	for eh := range s.incident[h.index] {
		out = append(out, eh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

// Degree returns the number of edges incident to the node.
func (s *Store) Degree(h NodeHandle) int {
	if s.NodeAt(h) == nil {
		return 0
	}
	return len(s.incident[h.index])
}

// Neighbors returns the nodes sharing an edge with h, in edge creation order.
func (s *Store) Neighbors(h NodeHandle) []NodeHandle {
	var out []NodeHandle
	seen := make(map[uint32]struct{})
	for _, eh := range s.EdgesOf(h) {
		e := s.EdgeAt(eh)
		for _, nh := range e.handles {
			if nh == h {
				continue
			}
			if _, dup := seen[nh.index]; dup {
				continue
			}
			seen[nh.index] = struct{}{}
			out = append(out, nh)
		}
	}
	return out
}

// NodeCount returns the number of live nodes. This can exceed the size of
// the name index while structural duplicates await collapse.
func (s *Store) NodeCount() int {
	count := 0
	for i := range s.nodes {
		if s.nodes[i].live {
			count++
		}
	}
	return count
}

// EdgeCount returns the number of live edges. This can exceed the size of
// the pair index while structural duplicates await collapse.
func (s *Store) EdgeCount() int {
	count := 0
	for i := range s.edges {
		if s.edges[i].live {
			count++
		}
	}
	return count
}

// DeleteEdge removes the edge and unindexes it. The pair index entry is only
// cleared when it points at this edge, so a shadowed duplicate never unhooks
// its survivor.
func (s *Store) DeleteEdge(h EdgeHandle) error {
	e := s.EdgeAt(h)
	if e == nil {
		return ErrEdgeNotFound
	}
	key := pairKey(e.Endpoints[0], e.Endpoints[1])
	if cur, ok := s.byPair[key]; ok && cur == h {
		delete(s.byPair, key)
	}
	for _, nh := range e.handles {
		delete(s.incident[nh.index], h)
	}
	s.edges[h.index].live = false
	s.edges[h.index].gen++
	return nil
}

// DeleteNode removes the node and every edge incident to it. Single
// deletions patch the name index in place; bulk operations go through
// rebuildIndex instead.
func (s *Store) DeleteNode(h NodeHandle) error {
	n := s.NodeAt(h)
	if n == nil {
		return ErrNodeNotFound
	}
	for _, eh := range s.EdgesOf(h) {
		_ = s.DeleteEdge(eh)
	}
	if cur, ok := s.byID[n.ID()]; ok && cur == h {
		delete(s.byID, n.ID())
	}
	delete(s.incident, h.index)
	s.nodes[h.index].live = false
	s.nodes[h.index].gen++
	return nil
}

// SetNodeIdentity renames a node and rewrites its incident edges onto the
// new identifier: endpoint strings, direction records, and the pair index all
// follow the rename. When another node already owns the identity the name
// index keeps pointing at that node and the renamed one becomes a structural
// duplicate for the merge engine to collapse; an edge whose rewritten pair is
// already claimed is shadowed the same way.
func (s *Store) SetNodeIdentity(h NodeHandle, ident Identity) error {
	n := s.NodeAt(h)
	if n == nil {
		return ErrNodeNotFound
	}
	if ident.IsZero() {
		return ErrEmptyIdentity
	}

	for _, eh := range s.EdgesOf(h) {
		e := s.EdgeAt(eh)
		idMap := make(map[string]string, 2)
		endpoints := e.Endpoints
		for i := range e.handles {
			if e.handles[i] == h {
				idMap[e.Endpoints[i]] = ident.String()
				endpoints[i] = ident.String()
			} else {
				idMap[e.Endpoints[i]] = e.Endpoints[i]
			}
		}
		translated, err := e.Direction.Translate(idMap)
		if err != nil {
			return fmt.Errorf("rename node %s: %w", n.ID(), err)
		}
		oldKey := pairKey(e.Endpoints[0], e.Endpoints[1])
		if cur, ok := s.byPair[oldKey]; ok && cur == eh {
			delete(s.byPair, oldKey)
		}
		e.Endpoints = endpoints
		e.Direction = translated
		newKey := pairKey(e.Endpoints[0], e.Endpoints[1])
		if _, claimed := s.byPair[newKey]; !claimed {
			s.byPair[newKey] = eh
		}
	}

	if cur, ok := s.byID[n.ID()]; ok && cur == h {
		delete(s.byID, n.ID())
	}
	n.Identity = ident
	if _, claimed := s.byID[ident.String()]; !claimed {
		s.byID[ident.String()] = h
	}
	return nil
}

// indexNode claims the node's identifier in the name index when it is free.
func (s *Store) indexNode(h NodeHandle) {
	n := s.NodeAt(h)
	if n == nil {
		return
	}
	if _, ok := s.byID[n.ID()]; !ok {
		s.byID[n.ID()] = h
	}
}

// indexEdge claims the edge's endpoint pair in the pair index when it is free.
func (s *Store) indexEdge(h EdgeHandle) {
	e := s.EdgeAt(h)
	if e == nil {
		return
	}
	key := pairKey(e.Endpoints[0], e.Endpoints[1])
	if _, ok := s.byPair[key]; !ok {
		s.byPair[key] = h
	}
}

// DeleteZeroDegreeNodes removes every node with no incident edges and
// rebuilds the name index. Used after bulk edge deletion to keep the node
// set minimal.
func (s *Store) DeleteZeroDegreeNodes() int {
	removed := 0
	for i := range s.nodes {
		if !s.nodes[i].live {
			continue
		}
		if len(s.incident[uint32(i)]) > 0 {
			continue
		}
		delete(s.incident, uint32(i))
		s.nodes[i].live = false
		s.nodes[i].gen++
		removed++
	}
	if removed > 0 {
		s.rebuildIndex()
	}
	return removed
}

// FilterOrganisms removes every node whose taxon is not in the allowed set,
// together with its incident edges, then rebuilds the name index. Returns
// the numbers of removed edges and nodes.
func (s *Store) FilterOrganisms(taxa ...int) (removedEdges, removedNodes int) {
	allowed := make(map[int]struct{}, len(taxa))
	for _, t := range taxa {
		allowed[t] = struct{}{}
	}
	for i := range s.nodes {
		if !s.nodes[i].live {
			continue
		}
		if _, ok := allowed[s.nodes[i].node.Taxon]; ok {
			continue
		}
		h := NodeHandle{index: uint32(i), gen: s.nodes[i].gen}
		for _, eh := range s.EdgesOf(h) {
			_ = s.DeleteEdge(eh)
			removedEdges++
		}
		delete(s.incident, h.index)
		s.nodes[i].live = false
		s.nodes[i].gen++
		removedNodes++
	}
	if removedNodes > 0 {
		s.rebuildIndex()
	}
	return removedEdges, removedNodes
}

// rebuildIndex reconstructs the name index from the live node slots. Bulk
// deletions must go through here rather than patching byID incrementally;
// a stale index after a bulk delete is a correctness bug, not a performance
// concern. The first-created node wins a duplicated identifier, matching the
// merge engine's primary-selection convention.
func (s *Store) rebuildIndex() {
	s.byID = make(map[string]NodeHandle, len(s.nodes))
	for i := range s.nodes {
		if !s.nodes[i].live {
			continue
		}
		id := s.nodes[i].node.ID()
		if _, ok := s.byID[id]; !ok {
			s.byID[id] = NodeHandle{index: uint32(i), gen: s.nodes[i].gen}
		}
	}
}

// Clone returns a deep copy of the store, used to snapshot state before a
// batch so a failed batch can be rolled back.
func (s *Store) Clone() *Store {
	out := &Store{
		nodes:    make([]nodeSlot, len(s.nodes)),
		edges:    make([]edgeSlot, len(s.edges)),
		byID:     make(map[string]NodeHandle, len(s.byID)),
		byPair:   make(map[string]EdgeHandle, len(s.byPair)),
		incident: make(map[uint32]map[EdgeHandle]struct{}, len(s.incident)),
		tiebreak: s.tiebreak,
	}
	for i, slot := range s.nodes {
		slot.node.Attrs = attrs.CloneMap(slot.node.Attrs)
		out.nodes[i] = slot
	}
	for i, slot := range s.edges {
		if slot.edge.Direction != nil {
			slot.edge.Direction = slot.edge.Direction.Clone()
		}
		slot.edge.Attrs = attrs.CloneMap(slot.edge.Attrs)
		out.edges[i] = slot
	}
	for k, v := range s.byID {
		out.byID[k] = v
	}
	for k, v := range s.byPair {
		out.byPair[k] = v
	}
	for k, set := range s.incident {
		cp := make(map[EdgeHandle]struct{}, len(set))
		for eh := range set {
			cp[eh] = struct{}{}
		}
		out.incident[k] = cp
	}
	return out
}

// Restore replaces the store's state with a snapshot previously produced by
// Clone. The snapshot must not be used afterwards.
func (s *Store) Restore(snapshot *Store) {
	s.nodes = snapshot.nodes
	s.edges = snapshot.edges
	s.byID = snapshot.byID
	s.byPair = snapshot.byPair
	s.incident = snapshot.incident
}
