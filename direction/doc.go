// Package direction tracks per-edge directionality, effect sign, and
// provenance across the resources that assert an interaction.
//
// A Record belongs to exactly one edge and canonicalizes its node pair in
// first-seen order. That order defines three direction keys: straight
// (first node to second), reverse, and undirected. Each key owns the set of
// resources asserting it; a key counts as asserted exactly when its source
// set is non-empty, so the invariant cannot drift. Signed assertions
// (stimulation or inhibition) imply a directed assertion for the same
// oriented pair.
//
// Majority queries resolve conflicts between resources by source count.
// Ties are valid terminal states, not errors: MajorityDirection returns
// KeyNone on a directional tie and MajoritySign reports both signs true on a
// sign tie, so downstream consumers must handle both outcomes explicitly.
//
// Merge unions two records describing the same unordered node pair.
// Direction sources are remapped across orientations, but sign sources are
// unioned only when both records share the same canonical orientation; the
// asymmetry is deliberate and mirrors the upstream curation behavior.
package direction
