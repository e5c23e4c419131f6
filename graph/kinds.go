package graph

import "strings"

// EntityKind classifies a node by the kind of biological entity it
// represents.
type EntityKind string

const (
	EntityProtein       EntityKind = "protein"
	EntityComplex       EntityKind = "complex"
	EntityMiRNA         EntityKind = "mirna"
	EntityLncRNA        EntityKind = "lncrna"
	EntityDrug          EntityKind = "drug"
	EntitySmallMolecule EntityKind = "small_molecule"
	EntityUnknown       EntityKind = "unknown"
)

// InteractionType classifies an edge by the kind of relationship it
// represents.
type InteractionType string

const (
	InteractionPPI             InteractionType = "ppi"
	InteractionTFTarget        InteractionType = "tf_target"
	InteractionEnzymeSubstrate InteractionType = "enzyme_substrate"
	InteractionMiRNATarget     InteractionType = "mirna_target"
	InteractionLigandReceptor  InteractionType = "ligand_receptor"
	InteractionUnknown         InteractionType = "unknown"
)

// KindAliases normalizes the heterogeneous entity-kind labels emitted by
// resource parsers ("Protein", "gene", "microRNA", ...) to canonical kinds.
// Lookup is case-insensitive. Tables are injected rather than registered in
// a package global so every adapter sees exactly the aliases it was built
// with.
type KindAliases map[string]EntityKind

// DefaultKindAliases returns the alias table covering the labels the known
// resources emit.
func DefaultKindAliases() KindAliases {
	return KindAliases{
		"protein":        EntityProtein,
		"gene":           EntityProtein,
		"genesymbol":     EntityProtein,
		"complex":        EntityComplex,
		"protein family": EntityComplex,
		"mirna":          EntityMiRNA,
		"microrna":       EntityMiRNA,
		"lncrna":         EntityLncRNA,
		"drug":           EntityDrug,
		"chemical":       EntitySmallMolecule,
		"small molecule": EntitySmallMolecule,
		"metabolite":     EntitySmallMolecule,
	}
}

// Normalize resolves a raw label to a canonical kind. Canonical kind names
// always resolve to themselves.
func (ka KindAliases) Normalize(label string) (EntityKind, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return EntityUnknown, false
	}
	if kind, ok := ka[key]; ok {
		return kind, true
	}
	switch EntityKind(key) {
	case EntityProtein, EntityComplex, EntityMiRNA, EntityLncRNA,
		EntityDrug, EntitySmallMolecule, EntityUnknown:
		return EntityKind(key), true
	}
	return EntityUnknown, false
}
