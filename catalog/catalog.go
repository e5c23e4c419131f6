package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Category classifies the kind of evidence a resource curates.
type Category string

const (
	// CategoryActivityFlow is directed, signed signaling (stimulation or
	// inhibition between molecules).
	CategoryActivityFlow Category = "activity_flow"

	// CategoryEnzymeSubstrate is enzyme-substrate relationships such as
	// phosphorylation events.
	CategoryEnzymeSubstrate Category = "enzyme_substrate"

	// CategoryTranscription is transcription factor to target gene
	// regulation.
	CategoryTranscription Category = "transcription"

	// CategoryMiRNATarget is post-transcriptional regulation by miRNA.
	CategoryMiRNATarget Category = "mirna_target"

	// CategoryLigandReceptor is intercellular ligand-receptor signaling.
	CategoryLigandReceptor Category = "ligand_receptor"

	// CategoryUndirectedPPI is physical interaction evidence carrying no
	// direction.
	CategoryUndirectedPPI Category = "undirected_ppi"

	// CategorySmallMolecule is small molecule or drug to protein
	// relationships.
	CategorySmallMolecule Category = "small_molecule_protein"
)

// knownCategories validates category names arriving from YAML files.
var knownCategories = map[Category]struct{}{
	CategoryActivityFlow:    {},
	CategoryEnzymeSubstrate: {},
	CategoryTranscription:   {},
	CategoryMiRNATarget:     {},
	CategoryLigandReceptor:  {},
	CategoryUndirectedPPI:   {},
	CategorySmallMolecule:   {},
}

// Catalog maps resource names to their categories. Construct one with New,
// Default, or Load and treat it as immutable afterwards.
type Catalog struct {
	categories map[string]Category
}

// New builds a catalog from an explicit table. The table is copied.
func New(categories map[string]Category) *Catalog {
	cp := make(map[string]Category, len(categories))
	for name, cat := range categories {
		cp[name] = cat
	}
	return &Catalog{categories: cp}
}

// Default returns the built-in table of well-known interaction resources.
func Default() *Catalog {
	return New(map[string]Category{
		"SIGNOR":       CategoryActivityFlow,
		"SignaLink":    CategoryActivityFlow,
		"SPIKE":        CategoryActivityFlow,
		"KEGG":         CategoryActivityFlow,
		"Wang":         CategoryActivityFlow,
		"PhosphoSite":  CategoryEnzymeSubstrate,
		"HPRD-phos":    CategoryEnzymeSubstrate,
		"DEPOD":        CategoryEnzymeSubstrate,
		"MIMP":         CategoryEnzymeSubstrate,
		"TRRUST":       CategoryTranscription,
		"DoRothEA":     CategoryTranscription,
		"HTRIdb":       CategoryTranscription,
		"ORegAnno":     CategoryTranscription,
		"miRTarBase":   CategoryMiRNATarget,
		"miRecords":    CategoryMiRNATarget,
		"miR2Disease":  CategoryMiRNATarget,
		"Guide2Pharma": CategoryLigandReceptor,
		"CellPhoneDB":  CategoryLigandReceptor,
		"Ramilowski":   CategoryLigandReceptor,
		"BioGRID":      CategoryUndirectedPPI,
		"IntAct":       CategoryUndirectedPPI,
		"HPRD":         CategoryUndirectedPPI,
		"MPPI":         CategoryUndirectedPPI,
		"DIP":          CategoryUndirectedPPI,
		"DrugBank":     CategorySmallMolecule,
		"DGIdb":        CategorySmallMolecule,
	})
}

// catalogFile is the YAML schema for catalog files.
type catalogFile struct {
	Categories map[string]string `yaml:"categories"`
}

// Load reads a catalog from a YAML file. Unknown category names are an
// error: a typo in the table silently miscategorizing a resource is worse
// than failing to start.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog file defines no categories")
	}
	categories := make(map[string]Category, len(file.Categories))
	for name, raw := range file.Categories {
		cat := Category(raw)
		if _, ok := knownCategories[cat]; !ok {
			return nil, fmt.Errorf("resource %q: unknown category %q", name, raw)
		}
		categories[name] = cat
	}
	return &Catalog{categories: categories}, nil
}

// Category returns the category of a resource.
func (c *Catalog) Category(resource string) (Category, bool) {
	cat, ok := c.categories[resource]
	return cat, ok
}

// Resources returns the resources of a category in lexical order.
func (c *Catalog) Resources(cat Category) []string {
	var out []string
	for name, rc := range c.categories {
		if rc == cat {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// CategoriesOf returns the distinct categories of the given resources in
// lexical order. Resources absent from the catalog contribute nothing.
func (c *Catalog) CategoriesOf(resources []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range resources {
		cat, ok := c.categories[name]
		if !ok {
			continue
		}
		if _, dup := seen[string(cat)]; dup {
			continue
		}
		seen[string(cat)] = struct{}{}
		out = append(out, string(cat))
	}
	sort.Strings(out)
	return out
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int { return len(c.categories) }
