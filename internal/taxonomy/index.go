package taxonomy

// Category is one named keyword set inside an Index.
type Category struct {
	Name     string
	Keywords KeywordSet
}

// Index is an ordered category → keyword-set table for one axis.
//
// Iteration order is part of the contract: categories appear in the order they
// were first added to the Builder (declaration order for built-ins,
// first-appearance order for loaded sources). Classification ties are broken
// by this order. Categories whose keyword set is empty are never present.
//
// An Index is immutable once built and safe for concurrent reads.
type Index struct {
	categories []Category
	byName     map[string]int
}

// Len returns the number of categories.
func (i Index) Len() int { return len(i.categories) }

// Empty reports whether the index has no categories.
func (i Index) Empty() bool { return len(i.categories) == 0 }

// Categories returns the categories in index order.
func (i Index) Categories() []Category {
	out := make([]Category, len(i.categories))
	copy(out, i.categories)
	return out
}

// Names returns the category names in index order.
func (i Index) Names() []string {
	out := make([]string, len(i.categories))
	for n, c := range i.categories {
		out[n] = c.Name
	}
	return out
}

// Lookup returns the keyword set of a category.
func (i Index) Lookup(name string) (KeywordSet, bool) {
	pos, ok := i.byName[name]
	if !ok {
		return KeywordSet{}, false
	}
	return i.categories[pos].Keywords, true
}

// Each calls fn for every category in index order.
func (i Index) Each(fn func(c Category)) {
	for _, c := range i.categories {
		fn(c)
	}
}

// Builder accumulates categories for one Index. Adding keywords to a name
// that already exists merges them and keeps the original position.
// A Builder is owned by a single loader and is not safe for concurrent use.
type Builder struct {
	order []string
	sets  map[string]KeywordSet
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{sets: make(map[string]KeywordSet)}
}

// Add merges keywords into the named category. Blank names are ignored.
func (b *Builder) Add(name string, keywords ...string) *Builder {
	if isBlank(name) {
		return b
	}
	set, exists := b.sets[name]
	if !exists {
		b.order = append(b.order, name)
	}
	b.sets[name] = set.with(keywords...)
	return b
}

// Build produces the immutable Index, dropping categories with no keywords.
func (b *Builder) Build() Index {
	idx := Index{byName: make(map[string]int, len(b.order))}
	for _, name := range b.order {
		set := b.sets[name]
		if set.Empty() {
			continue
		}
		idx.byName[name] = len(idx.categories)
		idx.categories = append(idx.categories, Category{Name: name, Keywords: set})
	}
	return idx
}

// Indexes groups the three axis indexes.
type Indexes struct {
	Domain   Index
	Role     Index
	Industry Index
}

// Axis returns the index for an axis.
func (x Indexes) Axis(a Axis) Index {
	switch a {
	case AxisDomain:
		return x.Domain
	case AxisRole:
		return x.Role
	case AxisIndustry:
		return x.Industry
	default:
		return Index{}
	}
}

// Empty reports whether all three axes are empty.
func (x Indexes) Empty() bool {
	return x.Domain.Empty() && x.Role.Empty() && x.Industry.Empty()
}
