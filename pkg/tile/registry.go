package tile

// Registry is an ordered collection of named layout definitions. Lookups
// resolve to the first entry with a matching name; custom layouts are
// placed ahead of the built-ins, so a custom layout with a built-in's name
// shadows it.
type Registry struct {
	layouts []LayoutDefinition
}

// NewRegistry builds a registry holding the thirteen built-in layouts plus
// any caller-supplied custom definitions, merged as WithCustomLayouts
// does. A custom entry with the same name as a built-in shadows it at
// lookup time without removing the built-in entry.
func NewRegistry(custom ...LayoutDefinition) *Registry {
	r := &Registry{layouts: builtinLayouts()}
	return r.WithCustomLayouts(custom...)
}

// Get returns the layout with the given name and true, or a zero value and
// false if no such layout is registered.
func (r *Registry) Get(name string) (LayoutDefinition, bool) {
	if i := r.GetIndex(name); i >= 0 {
		return r.layouts[i], true
	}
	return LayoutDefinition{}, false
}

// GetMut returns a pointer to the layout with the given name, or nil if no
// such layout is registered. The pointer aliases the registry's own
// storage, so mutator calls through it persist.
func (r *Registry) GetMut(name string) *LayoutDefinition {
	if i := r.GetIndex(name); i >= 0 {
		return &r.layouts[i]
	}
	return nil
}

// GetIndex returns the index of the first layout with the given name, or
// -1 if none matches.
func (r *Registry) GetIndex(name string) int {
	for i, l := range r.layouts {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// WithCustomLayouts places caller-supplied layout definitions, in the
// order given, ahead of the registry's current contents. Lookup is by
// first match, so a custom entry shadows any existing entry of the same
// name (a built-in, or a custom entry from an earlier call), and within
// one call the first of several same-named entries wins. Returns the
// registry for chaining.
func (r *Registry) WithCustomLayouts(custom ...LayoutDefinition) *Registry {
	merged := make([]LayoutDefinition, 0, len(custom)+len(r.layouts))
	merged = append(merged, custom...)
	r.layouts = append(merged, r.layouts...)
	return r
}

// Names returns the registered layout names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.layouts))
	for i, l := range r.layouts {
		out[i] = l.Name
	}
	return out
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	return len(r.layouts)
}

// IsEmpty reports whether the registry holds no layouts.
func (r *Registry) IsEmpty() bool {
	return len(r.layouts) == 0
}

func builtinLayouts() []LayoutDefinition {
	return []LayoutDefinition{
		{
			Name: "EvenHorizontal",
			Columns: Columns{
				Stack: Stack{Split: Axis(SplitVertical)},
			},
		},
		{
			Name: "EvenVertical",
			Columns: Columns{
				Stack: Stack{Split: Axis(SplitHorizontal)},
			},
		},
		{
			Name: "Monocle",
			Columns: Columns{
				Stack: Stack{},
			},
		},
		{
			Name: "Grid",
			Columns: Columns{
				Stack: Stack{Split: Axis(SplitGrid)},
			},
		},
		{
			Name: "MainAndVertStack",
			Columns: Columns{
				Main:  mainColumn(),
				Stack: Stack{Split: Axis(SplitHorizontal)},
			},
		},
		{
			Name: "MainAndHorizontalStack",
			Columns: Columns{
				Main:  mainColumn(),
				Stack: Stack{Split: Axis(SplitVertical)},
			},
		},
		{
			Name:   "RightMainAndVertStack",
			Rotate: South,
			Columns: Columns{
				Main:  mainColumn(),
				Stack: Stack{Split: Axis(SplitHorizontal)},
			},
		},
		{
			Name: "Fibonacci",
			Columns: Columns{
				Main:  mainColumn(),
				Stack: Stack{Split: Axis(SplitFibonacci)},
			},
		},
		{
			Name: "Dwindle",
			Columns: Columns{
				Main:  mainColumn(),
				Stack: Stack{Split: Axis(SplitDwindle)},
			},
		},
		{
			Name: "MainAndDeck",
			Columns: Columns{
				Main:  &Main{Count: 1, Size: Ratio(0.5)},
				Stack: Stack{},
			},
		},
		{
			Name: "CenterMain",
			Columns: Columns{
				Main:        mainColumn(),
				Stack:       Stack{},
				SecondStack: &SecondStack{Split: SplitHorizontal},
			},
		},
		{
			Name: "CenterMainBalanced",
			Columns: Columns{
				Main:        mainColumn(),
				Stack:       Stack{Split: Axis(SplitDwindle)},
				SecondStack: &SecondStack{Split: SplitDwindle},
			},
		},
		{
			Name:    "CenterMainFluid",
			Reserve: ReserveSpace,
			Columns: Columns{
				Main:        mainColumn(),
				Stack:       Stack{},
				SecondStack: &SecondStack{Split: SplitHorizontal},
			},
		},
	}
}

func mainColumn() *Main {
	m := DefaultMain()
	return &m
}
