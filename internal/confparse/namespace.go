package confparse

// DefaultPrefix is the namespace prefix applied by Load.
const DefaultPrefix = "CFG_"

// Namespace is an ordered set of name/value bindings produced from a config
// file. Rebinding a name keeps its original position and replaces its value,
// so iteration order is stable under overrides.
type Namespace struct {
	order  []string
	values map[string]string
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{values: make(map[string]string)}
}

// Set binds name to value, overwriting a previous binding.
func (n *Namespace) Set(name, value string) {
	if _, ok := n.values[name]; !ok {
		n.order = append(n.order, name)
	}
	n.values[name] = value
}

// Get returns the value bound to name and whether it is bound.
func (n *Namespace) Get(name string) (string, bool) {
	v, ok := n.values[name]
	return v, ok
}

// Names returns the bound names in first-binding order.
func (n *Namespace) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Len returns the number of bound names.
func (n *Namespace) Len() int {
	return len(n.values)
}

// Duplicate records a name generated more than once in one document.
type Duplicate struct {
	Name      string
	FirstLine int
	Line      int
}

// Duplicates returns every repeated generated name in emission order. A name
// repeated k times yields k-1 entries, one per overwrite.
func (r *Result) Duplicates() []Duplicate {
	seen := make(map[string]int)
	var dups []Duplicate
	for _, a := range r.Assignments() {
		if first, ok := seen[a.Name]; ok {
			dups = append(dups, Duplicate{Name: a.Name, FirstLine: first, Line: a.Line})
			continue
		}
		seen[a.Name] = a.Line
	}
	return dups
}

// Namespace binds the result's assignments in emission order: top-level
// bindings first, then section bindings, last value winning on repeats.
func (r *Result) Namespace() *Namespace {
	ns := NewNamespace()
	for _, a := range r.Assignments() {
		ns.Set(a.Name, a.Value)
	}
	return ns
}

// Load parses the config file at path and binds it into a namespace under
// the CFG_ prefix. A missing file fails without partial bindings.
func Load(path string) (*Namespace, error) {
	res, err := ParseFile(path, Options{Prefix: DefaultPrefix})
	if err != nil {
		return nil, err
	}
	return res.Namespace(), nil
}
