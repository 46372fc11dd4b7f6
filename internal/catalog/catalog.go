package catalog

// Resource is a purchasable input with a per-unit acquisition price and
// per-unit cargo volume.
type Resource struct {
	Name       string
	UnitPrice  float64
	UnitVolume float64
}

// Yield gives the quantity of one output produced per unit of a resource.
type Yield struct {
	Resource string
	PerUnit  float64
}

// Requirement is a minimum quantity of an output that a plan must produce.
type Requirement struct {
	Output      string
	MinQuantity float64
}

// Variable names reserved for the objective-linking aggregates in the built
// model. Resources may not take these names.
const (
	AggregatePriceName  = "aggregate_price"
	AggregateVolumeName = "aggregate_volume"
)

// Catalog accumulates resources, yield edges and output requirements ahead of
// a solve. Registration is last-write-wins: re-registering a resource replaces
// its price and volume, and re-registering a (resource, output) pair replaces
// the yield coefficient. Insertion order is preserved so that model
// construction is deterministic.
//
// A Catalog is not safe for concurrent mutation; take a Snapshot and hand that
// to concurrent solves instead.
type Catalog struct {
	resources    map[string]Resource
	order        []string
	yields       map[string]map[string]float64 // output -> resource -> per-unit yield
	requirements map[string]float64
	reqOrder     []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		resources:    make(map[string]Resource),
		yields:       make(map[string]map[string]float64),
		requirements: make(map[string]float64),
	}
}

// RegisterResource adds a purchasable resource. Price and volume must be
// non-negative. Registering an existing name silently replaces its price and
// volume but keeps its original position and yield edges.
func (c *Catalog) RegisterResource(name string, unitPrice, unitVolume float64) error {
	if name == "" {
		return &InvalidResourceError{Name: name, Reason: "name must not be empty"}
	}
	if name == AggregatePriceName || name == AggregateVolumeName {
		return &InvalidResourceError{Name: name, Reason: "name is reserved"}
	}
	if unitPrice < 0 {
		return &InvalidResourceError{Name: name, Reason: "unit price must be >= 0"}
	}
	if unitVolume < 0 {
		return &InvalidResourceError{Name: name, Reason: "unit volume must be >= 0"}
	}
	if _, exists := c.resources[name]; !exists {
		c.order = append(c.order, name)
	}
	c.resources[name] = Resource{Name: name, UnitPrice: unitPrice, UnitVolume: unitVolume}
	return nil
}

// RegisterYield records that one unit of resource produces perUnit units of
// output when processed. The resource must already be registered. Registering
// the same (resource, output) pair again replaces the coefficient.
func (c *Catalog) RegisterYield(resource, output string, perUnit float64) error {
	if _, ok := c.resources[resource]; !ok {
		return &UnknownResourceError{Name: resource}
	}
	if output == "" {
		return &InvalidYieldError{Resource: resource, Output: output, PerUnit: perUnit}
	}
	if perUnit < 0 {
		return &InvalidYieldError{Resource: resource, Output: output, PerUnit: perUnit}
	}
	m, ok := c.yields[output]
	if !ok {
		m = make(map[string]float64)
		c.yields[output] = m
	}
	m[resource] = perUnit
	return nil
}

// SetRequirement records a minimum quantity of output that a plan must
// produce. Setting the same output again replaces the quantity.
func (c *Catalog) SetRequirement(output string, minQuantity float64) error {
	if output == "" {
		return &InvalidRequirementError{Output: output, Quantity: minQuantity, Reason: "output name must not be empty"}
	}
	if minQuantity < 0 {
		return &InvalidRequirementError{Output: output, Quantity: minQuantity, Reason: "quantity must be >= 0"}
	}
	if _, exists := c.requirements[output]; !exists {
		c.reqOrder = append(c.reqOrder, output)
	}
	c.requirements[output] = minQuantity
	return nil
}

// Snapshot freezes the current catalog state into an immutable copy. Later
// mutation of the catalog never affects a snapshot that was already taken, so
// each solve can work from its own consistent view.
func (c *Catalog) Snapshot() *Snapshot {
	s := &Snapshot{
		resources: make([]Resource, 0, len(c.order)),
		index:     make(map[string]int, len(c.order)),
		yields:    make(map[string]map[string]float64, len(c.yields)),
	}
	for i, name := range c.order {
		s.resources = append(s.resources, c.resources[name])
		s.index[name] = i
	}
	for output, m := range c.yields {
		cp := make(map[string]float64, len(m))
		for r, y := range m {
			cp[r] = y
		}
		s.yields[output] = cp
	}
	for _, output := range c.reqOrder {
		s.requirements = append(s.requirements, Requirement{Output: output, MinQuantity: c.requirements[output]})
	}
	return s
}

// Snapshot is a frozen, read-only copy of a catalog.
type Snapshot struct {
	resources    []Resource
	index        map[string]int
	yields       map[string]map[string]float64
	requirements []Requirement
}

// Resources returns the registered resources in insertion order.
func (s *Snapshot) Resources() []Resource {
	out := make([]Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Resource looks up a resource by name.
func (s *Snapshot) Resource(name string) (Resource, bool) {
	i, ok := s.index[name]
	if !ok {
		return Resource{}, false
	}
	return s.resources[i], true
}

// Requirements returns the output quotas in insertion order.
func (s *Snapshot) Requirements() []Requirement {
	out := make([]Requirement, len(s.requirements))
	copy(out, s.requirements)
	return out
}

// Yields returns the (resource, coefficient) pairs feeding an output, ordered
// by catalog insertion order of the resources. The slice is empty when no
// yield edge targets the output.
func (s *Snapshot) Yields(output string) []Yield {
	m, ok := s.yields[output]
	if !ok {
		return nil
	}
	out := make([]Yield, 0, len(m))
	for _, r := range s.resources {
		if y, ok := m[r.Name]; ok {
			out = append(out, Yield{Resource: r.Name, PerUnit: y})
		}
	}
	return out
}
