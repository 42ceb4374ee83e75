package cache

// LayoutKeyOpts captures the options that influence layout geometry.
// Two tables with the same hash and the same opts produce the same
// layout, so they share a cache entry.
type LayoutKeyOpts struct {
	ChartType    string  `json:"chart_type"`
	NodePadding  float64 `json:"node_padding"`
	Proportional bool    `json:"proportional"`
}

// ArtifactKeyOpts captures the options that influence rendered output.
type ArtifactKeyOpts struct {
	Format        string  `json:"format"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	NodeThickness float64 `json:"node_thickness"`
	Title         string  `json:"title"`
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for layout caching.
	// tableHash is the hash of the decoded input table.
	LayoutKey(tableHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for rendered artifact caching.
	// layoutHash is the hash of the serialized layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(tableHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", tableHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
