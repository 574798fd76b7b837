package cache

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a computed layout of the document with content
	// hash docHash.
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout options that change the result.
type LayoutKeyOpts struct {
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	CharWidth    float64  `json:"char_width"`
	ZoomCircular int      `json:"zoom_circular,omitempty"`
	LineHeight   float64  `json:"line_height"`
	Kinds        []string `json:"kinds,omitempty"`
}

// ArtifactKeyOpts are the render options that change the output.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	View     string `json:"view"`
	Detailed bool   `json:"detailed,omitempty"`
	// State is a hash of the anchors and selection painted into the output.
	State string `json:"state,omitempty"`
}

// DefaultKeyer hashes options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
