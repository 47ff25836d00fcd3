// Package hook runs user-supplied Tengo scripts at fetch lifecycle points,
// e.g. to post-process a product directory after its bands have landed.
package hook

// Type identifies the lifecycle point a script is attached to.
type Type string

// Supported hook types.
const (
	// PostProduct runs after all of one product's files finished downloading.
	PostProduct Type = "post-product"
	// PostBatch runs once after a whole fetch batch drained.
	PostBatch Type = "post-batch"
)

// Context carries the values exposed to a hook script.
type Context struct {
	ProductID  string
	Tile       string
	DestDir    string
	Downloaded int
	Skipped    int
	Failed     int
	Vars       map[string]interface{}
}

// Executor runs hook scripts.
type Executor interface {
	// Execute runs the script registered for the hook type, if any.
	Execute(hookType Type, ctx Context) error

	// HasScript checks if a script is registered for the hook type.
	HasScript(hookType Type) bool
}
