// SPDX-License-Identifier: MIT
package mtx

// Option configures Load. Defaults: directed, self-loops kept, file
// values read.
type Option func(*config)

type config struct {
	undirected   bool
	removeLoops  bool
	ignoreValues bool
}

// WithUndirected mirrors every non-loop edge (i,j) into its reverse
// (j,i), doubling the emitted triple count.
func WithUndirected() Option { return func(c *config) { c.undirected = true } }

// WithoutSelfLoops drops any data line whose row equals its column.
func WithoutSelfLoops() Option { return func(c *config) { c.removeLoops = true } }

// WithIgnoreValues skips whatever value column is present in the file;
// Load's returned vals is nil and the caller fills values itself.
func WithIgnoreValues() Option { return func(c *config) { c.ignoreValues = true } }

func gatherOptions(opts ...Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}
