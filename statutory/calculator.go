package statutory

import "github.com/warp/statutory-engine/tables"

// Calculator evaluates the statutory formulas against one set of tables.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	t *tables.Tables
}

// New returns a calculator over t. t must not be modified afterwards.
func New(t *tables.Tables) *Calculator {
	return &Calculator{t: t}
}

// Default returns a calculator over the embedded tables.
func Default() *Calculator {
	return New(tables.Default())
}

// Tables exposes the rates the calculator was built with, read-only.
func (c *Calculator) Tables() *tables.Tables {
	return c.t
}
