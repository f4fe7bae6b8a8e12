package shader

import "fmt"

// Cache keeps the program for the current tier and only compiles again when
// the context's tier changes.
type Cache struct {
	compile func(Tier) (Program, error)
	release func(Program)

	valid   bool
	tier    Tier
	program Program
}

// NewCache creates a Cache. release may be nil.
func NewCache(compile func(Tier) (Program, error), release func(Program)) *Cache {
	return &Cache{compile: compile, release: release}
}

// Resolve returns the tier and program for a context of version v.
func (c *Cache) Resolve(v Version) (Tier, Program, error) {
	t := Select(v)
	if c.valid && c.tier.Name == t.Name {
		return c.tier, c.program, nil
	}
	p, err := c.compile(t)
	if err != nil {
		return Tier{}, 0, fmt.Errorf("shader tier %s: %w", t.Name, err)
	}
	c.Release()
	c.valid = true
	c.tier = t
	c.program = p
	return t, p, nil
}

// Current returns the cached tier, if any.
func (c *Cache) Current() (Tier, bool) {
	return c.tier, c.valid
}

// Release drops the cached program.
func (c *Cache) Release() {
	if !c.valid {
		return
	}
	if c.release != nil {
		c.release(c.program)
	}
	c.valid = false
	c.tier = Tier{}
	c.program = 0
}
