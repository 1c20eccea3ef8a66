package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/tree"
)

// Step is a record of visiting a single tree node during evaluation.
type Step struct {
	Node     *tree.Tree  // the node visited
	Label    string      // the node's label
	Children arbor.Tuple // states of the node's children; failed children are ""
	Blocked  bool        // true if a child failed, in which case no transition was looked up
}

// Config collects evaluation options. Clients do not create it directly, but
// use Options.
type Config struct {
	debug     bool
	observers []func(Step)
}

// Option configures an evaluation run.
type Option func(*Config)

// Debug switches tracing of every visited node on or off. The children tuple
// and label of a node are traced at Info level, before the node's transition
// is looked up.
func Debug(on bool) Option {
	return func(c *Config) {
		c.debug = on
	}
}

// Observe registers a function which will be called for every visited node,
// in post-order.
func Observe(observer func(Step)) Option {
	return func(c *Config) {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
}

// Configure applies options to an empty configuration.
func Configure(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsDebug returns true if debug tracing is on.
func (c *Config) IsDebug() bool {
	return c != nil && c.debug
}

func (c *Config) report(step Step) {
	if c == nil {
		return
	}
	if c.debug {
		tracer().Infof("%s %s", step.Children, step.Label)
	}
	for _, observe := range c.observers {
		observe(step)
	}
}
