package workspace

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/studiowebux/cloudide/internal/logging"
	"github.com/studiowebux/cloudide/internal/tree"
)

// Controller owns the workspace state. It is the only writer: views read
// snapshots and send events through Dispatch.
type Controller struct {
	mu     sync.RWMutex
	state  State
	logger *logrus.Entry
}

// NewController wraps an initial state. A nil logger discards output.
func NewController(initial State, logger *logrus.Entry) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		state:  initial,
		logger: logger.WithField("component", "workspace"),
	}
}

// Dispatch runs ev through Reduce and returns the resulting snapshot
func (c *Controller) Dispatch(ev Event) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.state.Active
	c.state = Reduce(c.state, ev)

	c.logger.WithFields(logrus.Fields{
		"event":         ev.Name(),
		"active_before": before,
		"active_after":  c.state.Active,
		"tabs":          c.state.Tabs.Len(),
	}).Debug("dispatched")

	return c.state.Snapshot()
}

// Snapshot returns the current read-only view
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Snapshot()
}

// Tree returns the current document tree, including its expand flags.
// Callers must treat it as read-only and toggle folders via Dispatch.
func (c *Controller) Tree() *tree.Tree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Tree
}
