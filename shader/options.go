package shader

import (
	"go.uber.org/zap"
)

// OffsetMode selects how variable offsets are computed.
//
type OffsetMode int

const (
	// Dynamic packs active variables tightly, in mapping declaration order.
	Dynamic OffsetMode = iota
	// Static uses the offsets declared in the mappings.
	Static
)

func (m OffsetMode) String() string {
	if m == Static {
		return "static"
	}
	return "dynamic"
}

func (m OffsetMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *OffsetMode) UnmarshalText(text []byte) error {
	i, err := parseName([]string{"dynamic", "static"}, "offset mode", text)
	*m = OffsetMode(i)
	return err
}

// An Option configures Resolve and Link.
//
type Option interface {
	set(*config)
}

type config struct {
	mode  OffsetMode
	hooks Hooks
	log   *zap.Logger
}

type cfn func(*config)

func (f cfn) set(c *config) { f(c) }

func newConfig(opts []Option) *config {
	c := &config{log: zap.NewNop()}
	for _, o := range opts {
		o.set(c)
	}
	return c
}

// Offsets sets the offset mode used by Link. The default is Dynamic.
//
func Offsets(m OffsetMode) Option {
	return cfn(func(c *config) { c.mode = m })
}

// WithHooks sets the per category uniform hooks.
//
func WithHooks(h Hooks) Option {
	return cfn(func(c *config) { c.hooks = h })
}

// Logger sets the logger. The default is a no-op logger.
//
func Logger(l *zap.Logger) Option {
	return cfn(func(c *config) {
		if l != nil {
			c.log = l
		}
	})
}
