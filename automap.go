package automap

import (
	"errors"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"automap/internal/cache"
	"automap/internal/executor"
	"automap/internal/match"
	"automap/internal/plan"
	"automap/internal/surface"
)

type (
	// Configuration is the per-member plan for one type pair.
	Configuration = plan.Configuration
	// Compiled is an executable mapper bound to one type pair.
	Compiled = executor.Mapper
	// Directive is the per-member decision, DirectiveCopy or DirectiveIgnore.
	Directive = match.Directive
	// Graph declares interface embedding.
	Graph = surface.Graph
	// Overrides holds per-pair exclusions loaded from YAML.
	Overrides = plan.Overrides
)

const (
	// DirectiveCopy marks a member copied from the same-named source member.
	DirectiveCopy = match.DirectiveCopy
	// DirectiveIgnore marks a member left untouched.
	DirectiveIgnore = match.DirectiveIgnore
)

var (
	// ErrSequenceConsumed is yielded when a sequence returned by MapSeq is ranged over twice.
	ErrSequenceConsumed = errors.New("automap: sequence already consumed")
	// ErrNilCompiled is returned by MapUsing for a nil mapper.
	ErrNilCompiled = errors.New("automap: nil compiled mapper")
)

// Mapper owns the plan builder and the compiled-mapper cache.
// Create one per process (or use Default) and share it; it is safe for concurrent use.
type Mapper struct {
	logger    *zap.Logger
	builder   *plan.Builder
	overrides *plan.Overrides
	cache     *cache.Cache
}

// Option configures a Mapper.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	graph     *surface.Graph
	overrides *plan.Overrides
}

// WithLogger sets the logger. Plan and cache events are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGraph sets the interface embedding graph used to resolve interface types.
func WithGraph(g *Graph) Option {
	return func(o *options) {
		o.graph = g
	}
}

// WithOverrides applies per-pair exclusions to every plan the Mapper builds.
func WithOverrides(ov *Overrides) Option {
	return func(o *options) {
		o.overrides = ov
	}
}

// New creates a Mapper with an empty cache.
func New(opts ...Option) *Mapper {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	m := &Mapper{
		logger:    o.logger.Named("automap"),
		builder:   plan.NewBuilder(surface.NewResolver(o.graph)),
		overrides: o.overrides,
	}
	m.cache = cache.New(m.build, m.logger)

	m.logger.Debug("mapper created",
		zap.Int("interfaces", o.graph.Len()),
		zap.Int("overrides", m.overrides.Len()),
	)

	return m
}

var defaultMapper = sync.OnceValue(func() *Mapper {
	return New()
})

// Default returns the process-wide Mapper, created on first use.
func Default() *Mapper {
	return defaultMapper()
}

// NewGraph returns an empty interface embedding graph.
func NewGraph() *Graph {
	return surface.NewGraph()
}

// LoadOverrides reads a YAML overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	return plan.LoadFile(path)
}

// ParseOverrides parses YAML overrides.
func ParseOverrides(data []byte) (*Overrides, error) {
	return plan.Parse(data)
}

// ExportOverrides renders the exclusions of the given configurations as YAML.
func ExportOverrides(cfgs ...*Configuration) ([]byte, error) {
	return plan.ExportYAML(cfgs...)
}

// Configuration builds a fresh plan for (src, dst) with overrides applied.
// It bypasses the cache; the caller owns the result.
func (m *Mapper) Configuration(src, dst reflect.Type) *Configuration {
	cfg := m.builder.Build(src, dst)
	m.overrides.Apply(cfg)

	return cfg
}

// Compile turns a configuration into a mapper without caching it.
func (m *Mapper) Compile(cfg *Configuration) (*Compiled, error) {
	return executor.Compile(cfg)
}

// Lookup returns the cached mapper for (src, dst), building it on first use.
func (m *Mapper) Lookup(src, dst reflect.Type) (*Compiled, error) {
	return m.cache.GetOrBuild(src, dst)
}

// Peek returns the cached mapper for (src, dst) without building one.
func (m *Mapper) Peek(src, dst reflect.Type) (*Compiled, bool) {
	return m.cache.Lookup(src, dst)
}

// Range calls fn for every cached mapper until fn returns false. Order is not defined.
func (m *Mapper) Range(fn func(c *Compiled) bool) {
	m.cache.Range(fn)
}

// Cached returns the number of cached mappers.
func (m *Mapper) Cached() int {
	return m.cache.Len()
}

// build is the cache's BuildFunc.
func (m *Mapper) build(src, dst reflect.Type) (*Compiled, error) {
	cfg := m.Configuration(src, dst)

	if m.logger.Core().Enabled(zap.DebugLevel) {
		for _, d := range cfg.Diagnostics.Infos {
			m.logger.Debug("member excluded",
				zap.String("pair", d.TypePair),
				zap.String("member", d.Member),
				zap.String("reason", d.Code),
				zap.Stringer("diagnostic", d),
			)
		}
	}

	for _, d := range cfg.Diagnostics.Warnings {
		m.logger.Warn("override not applied",
			zap.String("pair", d.TypePair),
			zap.String("member", d.Member),
			zap.String("reason", d.Code),
		)
	}

	return executor.Compile(cfg)
}
