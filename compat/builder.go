// FILE: lixenwraith/logcore/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/logcore"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Builder creates adapters for third-party logging interfaces over one shared core.
// It can use an existing *logcore.Core or create and start one from a *logcore.Config.
// Each adapter is bound to a Producer named after its source (gnet, fasthttp, zap,
// logrus, zerolog) so the thread column shows where a record came from.
type Builder struct {
	core    *logcore.Core
	coreCfg *logcore.Config
	err     error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCore specifies an existing core to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithCore(c *logcore.Core) *Builder {
	if c == nil {
		b.err = fmt.Errorf("logcore/compat: provided core cannot be nil")
		return b
	}
	b.core = c
	return b
}

// WithConfig provides a configuration for a new core instance.
// This is used only if an existing core is NOT provided via WithCore.
func (b *Builder) WithConfig(cfg *logcore.Config) *Builder {
	b.coreCfg = cfg
	return b
}

// getCore resolves the core to be used, creating and starting one if necessary
func (b *Builder) getCore() (*logcore.Core, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.core != nil {
		return b.core, nil
	}

	c, err := logcore.New(b.coreCfg)
	if err != nil {
		return nil, err
	}
	if err := c.Start(); err != nil {
		return nil, err
	}

	// Cache the newly created core for subsequent builds with this builder
	b.core = c
	return c, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	c, err := b.getCore()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(c.Producer("gnet"), opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	c, err := b.getCore()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(c.Producer("fasthttp"), opts...), nil
}

// BuildZap creates a *zap.Logger backed by the core
func (b *Builder) BuildZap(enab zapcore.LevelEnabler, opts ...zap.Option) (*zap.Logger, error) {
	c, err := b.getCore()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(c.Producer("zap"), enab, opts...), nil
}

// BuildLogrusHook creates a hook for installing on a *logrus.Logger
func (b *Builder) BuildLogrusHook(levels ...logrus.Level) (*LogrusHook, error) {
	c, err := b.getCore()
	if err != nil {
		return nil, err
	}
	return NewLogrusHook(c.Producer("logrus"), levels...), nil
}

// BuildZerolog creates a zerolog writer
func (b *Builder) BuildZerolog() (*ZerologWriter, error) {
	c, err := b.getCore()
	if err != nil {
		return nil, err
	}
	return NewZerologWriter(c.Producer("zerolog")), nil
}

// GetCore returns the underlying core, creating it if needed
func (b *Builder) GetCore() (*logcore.Core, error) {
	return b.getCore()
}

// --- Example Usage ---
//
//	core, _ := logcore.NewBuilder().DefaultLevelString("debug").Build()
//	core.Start()
//	defer core.Finish()
//
//	builder := compat.NewBuilder().WithCore(core)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//
//	zl, _ := builder.BuildZap(zapcore.InfoLevel)
//	zl.Info("ready", zap.Int("port", 9000))
