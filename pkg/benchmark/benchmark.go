// Package benchmark defines the plugin lifecycle contract for benchmark
// wrappers and the runner that drives it.
//
// A benchmark plugin declares a tool name, its config arguments, and the
// config keys it surfaces as result metadata, then implements the three
// lifecycle phases:
//
//	Setup() -> Collect() -> Cleanup()
//
// Setup and Cleanup signal failure by returning false; failures are logged,
// never raised. Collect streams results over a channel so each result reaches
// the consumer as soon as it is produced.
package benchmark

import (
	"github.com/mnmehta/benchmark-wrapper/pkg/config"
)

// BaseToolName is the sentinel name of the abstract base; the registry never
// stores it.
const BaseToolName = "_base_benchmark"

// Benchmark is the interface all benchmark plugins implement
type Benchmark interface {
	// Name returns the tool name used as the registry key
	Name() string
	// Config returns the plugin's resolved configuration namespace
	Config() *config.Config
	// MetadataKeys returns the config keys surfaced as result metadata
	MetadataKeys() []string

	// Setup prepares the benchmark, returning false if something went wrong
	Setup() bool
	// Collect executes the benchmark and streams its results. The returned
	// channel is finite and non-restartable; the producer must close it.
	Collect() <-chan Result
	// Cleanup tears the benchmark down as needed
	Cleanup() bool
}

// defaultMetadataKeys are the config keys every plugin surfaces unless it
// overrides them
var defaultMetadataKeys = []string{"cluster_name", "user", "uuid"}

// CommonArgs returns the config arguments attached to every benchmark
func CommonArgs() []config.Argument {
	return []config.Argument{
		{
			Flags:     []string{"-l", "--labels"},
			Dest:      "labels",
			Help:      "Extra labels to add in exported results. Format: key1=value1,key2=value2,...",
			Default:   map[string]string{},
			Transform: config.ParseLabels,
		},
		{
			Flags:  []string{"--cluster-name"},
			Dest:   "cluster_name",
			EnvVar: "clustername",
		},
		{
			Flags:  []string{"--user"},
			Dest:   "user",
			EnvVar: "test_user",
			Help:   "Provide user",
		},
		{
			Flags:  []string{"-u", "--uuid"},
			Dest:   "uuid",
			EnvVar: "uuid",
			Help:   "Provide UUID for run",
		},
	}
}

// Base carries the shared state of a benchmark plugin: its tool name, its
// resolved configuration, and its metadata key set. Concrete plugins embed it
// and implement the lifecycle phases.
type Base struct {
	toolName     string
	conf         *config.Config
	metadataKeys []string
}

// NewBase constructs the shared plugin state, declaring the common arguments
// followed by the plugin-specific ones. A dest collision anywhere in the
// combined set is a definition error.
func NewBase(toolName string, args ...config.Argument) (*Base, error) {
	conf := config.New(toolName)
	if err := conf.AddArguments(CommonArgs()...); err != nil {
		return nil, err
	}
	if err := conf.AddArguments(args...); err != nil {
		return nil, err
	}
	return &Base{
		toolName:     toolName,
		conf:         conf,
		metadataKeys: defaultMetadataKeys,
	}, nil
}

// Name returns the tool name
func (b *Base) Name() string {
	return b.toolName
}

// Config returns the plugin's configuration namespace
func (b *Base) Config() *config.Config {
	return b.conf
}

// MetadataKeys returns the config keys surfaced as result metadata
func (b *Base) MetadataKeys() []string {
	return b.metadataKeys
}

// SetMetadataKeys overrides the default metadata key set
func (b *Base) SetMetadataKeys(keys []string) {
	b.metadataKeys = keys
}

// Metadata returns the resolved value of each declared metadata key, omitting
// keys whose value is nil or absent.
func (b *Base) Metadata() map[string]interface{} {
	metadata := make(map[string]interface{})
	for _, key := range b.metadataKeys {
		if value, ok := b.conf.Lookup(key); ok && value != nil {
			metadata[key] = value
		}
	}
	return metadata
}

// NewResult builds a Result from the plugin's name, resolved labels, and
// computed metadata, plus the caller-supplied data, config, and tag.
func (b *Base) NewResult(data, cfg map[string]interface{}, tag string) Result {
	return Result{
		Name:     b.toolName,
		Labels:   b.conf.Labels(),
		Metadata: b.Metadata(),
		Data:     data,
		Config:   cfg,
		Tag:      tag,
	}
}
