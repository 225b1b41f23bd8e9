// Package config provides per-benchmark configuration resolution.
//
// Each benchmark declares its configurable options as Arguments. A Config
// merges three sources into one read-only namespace keyed by dest, with a
// fixed precedence:
//
//	CLI flag > environment variable (if declared and present) > default
//
// Raw string input from the CLI or the environment passes through the
// argument's Transform, if any. Defaults never do, since they are declared
// already in final form.
package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
)

// Transform converts one raw string input into a structured value.
// It is invoked exactly once per resolved raw input and never on defaults.
type Transform func(raw string) (interface{}, error)

// Argument is the immutable declaration of one configurable option
type Argument struct {
	// Flags holds the CLI spellings, e.g. {"-l", "--labels"}. Spellings with a
	// double-dash prefix become the flag name; a single-dash spelling becomes
	// the one-letter shorthand. When no long spelling is given, Dest is used
	// as the flag name.
	Flags []string
	// Dest is the namespace key, unique within a benchmark's full argument set
	Dest string
	// EnvVar names the environment variable consulted when no CLI value is given
	EnvVar string
	// Default is the value used when neither CLI nor environment supply one
	Default interface{}
	// Help is the flag usage text
	Help string
	// Transform parses raw CLI or environment input into a structured value
	Transform Transform
}

// flagName returns the pflag name and shorthand for the argument
func (a Argument) flagName() (name, shorthand string) {
	for _, f := range a.Flags {
		switch {
		case strings.HasPrefix(f, "--"):
			name = strings.TrimPrefix(f, "--")
		case strings.HasPrefix(f, "-"):
			shorthand = strings.TrimPrefix(f, "-")
		}
	}
	if name == "" {
		name = strings.ReplaceAll(a.Dest, "_", "-")
	}
	return name, shorthand
}

// Config resolves and holds the configuration namespace for one benchmark
// instance. It is populated once and read-only thereafter.
type Config struct {
	name     string
	args     []Argument
	declared map[string]struct{}
	values   map[string]interface{}
	resolved bool
}

// New creates an empty Config for the named benchmark
func New(name string) *Config {
	return &Config{
		name:     name,
		declared: make(map[string]struct{}),
		values:   make(map[string]interface{}),
	}
}

// Name returns the owning benchmark's name
func (c *Config) Name() string {
	return c.name
}

// AddArguments registers a batch of argument declarations. A dest already
// declared in any earlier batch is a definition error.
func (c *Config) AddArguments(args ...Argument) error {
	if c.resolved {
		return errors.New(errors.ErrorTypeConfig,
			"arguments cannot be added after resolution")
	}
	for _, arg := range args {
		if arg.Dest == "" {
			return errors.New(errors.ErrorTypeConfig, "argument has empty dest")
		}
		if _, dup := c.declared[arg.Dest]; dup {
			return errors.NewDuplicateArgument(c.name, arg.Dest)
		}
		c.declared[arg.Dest] = struct{}{}
		c.args = append(c.args, arg)
	}
	return nil
}

// FlagSet builds the pflag set for the declared arguments. Every argument
// contributes one string flag; unknown flags make Parse fail.
func (c *Config) FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.Usage = func() {} // usage rendering is the caller's, via Usage()
	for _, arg := range c.args {
		name, shorthand := arg.flagName()
		fs.StringP(name, shorthand, "", arg.Help)
	}
	return fs
}

// ParseArgs resolves every declared argument from the given CLI arguments,
// the environment, and the defaults, in that precedence order. It may be
// called at most once; the namespace is read-only afterwards.
func (c *Config) ParseArgs(argv []string) error {
	if c.resolved {
		return errors.New(errors.ErrorTypeConfig,
			"configuration for "+c.name+" already resolved")
	}

	fs := c.FlagSet()
	if err := fs.Parse(argv); err != nil {
		// --help/-h is a usage request, not malformed input; pass it through
		// unwrapped so callers can match pflag.ErrHelp
		if stderrors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errors.Wrap(err, errors.ErrorTypeParse,
			"invalid arguments for "+c.name)
	}

	for _, arg := range c.args {
		name, _ := arg.flagName()
		if fs.Changed(name) {
			raw, err := fs.GetString(name)
			if err != nil {
				return errors.Wrap(err, errors.ErrorTypeInternal, "flag lookup failed")
			}
			value, err := applyTransform(arg, raw)
			if err != nil {
				return err
			}
			c.values[arg.Dest] = value
			continue
		}

		if arg.EnvVar != "" {
			if raw, ok := os.LookupEnv(arg.EnvVar); ok {
				value, err := applyTransform(arg, raw)
				if err != nil {
					return err
				}
				c.values[arg.Dest] = value
				continue
			}
		}

		c.values[arg.Dest] = arg.Default
	}

	c.resolved = true
	return nil
}

func applyTransform(arg Argument, raw string) (interface{}, error) {
	if arg.Transform == nil {
		return raw, nil
	}
	name, _ := arg.flagName()
	value, err := arg.Transform(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse,
			"invalid value for --"+name)
	}
	return value, nil
}

// Usage returns the flag usage text for the declared arguments
func (c *Config) Usage() string {
	return c.FlagSet().FlagUsages()
}

// Lookup returns the resolved value for dest and whether dest was declared
func (c *Config) Lookup(dest string) (interface{}, bool) {
	value, ok := c.values[dest]
	return value, ok
}

// Get returns the resolved value for dest, or nil when dest was not declared
func (c *Config) Get(dest string) interface{} {
	return c.values[dest]
}

// GetString returns the resolved value for dest as a string, or "" when the
// value is absent, nil, or not a string
func (c *Config) GetString(dest string) string {
	if s, ok := c.values[dest].(string); ok {
		return s
	}
	return ""
}

// Labels returns the resolved labels mapping, or an empty map when none
func (c *Config) Labels() map[string]string {
	if labels, ok := c.values["labels"].(map[string]string); ok {
		return labels
	}
	return map[string]string{}
}
