package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
)

// stubBenchmark is a minimal plugin for registry tests
type stubBenchmark struct {
	*benchmark.Base
}

func (s *stubBenchmark) Setup() bool { return true }
func (s *stubBenchmark) Collect() <-chan benchmark.Result {
	out := make(chan benchmark.Result)
	close(out)
	return out
}
func (s *stubBenchmark) Cleanup() bool { return true }

func stubFactory(name string) Factory {
	return func() (benchmark.Benchmark, error) {
		base, err := benchmark.NewBase(name)
		if err != nil {
			return nil, err
		}
		return &stubBenchmark{Base: base}, nil
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("duplicate name fails", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register("uperf", stubFactory("uperf")))

		err := r.Register("uperf", stubFactory("uperf"))
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateRegistration(err))
	})

	t.Run("sentinel base name is never stored", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(benchmark.BaseToolName, stubFactory(benchmark.BaseToolName)))
		// registering it again is not a collision either
		require.NoError(t, r.Register(benchmark.BaseToolName, stubFactory(benchmark.BaseToolName)))

		assert.False(t, r.Has(benchmark.BaseToolName))
		assert.NotContains(t, r.Names(), benchmark.BaseToolName)
	})
}

func TestRegistry_Create(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("fio", stubFactory("fio")))

	t.Run("creates registered benchmark", func(t *testing.T) {
		b, err := r.Create("fio")
		require.NoError(t, err)
		assert.Equal(t, "fio", b.Name())
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := r.Create("no-such-benchmark")
		require.Error(t, err)
		assert.True(t, errors.IsUnknownPlugin(err))
	})
}

func TestGlobalRegistry(t *testing.T) {
	require.NoError(t, Register("global-stub", stubFactory("global-stub")))

	assert.True(t, Has("global-stub"))
	assert.Contains(t, Names(), "global-stub")

	b, err := Create("global-stub")
	require.NoError(t, err)
	assert.Equal(t, "global-stub", b.Name())

	t.Run("must register panics on collision", func(t *testing.T) {
		assert.Panics(t, func() {
			MustRegister("global-stub", stubFactory("global-stub"))
		})
	})
}

func TestRegistry_NamesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"uperf", "fio", "sysbench"} {
		require.NoError(t, r.Register(name, stubFactory(name)))
	}
	assert.Equal(t, []string{"uperf", "fio", "sysbench"}, r.Names())
}
