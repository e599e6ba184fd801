package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Identity(t *testing.T) {
	env := newTestEnv(t)

	a := env.reg.GetLogger("x")
	b := env.reg.GetLogger("x")
	assert.Same(t, a, b)
	assert.NotSame(t, a, env.reg.GetLogger("y"))
}

func TestRegistry_NewLoggerWiredToRoot(t *testing.T) {
	env := newTestEnv(t)
	root := env.reg.RootLogger()

	l := env.reg.GetLogger("app.db")
	assert.Equal(t, "app.db", l.Name())
	assert.Same(t, root, l.Parent())
	assert.True(t, l.UseParent())
	assert.Equal(t, root.Level(), l.Level())
	assert.False(t, l.IsRoot())
}

func TestRegistry_DefaultRootLevelIsWarning(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, WarningLevel, env.reg.RootLogger().Level())
	assert.Equal(t, WarningLevel, env.reg.GetLogger("fresh").Level())
}

func TestRegistry_WithRootLevel(t *testing.T) {
	reg := NewBuilder().WithSink(&recordingSink{}).WithRootLevel(DebugLevel).Build()
	assert.Equal(t, DebugLevel, reg.GetLogger("a").Level())
	assert.Equal(t, DebugLevel, reg.RootLogger().Level())
}

func TestRegistry_LevelSnapshotAtCreation(t *testing.T) {
	env := newTestEnv(t)
	root := env.reg.RootLogger()

	root.SetLevel(InfoLevel)
	early := env.reg.GetLogger("early")
	assert.Equal(t, InfoLevel, early.Level())

	root.SetLevel(ErrorLevel)
	assert.Equal(t, InfoLevel, early.Level(), "root level change must not propagate")

	late := env.reg.GetLogger("late")
	assert.Equal(t, ErrorLevel, late.Level())
}

func TestRegistry_RootInvariants(t *testing.T) {
	env := newTestEnv(t)
	other := env.reg.GetLogger("other")
	root := env.reg.RootLogger()

	assert.Nil(t, root.Parent())
	assert.False(t, root.UseParent())
	assert.True(t, root.IsRoot())
	assert.Equal(t, RootName, root.Name())

	root.SetParent(other)
	root.SetUseParent(true)
	assert.Nil(t, root.Parent())
	assert.False(t, root.UseParent())
}

func TestRegistry_RootBeforeAndAfterLookupByName(t *testing.T) {
	env := newTestEnv(t)

	byName := env.reg.GetLogger(RootName)
	root := env.reg.RootLogger()
	assert.Same(t, byName, root)
	assert.Nil(t, root.Parent())
	assert.False(t, root.UseParent())
}

func TestRegistry_RootLoggerIdempotent(t *testing.T) {
	env := newTestEnv(t)

	first := env.reg.RootLogger()
	first.SetLevel(TraceLevel)

	second := env.reg.RootLogger()
	assert.Same(t, first, second)
	assert.Equal(t, TraceLevel, second.Level(), "second call must not reset the level")
	assert.Nil(t, second.Parent())
	assert.Same(t, first, env.reg.GetLogger(""))
}

func TestRegistry_Names(t *testing.T) {
	env := newTestEnv(t)
	env.reg.GetLogger("b")
	env.reg.GetLogger("a.x")
	env.reg.GetLogger("b")

	// creating "a.x" created the root as well
	assert.Equal(t, []string{"", "a.x", "b"}, env.reg.Names())
}

func TestRegistry_ConcurrentGetLogger(t *testing.T) {
	env := newTestEnv(t)
	root := env.reg.RootLogger()
	root.SetLevel(ErrorLevel)

	const goroutines = 32
	got := make([]*Logger, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = env.reg.GetLogger("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, got[0], got[i])
	}
	assert.Same(t, root, got[0].Parent())
	assert.True(t, got[0].UseParent())
	assert.Equal(t, ErrorLevel, got[0].Level())
}

func TestRegistry_ConcurrentMutationAndLogging(t *testing.T) {
	env := newTestEnv(t)
	l := env.reg.GetLogger("busy")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.SetLevel(TraceLevel)
				l.SetUseParent(j%2 == 0)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.Error("concurrent")
				_ = env.reg.GetLogger("busy").Level()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, env.sink.Lines(), 800)
}

func TestDefaultRegistry(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	env := newTestEnv(t)
	SetDefault(env.reg)

	assert.Same(t, env.reg, Default())
	assert.Same(t, env.reg.GetLogger("pkg"), GetLogger("pkg"))
	assert.Same(t, env.reg.RootLogger(), RootLogger())

	require.NoError(t, Info("below threshold"))
	require.NoError(t, Error("package level"))
	assert.Equal(t, []string{"ERROR [" + testTimestamp + "] : package level"}, env.sink.Lines())
}
