package littleprince

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_callSystem_resolvesResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}
	resource := NewMockResource1("injected")
	app.addResources(resource)

	var got *MockResource1
	app.callSystem(func(r *MockResource1) {
		got = r
	})

	require.NotNil(t, got)
	assert.Equal(t, "injected", got.name)
}

func TestApp_callSystem_injectsCommands(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	var got *Commands
	app.callSystem(func(cmd *Commands) {
		got = cmd
	})

	require.NotNil(t, got)
	assert.Same(t, app, got.app)
}

func TestApp_callSystem_panicsOnUnknownDependency(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	assert.Panics(t, func() {
		app.callSystem(func(r *MockResource1) {})
	})
}

func TestApp_tick_runsStagesInOrder(t *testing.T) {
	app := NewAppBuilder().Build()

	var order []string
	record := func(name string) systemScheduleBuilder {
		return System(func() { order = append(order, name) })
	}
	app.UseSystem(record("render").InStage(Render))
	app.UseSystem(record("update").InStage(Update))
	app.UseSystem(record("pre").InStage(PreUpdate))

	app.tick()

	assert.Equal(t, []string{"pre", "update", "render"}, order)
}

func TestApp_quit_stopsFrameLoop(t *testing.T) {
	app := NewAppBuilder().Build()

	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.Quit()
		}
	}))

	app.Run()

	if frames != 3 {
		t.Errorf("Expected 3 frames before quit, got %d", frames)
	}
}

func TestGetResource(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}
	resource := NewMockResource1("lookup")
	app.addResources(resource)

	got := GetResource[MockResource1](app)
	require.NotNil(t, got)
	assert.Same(t, resource, got)

	assert.Nil(t, GetResource[MockResource2](app))
}

func TestApp_Logger_fallsBackToNop(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	logger := app.Logger()
	require.NotNil(t, logger)

	// Must not blow up
	logger.Infof("hello %s", "world")
}

func TestApp_Logger_findsInstalledLogger(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}
	installed := NewDefaultLogger("test", false)
	app.addResources(installed)

	assert.Same(t, installed, app.Logger())
}
