package optext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStructBasic(t *testing.T) {
	type App struct {
		Bool   bool
		String string
		Int    int
	}
	app := &App{}
	p := New("test")
	require.NoError(t, p.AddStruct(app))

	vals, _, err := p.ParseArgs([]string{
		"--bool",
		"--string", "hello",
		"--int", "42",
	})
	require.NoError(t, err)

	assert.Equal(t, &App{Bool: true, String: "hello", Int: 42}, app)
	assert.Equal(t, true, vals.Bool("bool"))
	assert.Equal(t, "hello", vals.String("string"))
	assert.Equal(t, 42, vals.Int("int"))
}

func TestAddStructKitchenSink(t *testing.T) {
	type App struct {
		StringWithDefault string
		StringWithName    string `opt:"name=blah"`
		StringWithShort   string `opt:"short=s"`
		Duration          time.Duration
		Time              time.Time
		Skipped           string `opt:"-"`
		hidden            int
	}
	app := &App{StringWithDefault: "hello"}

	p := New("test")
	require.NoError(t, p.AddStruct(app))

	vals, _, err := p.ParseArgs([]string{
		"--blah", "a",
		"-s", "b",
		"--duration", "15m",
		"--time", "2022-02-22T22:22:22Z",
	})
	require.NoError(t, err)

	wantTime, err := time.Parse(time.RFC3339, "2022-02-22T22:22:22Z")
	require.NoError(t, err)

	assert.Equal(t, "hello", app.StringWithDefault)
	assert.Equal(t, "a", app.StringWithName)
	assert.Equal(t, "b", app.StringWithShort)
	assert.Equal(t, 15*time.Minute, app.Duration)
	assert.Equal(t, wantTime, app.Time)
	assert.Equal(t, 0, app.hidden)

	// defaults flow into the snapshot through the field binding
	assert.Equal(t, "hello", vals.String("string_with_default"))
	assert.Equal(t, "a", vals.String("blah"))
	assert.Equal(t, wantTime, vals.Get("time"))
	assert.False(t, vals.Has("skipped"))
}

func TestAddStructEmbedded(t *testing.T) {
	type Common struct {
		Verbose bool `opt:"short=v"`
	}
	type App struct {
		Common
		Name string
	}
	app := &App{}
	p := New("test")
	require.NoError(t, p.AddStruct(app))

	_, _, err := p.ParseArgs([]string{"-v", "--name", "x"})
	require.NoError(t, err)
	assert.True(t, app.Verbose)
	assert.Equal(t, "x", app.Name)
}

func TestAddStructRequiredAndEnv(t *testing.T) {
	type App struct {
		Token string `opt:"required,env=TOKEN"`
	}
	p := New("test")
	require.NoError(t, p.AddStruct(&App{}))
	p.LookupEnv = func(string) (string, bool) { return "", false }

	_, _, err := p.ParseArgs(nil)
	assert.True(t, IsUsageError(err))

	p.LookupEnv = func(key string) (string, bool) {
		return "secret", key == "TOKEN"
	}
	_, _, err = p.ParseArgs(nil)
	assert.NoError(t, err, "env fallback satisfies required")
}

func TestAddStructErrors(t *testing.T) {
	p := New("test")

	assert.Error(t, p.AddStruct(struct{}{}), "non-pointer config")

	type BadTag struct {
		F string `opt:"bogus=1"`
	}
	assert.Error(t, p.AddStruct(&BadTag{}))

	type BadShort struct {
		F string `opt:"short=long"`
	}
	assert.Error(t, p.AddStruct(&BadShort{}))

	type BadType struct {
		F []string
	}
	assert.Error(t, p.AddStruct(&BadType{}))
}
