package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }

func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	if f.err != nil {
		return f.err
	}
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Enabled features only", func(t *testing.T) {
		on := &stubFeature{name: "currency", enabled: true}
		off := &stubFeature{name: "disabled"}

		m := NewManager()
		m.Register(on)
		m.Register(off)
		assert.Len(t, m.Features(), 2)

		app := fiber.New()
		require.NoError(t, m.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)

		resp, err := app.Test(httptest.NewRequest("GET", "/currency", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Failure stops loading", func(t *testing.T) {
		failing := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}

		m := NewManager()
		m.Register(failing)
		m.Register(after)

		err := m.LoadAll(fiber.New())
		assert.EqualError(t, err, "failed to load feature broken: boom")
		assert.False(t, after.loaded)
	})
}
