package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/render"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
)

type stubUseCase struct {
	checklist.UseCase
	weeks   []string
	listErr error
}

func (s stubUseCase) ListWeeks(ctx context.Context) (checklist.ListWeeksOutput, error) {
	if s.listErr != nil {
		return checklist.ListWeeksOutput{}, s.listErr
	}
	return checklist.ListWeeksOutput{WeekIDs: s.weeks, CurrentWeekID: "2025-W2"}, nil
}

func setupRouter(t *testing.T, uc checklist.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdr, err := render.New()
	require.NoError(t, err)
	cal, err := datemath.NewCalendar("UTC")
	require.NoError(t, err)
	cal = cal.WithClock(func() time.Time { return time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC) })
	links, err := LoadLinks("")
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc, rdr, cal, links))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPages(t *testing.T) {
	r := setupRouter(t, stubUseCase{weeks: []string{"2025-W1"}})

	t.Run("Home", func(t *testing.T) {
		w := get(r, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `<a href="/checklist?week=2025-W1">Week 1, 2025</a>`)
	})

	t.Run("Today", func(t *testing.T) {
		w := get(r, "/today")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `href="/checklist?week=2025-W2"`)
	})

	t.Run("Setup", func(t *testing.T) {
		w := get(r, "/setup")
		assert.Equal(t, http.StatusOK, w.Code)
		// httptest requests target example.com
		assert.Contains(t, w.Body.String(), "http://example.com/navigator")
	})

	t.Run("Navigator", func(t *testing.T) {
		w := get(r, "/navigator")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<h2>Code</h2>")
		assert.Contains(t, w.Body.String(), "<h2>Documentation</h2>")
	})
}

func TestHomeListError(t *testing.T) {
	r := setupRouter(t, stubUseCase{listErr: errors.New("boom")})

	w := get(r, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestLoadLinks(t *testing.T) {
	t.Run("Built-in", func(t *testing.T) {
		sections, err := LoadLinks("")
		require.NoError(t, err)
		require.Len(t, sections, 4)
		assert.Equal(t, "Code", sections[0].Title)
		assert.NotEmpty(t, sections[0].Links)
	})

	t.Run("Override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "links.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sections:
  - title: Mine
    links:
      - title: Home
        url: http://localhost:8080/
`), 0o644))

		sections, err := LoadLinks(path)
		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Home", sections[0].Links[0].Title)
		assert.Empty(t, sections[0].Links[0].Description)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadLinks(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid entries", func(t *testing.T) {
		_, err := parseLinks([]byte("sections:\n  - title: X\n    links:\n      - title: no url\n"))
		assert.Error(t, err)

		_, err = parseLinks([]byte("sections: [not, a, mapping"))
		assert.Error(t, err)
	})
}
