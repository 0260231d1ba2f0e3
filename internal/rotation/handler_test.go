package rotation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

func testRouter(t *testing.T) (*gin.Engine, *GalleryRotator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := content.NewStore(content.NewMemoryKV())
	require.NoError(t, store.SaveGalleryImages(context.Background(), []content.GalleryImage{
		{ID: "g1", Src: "/a.jpg", Title: "A"},
		{ID: "g2", Src: "/b.jpg", Title: "B"},
		{ID: "g3", Src: "/c.jpg", Title: "C"},
	}))
	require.NoError(t, store.SaveScriptures(context.Background(), []content.Scripture{
		{ID: "s1", Reference: "John 3:16", Text: "...", IsActive: true},
	}))

	galleryRot := NewGalleryRotator(store)
	galleryRot.Start(context.Background())
	t.Cleanup(galleryRot.Stop)

	scriptureRot := NewScriptureRotator(store)
	scriptureRot.Reload(context.Background())
	t.Cleanup(scriptureRot.Stop)

	h := NewHandler(galleryRot, scriptureRot)

	r := gin.New()
	r.GET("/gallery/slider", h.GetGallerySlider)
	r.POST("/gallery/slider/next", h.GalleryNext)
	r.POST("/gallery/slider/play", h.GalleryPlay)
	r.POST("/gallery/lightbox", h.OpenLightbox)
	r.GET("/scriptures/slider", h.GetScriptureSlider)
	return r, galleryRot
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGallerySliderSnapshot(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/gallery/slider", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap GallerySnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Images, 3)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.True(t, snap.IsPlaying)
	assert.Nil(t, snap.SelectedImage)
}

func TestGalleryNextAdvancesOverHTTP(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/gallery/slider/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Changed bool            `json:"changed"`
		State   GallerySnapshot `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, 1, resp.State.CurrentIndex)
	assert.True(t, resp.State.IsAnimating)
}

func TestGalleryPauseOverHTTP(t *testing.T) {
	r, rot := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/gallery/slider/play", `{"playing": false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, rot.car.Snapshot().IsPlaying)
}

func TestOpenLightboxRejectsBadIndex(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/gallery/lightbox", `{"index": 99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/gallery/lightbox", `{"index": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var snap GallerySnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotNil(t, snap.SelectedImage)
	assert.Equal(t, 2, *snap.SelectedImage)
}

func TestScriptureSliderSnapshot(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/scriptures/slider", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap ScriptureSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Scriptures, 1)
	assert.Equal(t, "John 3:16", snap.Scriptures[0].Reference)
}
