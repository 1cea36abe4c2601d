package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func webRouter(t *testing.T) *gin.Engine {
	db := setupTestDB(t)
	h := NewWebHandler(db)

	r := newTestRouter()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	r.GET("/", h.Index)
	r.POST("/add", h.AddSong)
	r.GET("/play", h.Play)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebAddSongRedirects(t *testing.T) {
	r := webRouter(t)

	w := postForm(r, "/add", url.Values{
		"title":      {"Trans-Europe Express"},
		"youtube_id": {"XMVokhBMqKs"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 (body: %s)", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}

	w = doJSON(t, r, "GET", "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("index status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Trans-Europe Express") {
		t.Error("index page does not list the added song")
	}
}

func TestWebAddSongMissingFields(t *testing.T) {
	r := webRouter(t)

	w := postForm(r, "/add", url.Values{"title": {"No Link"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestWebPlay(t *testing.T) {
	r := webRouter(t)

	for i := 0; i < 5; i++ {
		w := postForm(r, "/add", url.Values{
			"title":      {"Filler"},
			"youtube_id": {"fill0000"},
		})
		if w.Code != http.StatusFound {
			t.Fatalf("seed add failed with %d", w.Code)
		}
	}

	w := doJSON(t, r, "GET", "/play?num=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if got := strings.Count(w.Body.String(), "Filler"); got != 2 {
		t.Errorf("play page lists %d songs, want 2", got)
	}

	w = doJSON(t, r, "GET", "/play?num=lots", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for non-numeric num", w.Code)
	}
}
