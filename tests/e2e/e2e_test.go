package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gigbook/internal/database"
	"gigbook/internal/domain"
	"gigbook/internal/modules/artist"
	"gigbook/internal/modules/show"
	"gigbook/internal/modules/venue"
	"gigbook/internal/pkg/flash"
	"gigbook/internal/pkg/response"
	"gigbook/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Details{},
		&domain.Genre{},
		&domain.Venue{},
		&domain.Artist{},
		&domain.Show{},
	))

	for _, name := range []string{"Jazz", "Classical", "Folk", "Rock n Roll"} {
		require.NoError(t, db.Create(&domain.Genre{Name: name}).Error)
	}

	uow := repository.NewUnitOfWork(db)
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	detailsRepo := repository.NewDetailsRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueHandler := venue.NewHandler(venue.NewService(uow, venueRepo, artistRepo, detailsRepo, genreRepo))
	artistHandler := artist.NewHandler(artist.NewService(uow, artistRepo, venueRepo, detailsRepo, genreRepo))
	showHandler := show.NewHandler(show.NewService(uow, showRepo, artistRepo, venueRepo))

	r := gin.New()
	r.Use(sessions.Sessions("gigbook_session", cookie.NewStore([]byte("test-secret"))))
	r.LoadHTMLGlob("../../web/templates/*.html")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{"flashes": flash.Take(c)})
	})
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	venueHandler.RegisterRoutes(&r.RouterGroup)
	artistHandler.RegisterRoutes(&r.RouterGroup)
	showHandler.RegisterRoutes(&r.RouterGroup)

	r.NoRoute(response.NotFoundPage)

	return r, db
}

func doForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHomePage(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gigbook")
}

func TestVenueLifecycle(t *testing.T) {
	r, db := setupRouter(t)

	// create
	w := doForm(r, "/venues/create", url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom Street"},
		"phone":         {"123-123-1234"},
		"facebook_link": {"https://www.facebook.com/TheMusicalHop"},
		"genres":        {"Jazz", "Folk"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully listed!")

	var v domain.Venue
	require.NoError(t, db.First(&v).Error)

	// listing groups by area
	w = doGet(r, "/venues")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "San Francisco")
	assert.Contains(t, w.Body.String(), "The Musical Hop")

	// detail page
	w = doGet(r, "/venues/1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Jazz")
	assert.Contains(t, body, "123-123-1234")

	// edit overwrites the form-carried fields and redirects back
	w = doForm(r, "/venues/1/edit", url.Values{
		"name":   {"The Musical Hop II"},
		"city":   {"Oakland"},
		"state":  {"CA"},
		"phone":  {"555-0001"},
		"genres": {"Classical"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/venues/1", w.Header().Get("Location"))

	w = doGet(r, "/venues/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Musical Hop II")
	assert.Contains(t, w.Body.String(), "Oakland")

	// delete is the JSON endpoint
	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.True(t, deleted.Deleted)

	var count int64
	db.Model(&domain.Venue{}).Count(&count)
	assert.Zero(t, count)
}

func TestVenueCreate_UnknownGenreFlashesError(t *testing.T) {
	r, db := setupRouter(t)

	w := doForm(r, "/venues/create", url.Values{
		"name":   {"Doomed"},
		"city":   {"Nowhere"},
		"state":  {"NA"},
		"genres": {"Polka"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/venues/create", w.Header().Get("Location"))

	var count int64
	db.Model(&domain.Venue{}).Count(&count)
	assert.Zero(t, count)
}

func TestVenuePage_UnknownIDShowsSentinel(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/venues/999")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), venue.NotFoundMarker)
}

func TestVenueRoutes_NonNumericID(t *testing.T) {
	r, _ := setupRouter(t)

	// page routes fall through to the 404 page
	w := doGet(r, "/venues/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the delete endpoint answers JSON with a 500
	req := httptest.NewRequest(http.MethodDelete, "/venues/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVenueDelete_UnknownID(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/venues/4242", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVenueSearch(t *testing.T) {
	r, _ := setupRouter(t)

	doForm(r, "/venues/create", url.Values{
		"name": {"Park Square Live Music"}, "city": {"San Francisco"}, "state": {"CA"},
	})

	w := doForm(r, "/venues/search", url.Values{"search_term": {"PARK"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Park Square Live Music")

	w = doForm(r, "/venues/search", url.Values{"search_term": {"nothing-like-this"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Park Square Live Music")
}

func TestArtistLifecycle(t *testing.T) {
	r, db := setupRouter(t)

	w := doForm(r, "/artists/create", url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artist Guns N Petals was successfully listed!")

	w = doGet(r, "/artists")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Guns N Petals")

	w = doGet(r, "/artists/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rock n Roll")

	w = doForm(r, "/artists/1/edit", url.Values{
		"name": {"Guns N Petals"}, "city": {"Oakland"}, "state": {"CA"}, "genres": {"Jazz"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/artists/1", w.Header().Get("Location"))

	var associations int64
	db.Table("artist_genres").Count(&associations)
	assert.EqualValues(t, 1, associations)
}

func TestArtistPage_UnknownIDShowsSentinel(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/artists/999")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), artist.NotFoundMarker)
}

func TestArtistEditForm_UnknownIDIsServerError(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/artists/999/edit")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestShowLifecycle(t *testing.T) {
	r, db := setupRouter(t)

	doForm(r, "/venues/create", url.Values{"name": {"The Musical Hop"}, "city": {"San Francisco"}, "state": {"CA"}})
	doForm(r, "/artists/create", url.Values{"name": {"Guns N Petals"}, "city": {"San Francisco"}, "state": {"CA"}})

	start := time.Now().AddDate(0, 1, 0).Format("2006-01-02 15:04:05")
	w := doForm(r, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {start},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show was successfully listed!")

	var sh domain.Show
	require.NoError(t, db.First(&sh).Error)
	assert.True(t, sh.Upcoming)

	w = doGet(r, "/shows")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Guns N Petals")
	assert.Contains(t, w.Body.String(), "The Musical Hop")

	// the stored flag drives the partition on the venue page
	w = doGet(r, "/venues/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 Upcoming Shows")

	// the booked show blocks the venue delete on the foreign key
	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "VENUE_IN_USE")

	var venues int64
	db.Model(&domain.Venue{}).Count(&venues)
	assert.EqualValues(t, 1, venues)
}

func TestShowCreate_BadInputRedirectsBack(t *testing.T) {
	r, db := setupRouter(t)

	w := doForm(r, "/shows/create", url.Values{
		"artist_id": {"abc"}, "venue_id": {"1"}, "start_time": {"2030-01-01 20:00:00"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/shows/create", w.Header().Get("Location"))

	var count int64
	db.Model(&domain.Show{}).Count(&count)
	assert.Zero(t, count)
}

func TestUnknownRouteIs404Page(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGet(r, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
