package artist

import (
	"fmt"
	"net/http"
	"strconv"

	"gigbook/internal/pkg/flash"
	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists", h.List)
	rg.POST("/artists/search", h.Search)
	rg.GET("/artists/create", h.CreateForm)
	rg.POST("/artists/create", h.Create)
	rg.GET("/artists/:id", h.Show)
	rg.GET("/artists/:id/edit", h.EditForm)
	rg.POST("/artists/:id/edit", h.Edit)
}

func (h *Handler) List(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "artists.html", gin.H{
		"artists": artists,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	results, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "search_artists.html", gin.H{
		"results":    results,
		"searchTerm": term,
	})
}

func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFoundPage(c)
		return
	}

	page, err := h.service.GetPage(c.Request.Context(), id)
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "show_artist.html", gin.H{
		"artist":  page,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) CreateForm(c *gin.Context) {
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "new_artist.html", gin.H{
		"genres":  genres,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var f Form
	_ = c.ShouldBind(&f)
	f.Trim()

	if err := h.service.Create(c.Request.Context(), f); err != nil {
		flash.Add(c, "An error occurred. Artist "+f.Name+" could not be listed.")
		c.Redirect(http.StatusFound, "/artists/create")
		return
	}

	flash.Add(c, "Artist "+f.Name+" was successfully listed!")
	c.HTML(http.StatusOK, "home.html", gin.H{"flashes": flash.Take(c)})
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFoundPage(c)
		return
	}

	form, err := h.service.GetEditForm(c.Request.Context(), id)
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "edit_artist.html", gin.H{
		"artist": form,
		"genres": genres,
	})
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFoundPage(c)
		return
	}

	var f Form
	_ = c.ShouldBind(&f)
	f.Trim()

	if err := h.service.Update(c.Request.Context(), id, f); err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}
