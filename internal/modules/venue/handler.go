package venue

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gigbook/internal/pkg/flash"
	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.List)
	rg.POST("/venues/search", h.Search)
	rg.GET("/venues/create", h.CreateForm)
	rg.POST("/venues/create", h.Create)
	rg.GET("/venues/:id", h.Show)
	rg.DELETE("/venues/:id", h.Delete)
	rg.GET("/venues/:id/edit", h.EditForm)
	rg.POST("/venues/:id/edit", h.Edit)
}

func (h *Handler) List(c *gin.Context) {
	areas, err := h.service.ListByArea(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "venues.html", gin.H{
		"areas":   areas,
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
	c.HTML(http.StatusOK, "search_venues.html", gin.H{
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
	c.HTML(http.StatusOK, "show_venue.html", gin.H{
		"venue":   page,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) CreateForm(c *gin.Context) {
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "new_venue.html", gin.H{
		"genres":  genres,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var f Form
	_ = c.ShouldBind(&f)
	f.Trim()

	if err := h.service.Create(c.Request.Context(), f); err != nil {
		flash.Add(c, "An error occurred. Venue "+f.Name+" could not be listed.")
		c.Redirect(http.StatusFound, "/venues/create")
		return
	}

	flash.Add(c, "Venue "+f.Name+" was successfully listed!")
	c.HTML(http.StatusOK, "home.html", gin.H{"flashes": flash.Take(c)})
}

// Delete is the one JSON endpoint: {"deleted": true} on success, a 500
// status on any failure (unknown id included).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An error occurred. Venue could not be deleted.")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrInUse) {
			log.Warn().Err(err).Int64("venue_id", id).Msg("venue delete blocked by booked shows")
			response.Error(c, http.StatusInternalServerError, "VENUE_IN_USE", "An error occurred. Venue has shows booked and could not be deleted.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An error occurred. Venue could not be deleted.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
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
	c.HTML(http.StatusOK, "edit_venue.html", gin.H{
		"venue":  form,
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
	c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}
