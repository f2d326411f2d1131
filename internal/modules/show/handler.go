package show

import (
	"net/http"

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
	rg.GET("/shows", h.List)
	rg.GET("/shows/create", h.CreateForm)
	rg.POST("/shows/create", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	shows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ServerErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "shows.html", gin.H{
		"shows":   shows,
		"flashes": flash.Take(c),
	})
}

func (h *Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_show.html", gin.H{"flashes": flash.Take(c)})
}

func (h *Handler) Create(c *gin.Context) {
	var f Form
	_ = c.ShouldBind(&f)
	f.Trim()

	if err := h.service.Create(c.Request.Context(), f); err != nil {
		flash.Add(c, "An error occurred. Show could not be listed.")
		c.Redirect(http.StatusFound, "/shows/create")
		return
	}

	flash.Add(c, "Show was successfully listed!")
	c.HTML(http.StatusOK, "home.html", gin.H{"flashes": flash.Take(c)})
}
