package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/middleware"
	"gigbook/internal/modules/artist"
	"gigbook/internal/modules/show"
	"gigbook/internal/modules/venue"
	"gigbook/internal/pkg/flash"
	"gigbook/internal/pkg/logger"
	"gigbook/internal/pkg/response"
	"gigbook/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
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

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(sessions.Sessions("gigbook_session", cookie.NewStore([]byte(cfg.SessionSecret))))
	r.LoadHTMLGlob("web/templates/*.html")

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

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
