// Package server exposes the relay over HTTP.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/valpere/perelay/internal/languages"
	"github.com/valpere/perelay/internal/relay"
	"github.com/valpere/perelay/internal/translator"
)

type Server struct {
	relay          *relay.Relay
	service        translator.TranslationService
	allowedOrigins []string
}

func New(service translator.TranslationService, rl *relay.Relay, allowedOrigins []string) *Server {
	return &Server{
		relay:          rl,
		service:        service,
		allowedOrigins: allowedOrigins,
	}
}

// Handler builds the gin engine with middleware and routes attached.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())
	r.Use(cors.New(s.corsConfig()))

	api := r.Group("/api")
	api.POST("/translate", s.handleTranslate)
	api.GET("/health", s.handleHealth)
	api.GET("/languages", s.handleLanguages)

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "Authorization", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	if len(s.allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = s.allowedOrigins
	config.AllowCredentials = true
	return config
}

// translatePayload uses pointers so that a missing field can be told apart
// from an empty string.
type translatePayload struct {
	SourceLang *string `json:"source_lang" binding:"required"`
	TargetLang *string `json:"target_lang" binding:"required"`
	Text       *string `json:"text" binding:"required"`
}

// POST /api/translate
func (s *Server) handleTranslate(c *gin.Context) {
	var p translatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	req := relay.Request{
		SourceLang: *p.SourceLang,
		TargetLang: *p.TargetLang,
		Text:       *p.Text,
	}

	// The outbound call is bounded by the relay timeout only.
	ctx := context.WithoutCancel(c.Request.Context())
	resp := s.relay.Translate(ctx, req)
	if resp.Failed() {
		log.Printf("[%s] translate %s->%s via %s failed: %s",
			RequestIDFromContext(c), req.SourceLang, req.TargetLang, s.relay.ServiceName(), *resp.Error)
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/languages
func (s *Server) handleLanguages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	codes, err := s.service.SupportedLanguages(ctx)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"provider":  s.service.Name(),
			"languages": []languages.Language{},
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":  s.service.Name(),
		"languages": languages.Describe(codes),
	})
}
