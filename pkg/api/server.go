// Package api exposes the HTTP surface: document upload and lifecycle,
// webhook configuration, and health.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/database"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// Server holds the handlers' dependencies.
type Server struct {
	db       *database.Client
	docs     *services.DocumentService
	webhooks *services.WebhookService
	engine   *webhook.Engine
	blobs    *blob.Store
	queue    *queue.Service
	pool     *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(db *database.Client, docs *services.DocumentService, webhooks *services.WebhookService, engine *webhook.Engine, blobs *blob.Store, q *queue.Service, pool *queue.WorkerPool) *Server {
	return &Server{
		db:       db,
		docs:     docs,
		webhooks: webhooks,
		engine:   engine,
		blobs:    blobs,
		queue:    q,
		pool:     pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/documents", s.uploadDocumentHandler)
		v1.GET("/documents", s.listDocumentsHandler)
		v1.GET("/documents/:id", s.getDocumentHandler)
		v1.DELETE("/documents/:id", s.deleteDocumentHandler)
		v1.POST("/documents/:id/retry", s.retryDocumentHandler)

		v1.GET("/orgs/:id/webhook", s.getWebhookHandler)
		v1.PUT("/orgs/:id/webhook", s.putWebhookHandler)
		v1.POST("/orgs/:id/webhook/test", s.testWebhookHandler)
	}

	return r
}
