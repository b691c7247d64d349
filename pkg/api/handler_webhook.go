package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// getWebhookHandler handles GET /api/v1/orgs/:id/webhook.
func (s *Server) getWebhookHandler(c *gin.Context) {
	settings, err := s.webhooks.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "webhook not configured"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// putWebhookHandler handles PUT /api/v1/orgs/:id/webhook. The response
// carries generated_secret exactly once, when a new signing secret was
// created.
func (s *Server) putWebhookHandler(c *gin.Context) {
	var req services.UpsertWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := s.webhooks.Upsert(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// testWebhookHandler handles POST /api/v1/orgs/:id/webhook/test: emits
// a webhook.test event through the normal delivery path.
func (s *Server) testWebhookHandler(c *gin.Context) {
	orgID := c.Param("id")

	deliveryID, err := s.engine.Publish(c.Request.Context(), orgID, webhook.EventTest, "",
		map[string]interface{}{"note": "webhook test"})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if deliveryID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "webhook is not enabled for this organization"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"delivery_id": deliveryID})
}
