package api

import (
	"encoding/base64"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// maxUploadBytes bounds a decoded upload.
const maxUploadBytes = 256 << 20 // 256 MiB

// UploadDocumentRequest is the body of POST /api/v1/documents.
type UploadDocumentRequest struct {
	OrganizationID string   `json:"organization_id" binding:"required"`
	FileName       string   `json:"file_name" binding:"required"`
	ContentBase64  string   `json:"content_base64" binding:"required"`
	TagIDs         []string `json:"tag_ids"`
}

// DocumentResponse is the JSON view of a document row.
type DocumentResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserFileName   string    `json:"user_file_name"`
	StoredFileName string    `json:"stored_file_name"`
	PDFFileName    string    `json:"pdf_file_name"`
	TagIDs         []string  `json:"tag_ids,omitempty"`
	State          string    `json:"state"`
	StateUpdatedAt time.Time `json:"state_updated_at"`
	UploadDate     time.Time `json:"upload_date"`
}

func toDocumentResponse(doc *ent.Document) DocumentResponse {
	return DocumentResponse{
		ID:             doc.ID,
		OrganizationID: doc.OrganizationID,
		UserFileName:   doc.UserFileName,
		StoredFileName: doc.StoredFileName,
		PDFFileName:    doc.PdfFileName,
		TagIDs:         doc.TagIds,
		State:          string(doc.State),
		StateUpdatedAt: doc.StateUpdatedAt,
		UploadDate:     doc.UploadDate,
	}
}

// uploadDocumentHandler handles POST /api/v1/documents: stores the
// file, creates the document row, emits document.uploaded, and enqueues
// the ocr stage.
func (s *Server) uploadDocumentHandler(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_base64 is not valid base64"})
		return
	}
	if len(content) == 0 || len(content) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content must be between 1 byte and 256 MiB"})
		return
	}

	ctx := c.Request.Context()

	// Stored names derive from the id so re-uploads of the same user
	// file name never collide.
	id := models.NewDocumentID()
	doc, err := s.docs.Create(ctx, services.CreateDocumentRequest{
		ID:             id,
		OrganizationID: req.OrganizationID,
		UserFileName:   req.FileName,
		StoredFileName: id + filepath.Ext(req.FileName),
		PDFFileName:    id + ".pdf",
		TagIDs:         req.TagIDs,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if err := s.blobs.Put(ctx, blob.BucketDocuments, blob.KeyOriginal(doc.ID), content, map[string]string{
		"file_name": req.FileName,
	}); err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.engine.Publish(ctx, req.OrganizationID, webhook.EventDocumentUploaded, doc.ID,
		map[string]interface{}{"user_file_name": req.FileName}); err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.queue.Send(ctx, models.QueueOCR, models.DocumentTask{DocumentID: doc.ID}.Payload()); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// getDocumentHandler handles GET /api/v1/documents/:id.
func (s *Server) getDocumentHandler(c *gin.Context) {
	doc, err := s.docs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// listDocumentsHandler handles GET /api/v1/documents.
func (s *Server) listDocumentsHandler(c *gin.Context) {
	orgID := c.Query("organization_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}

	skip := 0
	limit := 25
	if v := c.Query("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	docs, total, err := s.docs.List(c.Request.Context(), orgID, skip, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = toDocumentResponse(d)
	}
	c.JSON(http.StatusOK, gin.H{
		"documents": out,
		"total":     total,
		"skip":      skip,
		"limit":     limit,
	})
}

// deleteDocumentHandler handles DELETE /api/v1/documents/:id.
func (s *Server) deleteDocumentHandler(c *gin.Context) {
	if err := s.docs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// retryDocumentHandler handles POST /api/v1/documents/:id/retry: forces
// a fresh run of the document's current pipeline stage. A document stuck
// in llm_failed re-enters the llm stage, not ocr — downstream failed
// states have no edge back into ocr_processing.
func (s *Server) retryDocumentHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	retryQueue := models.RetryQueue(string(doc.State))
	if _, err := s.queue.Send(ctx, retryQueue, models.DocumentTask{DocumentID: id, Force: true}.Payload()); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "retry enqueued"})
}
