package handler

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EntitlementHandler serves update checks and downloads
type EntitlementHandler struct {
	entitlements usecase.EntitlementUseCase
	logger       coreport.Logger
}

// NewEntitlementHandler creates a new entitlement handler instance
func NewEntitlementHandler(entitlements usecase.EntitlementUseCase, logger coreport.Logger) *EntitlementHandler {
	return &EntitlementHandler{
		entitlements: entitlements,
		logger:       logger,
	}
}

// CheckUpdates handles the GET /api/users/:userId/products/:productId/updates endpoint
func (h *EntitlementHandler) CheckUpdates(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	status, err := h.entitlements.CheckUpdates(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"productId": productID,
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// DownloadUpdate handles the GET /api/users/:userId/versions/:versionId/download endpoint
func (h *EntitlementHandler) DownloadUpdate(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}
	versionID, err := parseID(c, "versionId")
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	sink := func(meta entity.FileMeta) (io.Writer, error) {
		c.Header("Content-Type", "application/octet-stream")
		c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": meta.Name}))
		c.Header("Content-Length", strconv.FormatInt(meta.Size, 10))
		c.Status(http.StatusOK)
		return c.Writer, nil
	}

	result, err := h.entitlements.DownloadUpdate(c.Request.Context(), userID, versionID, sink)
	if err != nil {
		if c.Writer.Written() {
			// Body already partially sent; the short Content-Length tells the client
			h.logger.Error("Download interrupted", map[string]any{
				"userId":    userID,
				"versionId": versionID,
				"error":     err.Error(),
			})
			c.Abort()
			return
		}
		for _, header := range []string{"Content-Type", "Content-Disposition", "Content-Length"} {
			c.Writer.Header().Del(header)
		}
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"versionId": versionID,
		})
		return
	}

	if !result.Allowed {
		c.JSON(dto.StatusForDenial(result.Denial.Kind), result)
		return
	}

	h.logger.Info("Update downloaded", map[string]any{
		"userId":    userID,
		"versionId": versionID,
		"version":   result.Version,
		"recordId":  result.RecordID,
		"bytes":     result.BytesSent,
	})
}
