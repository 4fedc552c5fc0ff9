package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-saas/internal/dto"
	"github.com/BruksfildServices01/gym-saas/internal/httpresp"
	ucAuditLog "github.com/BruksfildServices01/gym-saas/internal/usecase/auditlog"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *ucAuditLog.ListAuditLogs
}

func NewAuditLogsHandler(list *ucAuditLog.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List supports ?action&entity&from&to&page&limit, always scoped to the
// caller's gym.
func (h *AuditLogsHandler) List(c *gin.Context) {
	gymID, err := tenant(c)
	if err != nil {
		fail(c, err)
		return
	}

	page := dto.ParsePage(c.Query("page"), c.Query("limit"), 50, 200)

	logs, total, err := h.list.Execute(c.Request.Context(), gymID, ucAuditLog.ListAuditLogsInput{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Offset: page.Offset(),
		Limit:  page.Limit,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "", logs, httpresp.NewPagination(page.Page, page.Limit, total))
}
