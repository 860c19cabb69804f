package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/services"
)

// MetricsController exposes a read-only snapshot of the business metrics.
// Route registration gates it behind the admin role.
type MetricsController struct {
	Metrics *services.MetricsService
}

func (mc *MetricsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, mc.Metrics.Snapshot())
}
