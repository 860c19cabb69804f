package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/repository"
)

type ProductController struct {
	Products repository.ProductRepository
	Logger   *zap.Logger
}

func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Products.List()
	if err != nil {
		pc.Logger.Error("Failed to load catalog", zap.Error(err))
		apperrors.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
