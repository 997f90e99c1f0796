package document

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/documents")
	{
		docs.GET("", h.List)
		docs.DELETE("/:id", h.Delete)
		docs.POST("/upload", h.Upload)
		docs.GET("/upload", h.List)
		docs.DELETE("/upload", h.Delete)
	}
}
