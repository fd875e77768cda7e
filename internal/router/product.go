package router

import "github.com/gin-gonic/gin"

func (r *Router) productRoutes(version *gin.RouterGroup) {
	products := version.Group("/products")
	{
		products.GET("", r.productHandler.List)
		products.GET("/:id", r.productHandler.GetByID)
		products.POST("", r.jwtMw.RequireAuth(), r.productHandler.Create)
	}
}
