package router

import "github.com/gin-gonic/gin"

func (r *Router) customerRoutes(version *gin.RouterGroup) {
	customers := version.Group("/customers")
	{
		customers.GET("", r.customerHandler.List)
		customers.GET("/:id", r.customerHandler.GetByID)
		customers.POST("", r.jwtMw.RequireAuth(), r.customerHandler.Create)
	}
}
