package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()
	commentHandler := handler.GetCommentHandler()

	e.GET("/v1/posts", postHandler.ListPosts)
	e.GET("/v1/posts/search", postHandler.SearchPosts)
	e.GET("/v1/posts/:id", postHandler.GetPost)
	e.GET("/v1/posts/:id/comments", commentHandler.ListByPost)
	e.GET("/v1/posts/:id/comments/count", postHandler.CommentCount)

	posts := e.Group("/v1/posts")
	posts.Use(authMiddleware.Authenticate)
	posts.POST("", postHandler.CreatePost)
	posts.PATCH("/:id/vote", postHandler.Vote)
	posts.DELETE("/:id", postHandler.DeletePost)
}
