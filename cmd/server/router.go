package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/contactbook/internal/handlers"
)

func APIEndpoints(
	r *gin.Engine,
	authH *handlers.AuthHandler,
	contactsH *handlers.ContactsHandler,
	usersH *handlers.UserHandler,
	requireAuth gin.HandlerFunc,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Contact book API"})
	})

	api := r.Group("/api")

	// Auth endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.GET("/refresh_token", authH.RefreshToken)
		auth.GET("/confirmed_email/:token", authH.ConfirmedEmail)
		auth.POST("/request_email", authH.RequestEmail)
	}

	// Contact endpoints
	contacts := api.Group("/contacts", requireAuth)
	{
		contacts.GET("", contactsH.List)
		contacts.GET("/first_name/:first_name", contactsH.GetByFirstName)
		contacts.GET("/last_name/:last_name", contactsH.GetByLastName)
		contacts.GET("/email/:email", contactsH.GetByEmail)
		contacts.GET("/upcoming_birthday", contactsH.UpcomingBirthdays)
		contacts.POST("", contactsH.Create)
		contacts.PUT("/:id", contactsH.Update)
		contacts.DELETE("/:id", contactsH.Delete)
	}

	// User endpoints
	users := api.Group("/users", requireAuth)
	{
		users.GET("/me", usersH.GetMe)
		users.PATCH("/avatar", usersH.UpdateAvatar)
	}
}
