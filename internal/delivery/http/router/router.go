// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medlink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HospitalHandler *handler.HospitalHandler
	PatientHandler  *handler.PatientHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	hospitalHandler *handler.HospitalHandler
	patientHandler  *handler.PatientHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		hospitalHandler: params.HospitalHandler,
		patientHandler:  params.PatientHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", handler.Home)
	e.GET("/home", handler.Home)
	e.GET("/about", handler.About)

	// Hospital routes
	e.GET("/hospitalHome", r.hospitalHandler.Home)
	e.GET("/hospitalLogin", r.hospitalHandler.LoginPage)
	e.POST("/hospitalLogin", r.hospitalHandler.Login)
	e.GET("/hospitalRegister", r.hospitalHandler.RegisterPage)
	e.POST("/hospitalRegister", r.hospitalHandler.Register)
	e.GET("/hospitalLogout", r.hospitalHandler.Logout)
	// The search form posts, but a GET with ?userId= performs the same lookup.
	e.GET("/search", r.hospitalHandler.Search)
	e.POST("/search", r.hospitalHandler.Search)

	// Patient routes, kept under the historical /user* paths
	e.GET("/userHome", r.patientHandler.Home)
	e.GET("/userLogin", r.patientHandler.LoginPage)
	e.POST("/userLogin", r.patientHandler.Login)
	e.GET("/userRegister", r.patientHandler.RegisterPage)
	e.POST("/userRegister", r.patientHandler.Register)
	e.GET("/userLogout", r.patientHandler.Logout)
	e.GET("/userEdit/:id", r.patientHandler.EditPage)
	e.PUT("/userEdit/:id", r.patientHandler.Update)
}
