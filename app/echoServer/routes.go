package echoServer

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/galzit0/api-livros/app/echoServer/controller/livro"
)

// AdminAuthority is the role required by the catalog management endpoints.
const AdminAuthority = "Administrador"

type C struct {
	Livro *livro.Controller

	JWTSecret     string
	OAuthClientID string
}

func Register(e *echo.Echo, c C) {
	g := e.Group("/livro")

	// Bearer token verification, then role extraction for this client.
	g.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization:Bearer ",
	}))
	g.Use(Authorities(c.OAuthClientID))

	admin := RequireAuthority(AdminAuthority)

	g.GET("/getAll", c.Livro.GetAll, admin)
	g.GET("/getAllPage", c.Livro.GetAllPage, admin)
	g.GET("/get/:id", c.Livro.Get, admin)
	g.POST("/save", c.Livro.Save, admin)
	g.PUT("/update/:id", c.Livro.Update, admin)
	g.DELETE("/delete/:id", c.Livro.Delete, admin)

	// Any authenticated user may rent or return.
	g.PUT("/alugar/:id", c.Livro.Alugar)
	g.PUT("/devolver/:id", c.Livro.Devolver)
}
