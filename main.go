// Package main livro API.
//
// @title           API Livros
// @version         1.0
// @description     CRUD de livros com aluguel/devolução, Keycloak e RabbitMQ.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/galzit0/api-livros/app/echoServer"
	livroctrl "github.com/galzit0/api-livros/app/echoServer/controller/livro"
	"github.com/galzit0/api-livros/app/echoServer/validation"
	"github.com/galzit0/api-livros/config"
	"github.com/galzit0/api-livros/model"
	livrorepo "github.com/galzit0/api-livros/repository/livro"
	mailrepo "github.com/galzit0/api-livros/repository/mail"
	notifyrepo "github.com/galzit0/api-livros/repository/notify"
	livrosvc "github.com/galzit0/api-livros/service/livro"
	"github.com/galzit0/api-livros/util/database"
)

func main() {

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}
	ctx := context.Background()

	// DB
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Livro{}); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// notification publisher
	var pub notifyrepo.Publisher = notifyrepo.Nop{}
	if cfg.Rabbit.Enabled {
		rb, err := notifyrepo.NewRabbit(cfg.Rabbit.URL)
		if err != nil {
			log.Error("rabbitmq connect failed", "err", err)
			os.Exit(1)
		}
		defer rb.Close()
		pub = rb

		go func() {
			if err := rb.Listen(ctx, log, func(string) {}); err != nil && ctx.Err() == nil {
				log.Warn("queue listener stopped", "err", err)
			}
		}()
	}

	// repos
	lr := livrorepo.New(db)
	mr := mailrepo.New(cfg.Mail)

	// services
	ls := livrosvc.New(lr, pub, mr, cfg.Mail.Enabled, log)

	// controllers
	v := validator.New()
	livroC := &livroctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Livro:         livroC,
		JWTSecret:     cfg.JWTSecret,
		OAuthClientID: cfg.OAuthClientID,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
