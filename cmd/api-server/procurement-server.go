package main

import (
	"log"
	"net/http"

	"procurement/db"
	"procurement/db/migrations"
	"procurement/internal/config"
	"procurement/internal/handlers"
	"procurement/internal/llm"
	"procurement/internal/logger"
	"procurement/internal/mail"
	"procurement/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.Init(cfg)
	defer zlog.Sync()

	conn, err := sqlx.Connect("postgres", cfg.DB.ConnString)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	migrations.Run(cfg.DB.ConnString, cfg.DB.MigrationsDir)

	store := db.NewStorage(conn)
	gateway := llm.NewService(llm.NewClient(cfg.LLM, zlog))
	sender := mail.NewSender(cfg.SMTP)
	receiver := mail.NewReceiver(cfg.IMAP, zlog)
	handler := handlers.NewHandler(store, gateway, sender, receiver, zlog)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handler.PingHandler)

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/new", handler.CreateVendorHandler)
			r.Get("/", handler.GetVendorsHandler)
			r.Get("/active", handler.GetActiveVendorsHandler)
			r.Get("/{vendorId}", handler.GetVendorHandler)
			r.Patch("/{vendorId}/edit", handler.EditVendorHandler)
			r.Post("/{vendorId}/toggle_active", handler.ToggleVendorActiveHandler)
			r.Delete("/{vendorId}", handler.DeleteVendorHandler)
		})

		r.Route("/rfps", func(r chi.Router) {
			r.Post("/new", handler.CreateRFPHandler)
			r.Post("/from_text", handler.CreateRFPFromTextHandler)
			r.Get("/", handler.GetRFPsHandler)
			r.Get("/{rfpId}", handler.GetRFPHandler)
			r.Patch("/{rfpId}/edit", handler.EditRFPHandler)
			r.Post("/{rfpId}/send", handler.SendRFPToVendorsHandler)
			r.Post("/{rfpId}/award", handler.AwardRFPHandler)
			r.Post("/{rfpId}/close", handler.CloseRFPHandler)
			r.Delete("/{rfpId}", handler.DeleteRFPHandler)
		})

		r.Route("/proposals", func(r chi.Router) {
			r.Post("/new", handler.CreateProposalHandler)
			r.Get("/", handler.GetProposalsHandler)
			r.Post("/evaluate", handler.EvaluateProposalsHandler)
			r.Get("/{proposalId}", handler.GetProposalHandler)
			r.Post("/{proposalId}/parse", handler.ParseProposalHandler)
			r.Put("/{proposalId}/status", handler.UpdateProposalStatusHandler)
			r.Delete("/{proposalId}", handler.DeleteProposalHandler)
		})

		r.Post("/inbox/check", handler.CheckInboxHandler)
		r.Post("/email/send_rfp", handler.SendRFPHandler)

		r.Route("/ai", func(r chi.Router) {
			r.Post("/parse_rfp", handler.ParseNaturalLanguageHandler)
			r.Post("/parse_proposal", handler.ParseProposalContentHandler)
			r.Post("/evaluate", handler.EvaluateProposalsAIHandler)
		})
	})

	zlog.Info("starting server", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
