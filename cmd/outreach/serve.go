package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"

	"github.com/xavierca1/outreach-engine/internal/config"
	"github.com/xavierca1/outreach-engine/internal/infra/gmail"
	"github.com/xavierca1/outreach-engine/internal/infra/http/handlers"
	"github.com/xavierca1/outreach-engine/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-engine/internal/infra/places"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
	"github.com/xavierca1/outreach-engine/internal/infra/worker"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor HTTP com scheduler e worker de ingestão",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		// 1. Row store (planilha) — obrigatório para qualquer ciclo
		store, err := newRowStore(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(1)
		}

		gmailClient := gmail.NewClient(cfg.GoogleToken)

		delivery, err := newDelivery(cfg, gmailClient)
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(1)
		}

		// 2. Run log (opcional)
		runLog, db := openRunLog(cfg)
		if db != nil {
			defer db.Close()
		}

		// 3. Fila de ingestão de prospects (opcional)
		var producer usecase.QueueProducerInterface
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, ingestão de prospects desativada: %v", err)
			rabbit = nil
		} else {
			defer rabbit.Conn.Close()
			defer rabbit.Ch.Close()
			producer = queue.NewProducer(rabbit.Conn, rabbit.Ch)

			ingestWorker := queue.NewIngestWorker(rabbit.Ch, store)
			go ingestWorker.Start(queue.QueueName)
		}

		// 4. UseCases
		checkRepliesUC := usecase.NewCheckRepliesUseCase(store, gmailClient, runLog)
		followUpsUC := usecase.NewFollowUpUseCase(store, delivery, runLog)
		findProspectsUC := usecase.NewFindProspectsUseCase(
			places.NewClient(cfg.SerpAPIKey), producer, cfg.ProspectsPath,
		)

		// 5. Scheduler: roda os dois ciclos na cadência configurada
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		scheduler := worker.NewScheduler(checkRepliesUC, followUpsUC, cfg.SchedulerInterval)
		go scheduler.Start(ctx)

		// 6. Handlers
		cycleHandler := handlers.NewCycleHandler(checkRepliesUC, followUpsUC)
		prospectHandler := handlers.NewProspectHandler(findProspectsUC)

		healthHandler := handlers.NewHealthHandler(
			db, rabbitConnOrNil(rabbit),
			cfg.SheetID != "", cfg.GoogleToken != "", cfg.SerpAPIKey != "",
		)

		// 7. Router
		r := chi.NewRouter()
		r.Use(chimiddleware.Logger)
		r.Use(middleware.Metrics)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		}))

		r.Post("/cycles/replies", cycleHandler.HandleCheckReplies)
		r.Post("/cycles/followups", cycleHandler.HandleFollowUps)
		r.Post("/prospects/search", prospectHandler.HandleSearch)
		r.Get("/health", healthHandler.Handle)
		r.Handle("/metrics", promhttp.Handler())

		addr := ":" + cfg.Port
		log.Printf("🔥 Outreach engine rodando na porta %s", addr)
		return http.ListenAndServe(addr, r)
	},
}

func rabbitConnOrNil(r *queue.RabbitMQ) *amqp091.Connection {
	if r == nil {
		return nil
	}
	return r.Conn
}
