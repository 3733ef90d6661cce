package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xavierca1/outreach-engine/internal/config"
	"github.com/xavierca1/outreach-engine/internal/infra/places"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

var (
	prospectCity  string
	prospectLimit int
)

var findProspectsCmd = &cobra.Command{
	Use:   "find-prospects",
	Short: "Busca negócios locais qualificados e alimenta o pipeline de ingestão",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		// A fila é opcional no modo CLI: sem RabbitMQ os prospects ainda
		// vão para o arquivo Markdown.
		var producer usecase.QueueProducerInterface
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			log.Printf("⚠️ Fila indisponível, seguindo só com o Markdown: %v", err)
		} else {
			defer rabbit.Conn.Close()
			defer rabbit.Ch.Close()
			producer = queue.NewProducer(rabbit.Conn, rabbit.Ch)
		}

		uc := usecase.NewFindProspectsUseCase(
			places.NewClient(cfg.SerpAPIKey),
			producer,
			cfg.ProspectsPath,
		)

		input := usecase.FindProspectsInput{City: prospectCity, Limit: prospectLimit}
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "find-prospects:", err)
			os.Exit(1)
		}

		fmt.Printf("✓ %d prospect(s) qualificados salvos em %s\n", output.Found, cfg.ProspectsPath)
		return nil
	},
}

func init() {
	findProspectsCmd.Flags().StringVar(&prospectCity, "city", "", "cidade alvo (ex: 'Las Vegas, NV')")
	findProspectsCmd.Flags().IntVar(&prospectLimit, "limit", 10, "máximo de prospects por execução")
	findProspectsCmd.MarkFlagRequired("city")
}
