package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xavierca1/outreach-engine/internal/config"
	"github.com/xavierca1/outreach-engine/internal/infra/gmail"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

var followUpsCmd = &cobra.Command{
	Use:   "follow-ups",
	Short: "Cria follow-ups para leads 'Sent' parados há 3+ dias",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		store, err := newRowStore(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "follow-ups:", err)
			os.Exit(1)
		}

		delivery, err := newDelivery(cfg, gmail.NewClient(cfg.GoogleToken))
		if err != nil {
			fmt.Fprintln(os.Stderr, "follow-ups:", err)
			os.Exit(1)
		}

		runLog, db := openRunLog(cfg)
		if db != nil {
			defer db.Close()
		}

		uc := usecase.NewFollowUpUseCase(store, delivery, runLog)

		summary, err := uc.Execute(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, "follow-ups:", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Follow-up concluído: %d rascunho(s), %d revogado(s), %d erro(s)\n",
			summary.Advanced, summary.Revoked, summary.Errors)
		return nil
	},
}
