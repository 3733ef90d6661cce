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

var checkRepliesCmd = &cobra.Command{
	Use:   "check-replies",
	Short: "Verifica respostas dos leads 'Sent' e marca os respondidos",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		store, err := newRowStore(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "check-replies:", err)
			os.Exit(1)
		}

		runLog, db := openRunLog(cfg)
		if db != nil {
			defer db.Close()
		}

		uc := usecase.NewCheckRepliesUseCase(store, gmail.NewClient(cfg.GoogleToken), runLog)

		summary, err := uc.Execute(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, "check-replies:", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Verificação concluída: %d lead(s) atualizados para 'Replied', %d erro(s)\n",
			summary.Advanced, summary.Errors)
		return nil
	},
}
