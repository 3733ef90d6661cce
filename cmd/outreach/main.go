// Package main provides the outreach CLI: prospecção, verificação de
// respostas e follow-ups da campanha de cold outreach, num binário só.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Engine de cold outreach para leads de negócios locais",
	Long: `Outreach automatiza o ciclo de vida de leads de cold email:
encontra prospects qualificados, detecta respostas na caixa de entrada
e agenda follow-ups com base no tempo desde o último contato. O estado
de cada lead vive numa planilha (Google Sheets).`,
}

func init() {
	rootCmd.AddCommand(checkRepliesCmd)
	rootCmd.AddCommand(followUpsCmd)
	rootCmd.AddCommand(findProspectsCmd)
	rootCmd.AddCommand(serveCmd)
}
