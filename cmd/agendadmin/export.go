package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fcja/agendamentos/internal/domain"
)

var (
	exportAll    bool
	exportFormat string
	exportLimit  uint64
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [tabela]",
	Short: "Exporta agendamentos em CSV ou JSON",
	Long: `Exporta os registros de uma categoria para a saída padrão ou arquivo.
Com --all, grava um arquivo <tabela>_completo.<formato> por categoria.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "exporta todas as categorias para arquivos")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "formato de saída: csv ou json")
	exportCmd.Flags().Uint64Var(&exportLimit, "limit", 0, "limita a quantidade de registros (0 = padrão)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "diretório de destino com --all, ou arquivo de saída")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("formato desconhecido %q: use csv ou json", exportFormat)
	}
	if !exportAll && len(args) == 0 {
		return fmt.Errorf("informe a tabela a exportar ou use --all")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := cmdContext()
	defer cancel()

	if err := requireAuth(ctx, a); err != nil {
		return err
	}

	filter := domain.ListFilter{Limit: exportLimit}

	if exportAll {
		dir := exportOut
		if dir == "" {
			dir = a.cfg.Reports.Dir
		}
		paths, err := a.reports.ExportAll(ctx, dir, exportFormat, filter)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}

	cat, ok := domain.ParseCategory(strings.ToLower(strings.TrimSpace(args[0])))
	if !ok {
		return fmt.Errorf("tabela desconhecida %q; categorias exportáveis: visitante, escola, ies, pesquisador", args[0])
	}

	out := cmd.OutOrStdout()
	if exportOut != "" {
		file, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("criar %s: %w", exportOut, err)
		}
		defer file.Close()
		out = file
	}

	if exportFormat == "json" {
		return a.reports.ExportJSON(ctx, cat, filter, out)
	}
	return a.reports.ExportCSV(ctx, cat, filter, out)
}
