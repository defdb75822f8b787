package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/validation"
)

var reportCSV bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Relatórios de agendamentos por período ou turno",
}

var reportIntervalCmd = &cobra.Command{
	Use:   "interval <início> <fim>",
	Short: "Conta agendamentos por categoria em um intervalo de datas",
	Args:  cobra.ExactArgs(2),
	RunE:  runReportInterval,
}

var reportShiftCmd = &cobra.Command{
	Use:   "shift <data>",
	Short: "Divide os agendamentos de um dia por turno",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportShift,
}

func init() {
	reportCmd.PersistentFlags().BoolVar(&reportCSV, "csv", false, "grava o relatório em CSV no diretório configurado")
	reportCmd.AddCommand(reportIntervalCmd)
	reportCmd.AddCommand(reportShiftCmd)
}

func runReportInterval(cmd *cobra.Command, args []string) error {
	start, err := validation.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("data inicial inválida %q: use AAAA-MM-DD ou DD/MM/AAAA", args[0])
	}
	end, err := validation.ParseDate(args[1])
	if err != nil {
		return fmt.Errorf("data final inválida %q: use AAAA-MM-DD ou DD/MM/AAAA", args[1])
	}
	if end.Before(start) {
		return fmt.Errorf("data final anterior à inicial")
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

	if reportCSV {
		path, err := a.reports.WriteIntervalCSV(ctx, start, end)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	rep, err := a.reports.Interval(ctx, start, end)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Agendamentos de %s a %s\n",
		start.Format(domain.DateFormatBR), end.Format(domain.DateFormatBR))
	for _, c := range rep.Counts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %d\n", c.Category, c.Count)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %d\n", "total", rep.Total)
	return nil
}

func runReportShift(cmd *cobra.Command, args []string) error {
	date, err := validation.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("data inválida %q: use AAAA-MM-DD ou DD/MM/AAAA", args[0])
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

	if reportCSV {
		path, err := a.reports.WriteShiftCSV(ctx, date)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	rep, err := a.reports.Shift(ctx, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Agendamentos de %s por turno\n", date.Format(domain.DateFormatBR))
	fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %-7s %s\n", "categoria", "manhã", "tarde")
	for _, c := range rep.Counts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %-7d %d\n", c.Category, c.Morning, c.Afternoon)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %-7d %d\n", "total", rep.TotalMorning, rep.TotalAfternoon)
	return nil
}
