package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/validation"
	"github.com/fcja/agendamentos/pkg/ptr"
)

var (
	showLimit  uint64
	showSearch string
	showFrom   string
	showTo     string
)

var showCmd = &cobra.Command{
	Use:   "show <tabela>",
	Short: "Mostra os registros mais recentes de uma tabela",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Uint64Var(&showLimit, "limit", 10, "quantidade de registros")
	showCmd.Flags().StringVar(&showSearch, "search", "", "filtro de texto sobre as colunas de busca da categoria")
	showCmd.Flags().StringVar(&showFrom, "from", "", "data inicial (AAAA-MM-DD ou DD/MM/AAAA)")
	showCmd.Flags().StringVar(&showTo, "to", "", "data final (AAAA-MM-DD ou DD/MM/AAAA)")
}

func showFilter() (domain.ListFilter, error) {
	f := domain.ListFilter{Limit: showLimit, Search: showSearch}
	if showFrom != "" {
		d, err := validation.ParseDate(showFrom)
		if err != nil {
			return f, fmt.Errorf("data inicial inválida %q", showFrom)
		}
		f.StartDate = ptr.Ptr(d)
	}
	if showTo != "" {
		d, err := validation.ParseDate(showTo)
		if err != nil {
			return f, fmt.Errorf("data final inválida %q", showTo)
		}
		f.EndDate = ptr.Ptr(d)
	}
	return f, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	table := strings.ToLower(strings.TrimSpace(args[0]))
	if !knownTable(table) {
		return fmt.Errorf("tabela desconhecida %q; tabelas disponíveis: %s",
			table, strings.Join(domain.AllTables, ", "))
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

	if table == domain.UsersTable {
		return showUsers(ctx, cmd, a)
	}

	filter, err := showFilter()
	if err != nil {
		return err
	}

	cat := domain.Category(table)
	rows, err := a.bookings.Rows(ctx, cat, filter)
	if err != nil {
		return err
	}

	cols := domain.Columns[cat]
	for i, row := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "#%d\n", i+1)
		for j, col := range cols {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", col, row[j])
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d registro(s)\n", len(rows))
	return nil
}

func showUsers(ctx context.Context, cmd *cobra.Command, a *app) error {
	users, err := a.store.ListUsers(ctx)
	if err != nil {
		return err
	}
	shown := 0
	for i, u := range users {
		if uint64(i) >= showLimit {
			break
		}
		fmt.Fprintf(cmd.OutOrStdout(), "#%d\n", i+1)
		fmt.Fprintf(cmd.OutOrStdout(), "  id: %d\n", u.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "  username: %s\n", u.Username)
		fmt.Fprintf(cmd.OutOrStdout(), "  ativo: %t\n\n", u.Active)
		shown++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d registro(s)\n", shown)
	return nil
}

func knownTable(name string) bool {
	for _, t := range domain.AllTables {
		if t == name {
			return true
		}
	}
	return false
}
