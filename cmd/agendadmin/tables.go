package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcja/agendamentos/internal/domain"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Lista as tabelas disponíveis para consulta",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range domain.AllTables {
			fmt.Println(t)
		}
		return nil
	},
}
