package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// init is the unauthenticated bootstrap: it creates the schema and seeds the
// default admin account, so it must run before any protected command can.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Cria o esquema do banco e a conta admin inicial",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := cmdContext()
		defer cancel()

		if err := a.store.Init(ctx); err != nil {
			return fmt.Errorf("não foi possível criar o esquema: %w", err)
		}
		if err := a.auth.EnsureDefaultAdmin(ctx); err != nil {
			return fmt.Errorf("não foi possível criar a conta admin: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "banco inicializado")
		return nil
	},
}
