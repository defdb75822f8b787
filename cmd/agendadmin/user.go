package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newUserPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Gerencia contas de operador",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Cria uma nova conta de operador",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

func init() {
	userAddCmd.Flags().StringVar(&newUserPassword, "new-password", "", "senha da nova conta")
	userAddCmd.MarkFlagRequired("new-password")
	userCmd.AddCommand(userAddCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
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

	u, err := a.auth.CreateUser(ctx, args[0], newUserPassword)
	if err != nil {
		return fmt.Errorf("não foi possível criar o usuário: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "usuário %s criado (id=%d)\n", u.Username, u.ID)
	return nil
}
