// Command agendadmin is the operator tool: table inspection, exports,
// reports and account management against the configured storage backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/fcja/agendamentos/internal/config"
	"github.com/fcja/agendamentos/internal/infra/storage"
	"github.com/fcja/agendamentos/internal/infra/storage/factory"
	authService "github.com/fcja/agendamentos/internal/service/auth"
	bookingsService "github.com/fcja/agendamentos/internal/service/bookings"
	reportsService "github.com/fcja/agendamentos/internal/service/reports"
	"github.com/fcja/agendamentos/pkg/logger"
)

var (
	flagConfig   string
	flagUser     string
	flagPassword string
)

var rootCmd = &cobra.Command{
	Use:   "agendadmin",
	Short: "Ferramenta administrativa do sistema de agendamentos da FCJA",
	Long: `agendadmin consulta, exporta e gera relatórios dos agendamentos de
visitas da Fundação Casa de José Américo, direto no backend configurado.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app bundles everything a subcommand needs.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	store    storage.Store
	auth     *authService.Service
	bookings *bookingsService.Service
	reports  *reportsService.Service
}

func (a *app) close() {
	a.store.Close()
	a.log.Close()
}

// openApp loads the configuration and opens the storage backend. The CLI
// logs to the same file as the server but never to stderr noise beyond the
// command output itself.
func openApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	store, err := factory.New(cfg, log)
	if err != nil {
		log.Close()
		return nil, err
	}

	bookings := bookingsService.NewService(store, log)
	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		auth:     authService.NewService(store, log),
		bookings: bookings,
		reports:  reportsService.NewService(store, bookings, cfg.Reports.Dir, log),
	}, nil
}

// requireAuth verifies the operator credentials before a protected command
// runs. The password comes from --password or AGENDADMIN_PASSWORD. Every
// failure prints the same message.
func requireAuth(ctx context.Context, a *app) error {
	password := flagPassword
	if password == "" {
		password = os.Getenv("AGENDADMIN_PASSWORD")
	}
	if password == "" {
		return errors.New("credenciais inválidas")
	}

	if _, err := a.auth.Authenticate(ctx, flagUser, password); err != nil {
		return errors.New("credenciais inválidas")
	}
	return nil
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.toml", "caminho do arquivo de configuração")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "admin", "usuário administrativo")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "senha (ou variável AGENDADMIN_PASSWORD)")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
