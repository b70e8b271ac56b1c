package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/interfaces/cli/migrate"
	"campusdesk/internal/interfaces/cli/seed"
	"campusdesk/internal/interfaces/cli/server"
	"campusdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "campusdesk",
		Short:   "CampusDesk - marketing site and help desk for partner schools",
		Long:    `CampusDesk serves the public marketing site and the back-office help desk: schools, products, assets, support tickets, and inbound leads.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
