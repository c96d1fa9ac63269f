// Command server runs the Community Day content API and its maintenance tasks.
//
// @title Community Day CMS API
// @version 1.0
// @description Bilingual content management API for AWS Community Day Cameroon: years, speakers, agenda, sponsors, team, gallery, venue, contact, settings, media and dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token as "Bearer <token>". Browsers send the HTTP-only token cookie instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "communityday/docs"
)

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Community Day CMS API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
