package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"communityday/internal/domain"
)

var adminFlags struct {
	email    string
	name     string
	password string
	language string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an ADMIN user",
	Long:  "Creates the first dashboard administrator. Further users are managed through /users.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		user, err := a.users.Create(cmd.Context(), domain.CreateUserInput{
			Email:    adminFlags.email,
			Name:     adminFlags.name,
			Password: adminFlags.password,
			Role:     domain.RoleAdmin,
			Language: adminFlags.language,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.email, "email", "", "admin email (required)")
	f.StringVar(&adminFlags.name, "name", "", "display name (required)")
	f.StringVar(&adminFlags.password, "password", "", "initial password, at least 8 characters (required)")
	f.StringVar(&adminFlags.language, "language", "en", "welcome email language: en or fr")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("password")
}
