package cmd

import (
	"fmt"
	"os"

	"github.com/Arshadali10614941/cafe-system/internal/cafe"
	"github.com/Arshadali10614941/cafe-system/internal/factories"
	"github.com/Arshadali10614941/cafe-system/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cafe-system",
	Short: "Runs an interactive cafe ordering session",
	Long:  `cafe-system runs a single-customer cafe ordering session in the terminal: browse the menu, assemble an order, confirm it, receive the bill and pay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		var menu *models.Menu
		if viper.GetBool("demo") {
			menu = factories.RandomMenu(cfg.DemoMenuSize)
		} else {
			menu, err = factories.SeedMenu(cfg.Menu)
			if err != nil {
				return fmt.Errorf("error seeding menu: %w", err)
			}
		}

		customer := &models.Customer{ID: 1, Name: viper.GetString("customer-name")}
		session := cafe.NewSession(cfg, menu, customer, os.Stdin, os.Stdout)
		return session.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cafe.yaml)")

	rootCmd.Flags().Bool("demo", false, "Seed a randomly generated menu instead of the configured one")
	rootCmd.Flags().String("customer-name", "", "Customer name (prompted for when empty)")

	viper.BindPFlags(rootCmd.Flags())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
