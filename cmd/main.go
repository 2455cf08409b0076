package main

import (
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "edashboard",
		Short: "Profit dashboard reconciling storefront sales, ad spend and fulfillment cost",
		RunE:  run,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the edashboard version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile string
	envFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config (optional)")
	rootCmd.PersistentPreRunE = loadEnv
	rootCmd.AddCommand(serveCmd, reportCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't run edashboard", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}

// loadEnv reads the dotenv file if present. Variables already set win.
func loadEnv(cmd *cobra.Command, args []string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("can't load %s: %w", envFile, err)
	}
	return nil
}
