// Package main is the entry point for the talent service and its tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/cmd/server/client"
	"github.com/foolchen/lifeRestart/internal/config"
)

var (
	cfg *config.Config

	envFile       string
	logLevel      string
	catalogSource string
	catalogFile   string
	catalogKey    string
	redisAddr     string
	variant       string
	gradeScope    string
)

var rootCmd = &cobra.Command{
	Use:   "liferestart",
	Short: "Talent draw and replacement service",
	Long: `liferestart draws hands of talents for a new life and resolves their
replacement chains. It runs as a gRPC server or as one-shot local commands.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Optional dotenv file with TALENT_* variables")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&catalogSource, "catalog-source", "", "Catalog source: file or redis")
	flags.StringVar(&catalogFile, "catalog-file", "", "Path of the JSON talent catalog")
	flags.StringVar(&catalogKey, "catalog-key", "", "Redis hash holding the catalog")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address")
	flags.StringVar(&variant, "variant", "", "Draw variant: none, immortals (a) or magic (b)")
	flags.StringVar(&gradeScope, "grade-scope", "", "Grade replacement scope: held or catalog")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(seedCatalogCmd)
	rootCmd.AddCommand(exportCatalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment and applies any flags given explicitly
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	override := func(name string, target *string, value string) {
		if f := cmd.Flag(name); f != nil && f.Changed {
			*target = value
		}
	}
	override("log-level", &loaded.LogLevel, logLevel)
	override("catalog-source", &loaded.CatalogSource, catalogSource)
	override("catalog-file", &loaded.CatalogFile, catalogFile)
	override("catalog-key", &loaded.CatalogKey, catalogKey)
	override("redis-addr", &loaded.RedisAddr, redisAddr)
	override("variant", &loaded.Variant, variant)
	override("grade-scope", &loaded.GradeScope, gradeScope)
	if f := cmd.Flag("port"); f != nil && f.Changed {
		loaded.GRPCPort = grpcPort
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(loaded.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}
