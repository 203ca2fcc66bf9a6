package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/scienceol/psat/cmd/api"
	"github.com/scienceol/psat/cmd/calc"
	"github.com/scienceol/psat/internal/config"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCtx := utils.SetupSignalContext()
	root := &cobra.Command{
		Use:                "psat",
		SilenceUsage:       true,
		Short:              "psat",
		Long:               "psat - Antoine equation saturation pressure service",
		PersistentPreRunE:  initGlobalResource,
		Run:                func(cmd *cobra.Command, _ []string) { _ = cmd.Help() },
		PersistentPostRunE: cleanGlobalResource,
	}
	root.SetContext(rootCtx)
	root.AddCommand(api.NewWeb())
	root.AddCommand(api.NewMigrate())
	root.AddCommand(calc.New())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initGlobalResource(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.AutomaticEnv()

	conf := config.Global()
	if err := v.Unmarshal(conf); err != nil {
		return err
	}

	logger.Init(&logger.LogConfig{
		Path:     conf.Log.LogPath,
		LogLevel: conf.Log.LogLevel,
		ServiceEnv: logger.ServiceEnv{
			Platform: conf.Server.Platform,
			Service:  conf.Server.Service,
			Env:      conf.Server.Env,
		},
	})
	return nil
}

func cleanGlobalResource(_ *cobra.Command, _ []string) error {
	logger.Close()
	return nil
}
