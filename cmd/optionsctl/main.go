package main

import (
	"context"
	"fmt"
	"os"

	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/internal/infrastructure/logger"
)

func main() {
	envFile := os.Getenv("OCORRENCIA_ENV_FILE")
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}

	conf, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout занят списком опций
	if err := logger.InitWithOutput(conf.LoggerConfig, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(conf.ClientConfig).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
