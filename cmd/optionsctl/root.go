package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"ocorrenciaapp/internal/config"
	"ocorrenciaapp/internal/infrastructure/logger"
	"ocorrenciaapp/pkg/options"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	baseURL  string
	pagePath string
	timeout  time.Duration
}

// newRootCmd собирает дерево команд. Значения флагов по умолчанию берутся из конфигурации.
func newRootCmd(conf config.ClientConfig) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "optionsctl",
		Short:         "Опции выпадающих списков формы ocorrência",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", conf.BaseURL, "адрес сервера опций")
	root.PersistentFlags().StringVar(&flags.pagePath, "page-path", conf.PagePath, "путь страницы, первый сегмент - локаль")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", conf.HTTPTimeout, "таймаут запроса")

	root.AddCommand(
		listCmd(flags, "sistemas [area]", "Системы области", cobra.MaximumNArgs(1),
			func(p *options.Provider, args []string) []string { return p.SistemaOptions(argOrEmpty(args)) }),
		listCmd(flags, "problemas [area]", "Проблемы области", cobra.MaximumNArgs(1),
			func(p *options.Provider, args []string) []string { return p.ProblemaOptions(argOrEmpty(args)) }),
		listCmd(flags, "problemas-by-sistema <sistema>", "Проблемы системы", cobra.ExactArgs(1),
			func(p *options.Provider, args []string) []string { return p.ProblemaOptionsBySistema(args[0]) }),
		listCmd(flags, "all-problemas", "Проблемы всех систем", cobra.NoArgs,
			func(p *options.Provider, args []string) []string { return p.AllProblemaOptions() }),
		listCmd(flags, "all-sistemas", "Системы всех областей", cobra.NoArgs,
			func(p *options.Provider, args []string) []string { return p.AllSistemaOptions() }),
	)
	return root
}

func listCmd(flags *rootFlags, use, short string, args cobra.PositionalArgs, list func(*options.Provider, []string) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := options.NewProvider(
				options.WithBaseURL(flags.baseURL),
				options.WithPagePath(flags.pagePath),
				options.WithHTTPClient(options.NewHTTPClient(flags.timeout)),
				options.WithLogger(logger.Log),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()
			if err := provider.Load(ctx); err != nil {
				return fmt.Errorf("опции не загружены: %w", err)
			}

			return printLines(cmd.OutOrStdout(), list(provider, args))
		},
	}
}

func printLines(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
