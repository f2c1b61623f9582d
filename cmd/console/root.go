package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/avc-dev/url-shortener-console/internal/client"
	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/notify"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrOperationFailed операция завершилась уведомлением об ошибке
var ErrOperationFailed = errors.New("operation failed")

func newRootCmd(cfg *config.Config, d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "Console for the URL shortener service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(d.stdout)
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(cfg, d),
		newShortenCmd(cfg, d),
		newResolveCmd(cfg, d),
		newStatsCmd(cfg, d),
		newUpdateCmd(cfg, d),
		newDeleteCmd(cfg, d),
		newCopyCmd(cfg, d),
		newOpenCmd(cfg, d),
	)

	return root
}

// withConsole создает одноразовое представление консоли, выполняет fn
// и печатает итоговое уведомление
func withConsole(cfg *config.Config, d deps, fn func(c *usecase.Console, out io.Writer) error) error {
	logger, err := d.newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	api := client.New(cfg.APIBaseURL.String(), d.httpClient, logger)
	c := usecase.NewConsole(api, notify.NewChannel(cfg.NotificationTTL, logger), d.clipboard, d.browser, logger)
	defer c.Close()

	if err := fn(c, d.stdout); err != nil {
		return err
	}

	return report(d.stdout, c.View().Notification, logger)
}

// report печатает уведомление; уведомление об ошибке превращается в ошибку команды
func report(out io.Writer, n model.Notification, logger *zap.Logger) error {
	if n.Empty() {
		return nil
	}

	fmt.Fprintf(out, "[%s] %s\n", n.Kind, n.Text)

	if n.Kind == model.NotificationError {
		logger.Debug("operation finished with error notification", zap.String("text", n.Text))
		return fmt.Errorf("%w: %s", ErrOperationFailed, n.Text)
	}

	return nil
}
