package main

import (
	"fmt"
	"io"

	"github.com/avc-dev/url-shortener-console/internal/app"
	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := d.newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			return a.Run(cmd.Context())
		},
	}
}

func newShortenCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "shorten <url>",
		Short: "Create a shortcode for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.CreateForm{URL: args[0]}
			if err := validation.ValidateCreateForm(form); err != nil {
				return err
			}

			return withConsole(cfg, d, func(c *usecase.Console, out io.Writer) error {
				c.SetCreateForm(form)
				c.SubmitCreate(cmd.Context())

				if r := c.View().Create.Result; r != nil {
					fmt.Fprintln(out, r.Shortcode)
				}
				return nil
			})
		},
	}
}

func newResolveCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <shortcode>",
		Short: "Look up the original URL of a shortcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.ShortcodeForm{Shortcode: args[0]}
			if err := validation.ValidateShortcodeForm(form); err != nil {
				return err
			}

			return withConsole(cfg, d, func(c *usecase.Console, out io.Writer) error {
				c.SetResolveForm(form)
				c.SubmitResolve(cmd.Context())

				if r := c.View().Resolve.Result; r != nil {
					fmt.Fprintln(out, *r)
				}
				return nil
			})
		},
	}
}

func newStatsCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <shortcode>",
		Short: "Show the access count of a shortcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.ShortcodeForm{Shortcode: args[0]}
			if err := validation.ValidateShortcodeForm(form); err != nil {
				return err
			}

			return withConsole(cfg, d, func(c *usecase.Console, out io.Writer) error {
				c.SetStatsForm(form)
				c.SubmitStats(cmd.Context())

				if r := c.View().Stats.Result; r != nil {
					fmt.Fprintln(out, *r)
				}
				return nil
			})
		},
	}
}

func newUpdateCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "update <shortcode> <url>",
		Short: "Point a shortcode to a new URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.UpdateForm{Shortcode: args[0], NewURL: args[1]}
			if err := validation.ValidateUpdateForm(form); err != nil {
				return err
			}

			return withConsole(cfg, d, func(c *usecase.Console, _ io.Writer) error {
				c.SetUpdateForm(form)
				c.SubmitUpdate(cmd.Context())
				return nil
			})
		},
	}
}

func newDeleteCmd(cfg *config.Config, d deps) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <shortcode>",
		Short: "Delete a shortcode after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := model.ShortcodeForm{Shortcode: args[0]}
			if err := validation.ValidateShortcodeForm(form); err != nil {
				return err
			}

			confirmer := service.NewPromptConfirmer(assumeYes, d.stdin, nopWriteCloser{d.stdout})

			return withConsole(cfg, d, func(c *usecase.Console, _ io.Writer) error {
				c.SetDeleteForm(form)
				c.SubmitDelete(cmd.Context(), confirmer)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "delete without asking for confirmation")

	return cmd
}

func newCopyCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <text>",
		Short: "Copy text to the system clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cfg, d, func(c *usecase.Console, _ io.Writer) error {
				c.CopyToClipboard(args[0])
				return nil
			})
		},
	}
}

func newOpenCmd(cfg *config.Config, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in the default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cfg, d, func(c *usecase.Console, _ io.Writer) error {
				c.OpenURL(args[0])
				return nil
			})
		},
	}
}
