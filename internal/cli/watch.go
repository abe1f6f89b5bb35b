package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealsel/sealsel/internal/request"
	"github.com/sealsel/sealsel/pkg/seal"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	var requestPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run recommend every time a request file is saved",
		Long: `Print a recommendation for the request file, then watch the file and print
a fresh recommendation after every save until interrupted. Saves that fail to
parse are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if requestPath == "" {
				return WrapExitError(ExitCommandError, "watch", errors.New("--request is required"))
			}
			out := rootOpts.formatter(cmd)

			req, err := request.Load(requestPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load request", err)
			}
			evaluate := func(req seal.Request) {
				if err := runRecommend(rootOpts, out, applyDefaults(req, rootOpts)); err != nil && !errors.Is(err, seal.ErrNoMatch) {
					rootOpts.Logger.Error("watch: render failed", "err", err)
				}
				if out.Format == "text" {
					fmt.Fprintln(out.Writer)
				}
			}
			evaluate(req)

			if err := request.Watch(cmd.Context(), requestPath, evaluate); err != nil {
				return WrapExitError(ExitCommandError, "watch", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&requestPath, "request", "r", "", "YAML request file to watch")
	return cmd
}
