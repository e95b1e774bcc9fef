package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	apiclient "github.com/solarbi/savvy-planner/internal/api/client"
	"github.com/solarbi/savvy-planner/internal/client"
)

type DeleteOptions struct {
	GlobalOptions

	out io.Writer
}

func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdDelete() *cobra.Command {
	o := DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:     "delete TYPE/ID",
		Short:   "Delete an assumption or a simulation.",
		Example: "delete assumption/Q1\ndelete simulation/3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *DeleteOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *DeleteOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	return nil
}

func (o *DeleteOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if kind == SimulationLogKind {
		return fmt.Errorf("%s cannot be deleted", plural(kind))
	}
	if id == "" {
		return fmt.Errorf("a %s name or id is required", kind)
	}
	return nil
}

func (o *DeleteOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	var (
		status int
		body   []byte
		resp   *http.Response
	)
	switch kind {
	case AssumptionKind:
		var r *apiclient.DeleteAssumptionResponse
		if r, err = c.DeleteAssumptionWithResponse(ctx, id); err == nil {
			status, body, resp = r.StatusCode(), r.Body, r.HTTPResponse
		}
	case SimulationKind:
		var n int64
		if n, err = parseID(kind, id); err != nil {
			return err
		}
		var r *apiclient.DeleteSimulationResponse
		if r, err = c.DeleteSimulationWithResponse(ctx, n); err == nil {
			status, body, resp = r.StatusCode(), r.Body, r.HTTPResponse
		}
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", kind, id, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("deleting %s/%s: %w", kind, id, client.NewResponseError(resp, body))
	}

	fmt.Fprintf(o.out, "%s/%s deleted\n", kind, id)
	return nil
}
