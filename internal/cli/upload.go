package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type UploadOptions struct {
	GlobalOptions
	filePath string
	name     string

	out io.Writer
}

func DefaultUploadOptions() *UploadOptions {
	return &UploadOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdUpload() *cobra.Command {
	o := DefaultUploadOptions()
	cmd := &cobra.Command{
		Use:          "upload",
		Short:        "upload an assumption workbook",
		Example:      "upload --name \"Q1 2025\" --file-path /path/to/assumptions.xlsx",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
	}
	o.Bind(cmd.Flags())

	if err := validateFlags(cmd); err != nil {
		panic(err)
	}

	return cmd
}

func validateFlags(cmd *cobra.Command) error {
	requiredFlags := []string{"file-path", "name"}

	for _, flag := range requiredFlags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return err
		}
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if lo.Contains(requiredFlags, f.Name) {
			f.Usage = fmt.Sprintf("%s (required)", f.Usage)
		}
	})

	return nil
}

func (o *UploadOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.filePath, "file-path", o.filePath, "Path to the assumption workbook (.xlsx, .xlsm)")
	fs.StringVar(&o.name, "name", o.name, "Name of the assumption; an existing assumption is overwritten")
}

func (o *UploadOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	result, err := c.UploadAssumption(ctx, o.name, o.filePath)
	if err != nil {
		return fmt.Errorf("uploading assumption: %w", err)
	}

	for _, f := range result.Flashes {
		fmt.Fprintf(o.out, "%s\n", f.Message)
	}
	if result.Failed {
		return fmt.Errorf("assumption %q was not uploaded", o.name)
	}
	return nil
}
