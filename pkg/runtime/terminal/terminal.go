package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory commands.ReporterFactory
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.ReporterFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		factory: opts.Factory,
		output:  opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sales",
		Short:         "Sales insights from the ERP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.AddCommand(commands.NewDetailsCmd(cli.factory, map[string]commands.ReportHandler{
		"table": export.NewReporter(cli.output),
		"plain": NewReporter(cli.output),
	}))

	return cmd
}
