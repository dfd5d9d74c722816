package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Command struct {
	cmd  *cobra.Command
	args []string
}

// New returns a command running run. A nil run makes a command that only
// groups its subcommands.
func New(use, short, example string, run func(*Command) error) *Command {
	var c *Command
	c = &Command{
		cmd: &cobra.Command{
			Use:           use,
			Short:         short,
			Example:       example,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	if run != nil {
		c.cmd.RunE = func(cmd *cobra.Command, args []string) error {
			c.args = args
			return run(c)
		}
	}
	return c
}

// Flags returns the persistent flags, inherited by subcommands.
func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.PersistentFlags()
}

// LocalFlags returns the flags of this command only.
func (c *Command) LocalFlags() *pflag.FlagSet {
	return c.cmd.Flags()
}

// ExactArgs makes the command fail unless it gets n positional arguments.
func (c *Command) ExactArgs(n int) *Command {
	c.cmd.Args = cobra.ExactArgs(n)
	return c
}

func (c *Command) AddCommand(children ...*Command) *Command {
	for _, child := range children {
		c.cmd.AddCommand(child.cmd)
	}
	return c
}

// PreRun runs f before the command and any of its subcommands.
func (c *Command) PreRun(f func(*Command) error) *Command {
	c.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return f(c)
	}
	return c
}

// Args returns the positional arguments of the running command.
func (c *Command) Args() []string {
	return c.args
}

func (c *Command) Context() context.Context {
	if ctx := c.cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (c *Command) Out() io.Writer {
	return c.cmd.OutOrStdout()
}

func (c *Command) SetOut(w io.Writer) {
	c.cmd.SetOut(w)
}

// SetArgs replaces os.Args[1:]. No args means an empty command line.
func (c *Command) SetArgs(args ...string) {
	if args == nil {
		args = []string{}
	}
	c.cmd.SetArgs(args)
}

func (c *Command) ExecuteContext(ctx context.Context) error {
	return c.cmd.ExecuteContext(ctx)
}
