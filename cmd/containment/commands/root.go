// Package commands implements the CLI commands for containment.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zancas/containment/internal/build"
	"github.com/zancas/containment/internal/core/domain"
	"github.com/zancas/containment/internal/core/ports"
)

// CLI represents the command line interface for containment.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	PaveCommunity(ctx context.Context) error
	PaveProfile(ctx context.Context) error
	PaveProject(ctx context.Context) error
	WriteDockerfile(ctx context.Context) error
	Build(ctx context.Context) error
	Run(ctx context.Context) error
	Activate(ctx context.Context) error
	Status(ctx context.Context) (*domain.Status, error)
	Watch(ctx context.Context) error
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log receives the
// --log-json setting when it supports JSON output.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "containment",
		Short:         "Layered development containers for every project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log messages as JSON lines")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		enable, _ := cmd.Flags().GetBool("log-json")
		if l, ok := c.logger.(jsonSwitcher); ok && enable {
			l.SetJSON(true)
		}
	}

	rootCmd.AddCommand(
		c.newActionCmd("pave_community", "Create the community scope in the current directory", a.PaveCommunity),
		c.newActionCmd("pave_profile", "Create the profile scope in the home directory", a.PaveProfile),
		c.newActionCmd("pave_project", "Create the project scope and write its Dockerfile", a.PaveProject),
		c.newActionCmd("write_dockerfile", "Regenerate the project Dockerfile from all scopes", a.WriteDockerfile),
		c.newActionCmd("build", "Build the project image from its Dockerfile", a.Build),
		c.newActionCmd("run", "Start the project container", a.Run),
		c.newActionCmd("activate", "Pave missing scopes, build the image and start the container", a.Activate),
		c.newActionCmd("watch", "Regenerate the Dockerfile whenever a scope file changes", a.Watch),
		c.newStatusCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
