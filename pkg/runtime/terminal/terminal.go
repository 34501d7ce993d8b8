package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/fin-tools/report-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/report-atlas/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	profilesPath string
	reporter     *Reporter
	rootCmd      *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	ProfilesPath string
	Output       io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		profilesPath: opts.ProfilesPath,
		reporter:     NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-atlas",
		Short: "Tax report exploration tool",
	}

	cmd.PersistentFlags().StringVarP(&cli.profilesPath, "config", "c", cli.profilesPath,
		"Path to the endpoint profiles file")

	loader := cli.registryLoader()

	cmd.AddCommand(commands.NewFiltersCmd(loader))
	cmd.AddCommand(commands.NewViewCmd(loader, cli.reporter))
	cmd.AddCommand(commands.NewUploadCmd(loader))
	cmd.AddCommand(commands.NewExportCmd(loader))

	return cmd
}

// registryLoader reads the profiles file once, on first use, after flags have
// been parsed.
func (cli *CLI) registryLoader() commands.RegistryLoader {
	var once sync.Once
	var registry config.Registry
	var err error

	return func() (config.Registry, error) {
		once.Do(func() {
			registry, err = config.NewRegistry(cli.profilesPath)
		})
		return registry, err
	}
}
