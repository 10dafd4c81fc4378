package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/warrior-graph/sonic-cfggen/internal/configdb"
	"github.com/warrior-graph/sonic-cfggen/internal/sources"
	"github.com/warrior-graph/sonic-cfggen/pkg/render"
	"github.com/warrior-graph/sonic-cfggen/pkg/synth"
	"github.com/warrior-graph/sonic-cfggen/pkg/tmplcache"
)

// flags carries the per-invocation command-line inputs.
type flags struct {
	dataFiles  []string
	inlineJSON []string
	fromStore  bool

	template  string
	printData bool
	asJSON    bool
	lookupKey string
	writeToDB bool
	noCache   bool
}

// Execute runs the CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand builds the single cobra command; sonic-cfggen is a
// one-shot tool, so all behavior hangs off flags rather than subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:     "sonic-cfggen",
		Short:   "Synthesize network device configuration from multiple sources",
		Version: a.version,
		Long: `sonic-cfggen folds configuration data from data files, inline JSON
documents, and the live configuration store into one document, in a fixed
precedence order, and emits the result as YAML/JSON or through a template.

Examples:
  sonic-cfggen -y vlans.yaml -a '{"DEVICE_METADATA": {"localhost": {"hostname": "leaf1"}}}' --print-data
  sonic-cfggen -d -t interfaces.j2 > /etc/network/interfaces
  sonic-cfggen -y config.yaml -w`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), &f)
		},
	}

	rootCmd.Flags().StringArrayVarP(&f.dataFiles, "from-file", "y", nil, "read data from a YAML or JSON file (repeatable, applied in order)")
	rootCmd.Flags().StringArrayVarP(&f.inlineJSON, "additional-data", "a", nil, "inline JSON document (repeatable, applied in order)")
	rootCmd.Flags().BoolVarP(&f.fromStore, "from-db", "d", false, "include the live store's current configuration")
	rootCmd.Flags().StringVarP(&f.template, "template", "t", "", "render this template file to stdout")
	rootCmd.Flags().BoolVar(&f.printData, "print-data", false, "print the aggregate document to stdout")
	rootCmd.Flags().BoolVar(&f.asJSON, "json", false, "serialize as JSON instead of YAML")
	rootCmd.Flags().StringVarP(&f.lookupKey, "key", "k", "", "restrict serialized output to the record matching this key")
	rootCmd.Flags().BoolVarP(&f.writeToDB, "write-to-db", "w", false, "write store-schema tables of the result to the live store")
	rootCmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the template-compilation cache")

	rootCmd.SetVersionTemplate("sonic-cfggen {{.Version}}\n")

	return rootCmd
}

// run executes one synthesis pass.
func (a *App) run(ctx context.Context, f *flags) error {
	var store *configdb.Client
	if f.fromStore || f.writeToDB {
		store = configdb.New(a.config.StoreConfig())
		defer store.Close()
	}

	var srcs []sources.Source
	for _, path := range f.dataFiles {
		srcs = append(srcs, &sources.File{Path: path})
	}
	for _, doc := range f.inlineJSON {
		srcs = append(srcs, &sources.Inline{JSON: doc})
	}
	if f.fromStore {
		srcs = append(srcs, &sources.Store{Client: store})
	}

	pipeline := synth.New(srcs...)

	if f.template != "" {
		var opts []render.Option
		if a.config.CacheEnabled && !f.noCache {
			opts = append(opts, render.WithCache(tmplcache.New(a.config.CacheAddr)))
		}
		if err := pipeline.Render(ctx, os.Stdout, render.New(opts...), f.template); err != nil {
			return err
		}
	}

	if f.printData || (f.template == "" && !f.writeToDB) {
		write := pipeline.WriteYAML
		if f.asJSON {
			write = pipeline.WriteJSON
		}
		if err := write(ctx, os.Stdout, f.lookupKey); err != nil {
			return err
		}
	}

	if f.writeToDB {
		if err := pipeline.WriteStore(ctx, store); err != nil {
			return err
		}
		a.logger.Info().Msg("Wrote configuration to live store")
	}

	return nil
}
