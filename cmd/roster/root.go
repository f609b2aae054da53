package roster

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/roster/internal/version"
	"github.com/arthur-debert/roster/pkg/cobrax/topics"
	"github.com/arthur-debert/roster/pkg/config"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/filesystem"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/persistence"
	"github.com/arthur-debert/roster/pkg/style"
	"github.com/arthur-debert/roster/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Env is what the command tree runs against. Tests swap the filesystem and
// the config search directories.
type Env struct {
	FS            types.FS
	UserConfigDir string
	WorkDir       string
}

// app holds the flags and lazily resolved configuration of one invocation.
type app struct {
	env Env

	verbosity  int
	dataFile   string
	integrity  string
	configFile string

	cfg *config.Config
}

// NewRootCmd creates the root command for the real process environment.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(Env{FS: filesystem.NewOS()})
}

// NewRootCmdWithEnv creates the root command against env.
func NewRootCmdWithEnv(env Env) *cobra.Command {
	initTemplateFormatting()
	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			colorOutput = style.Configure(style.ColorAuto, outFile(cmd))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd, false)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.dataFile, "data-file", "", MsgFlagDataFile)
	rootCmd.PersistentFlags().StringVar(&a.integrity, "integrity", "", MsgFlagIntegrity)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "records", Title: "RECORDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "data", Title: "DATA FILE:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newMenuCmd())
	rootCmd.AddCommand(a.newStudentCmd())
	rootCmd.AddCommand(a.newCourseCmd())
	rootCmd.AddCommand(a.newEnrollCmd())
	rootCmd.AddCommand(a.newGradeCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newImportCmd())
	rootCmd.AddCommand(a.newVerifyCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topicRenderer{},
		}
		if err := topics.InitializeWithOptions(rootCmd, topicsFS, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// topicRenderer picks the glamour style when a topic is shown, after the
// colour decision has been made.
type topicRenderer struct{}

func (topicRenderer) Render(content, format string) string {
	return topics.NewGlamourRendererFor(colorOutput).Render(content, format)
}

// outFile returns the command's output as a file when it is one, so colour
// detection can look at the terminal.
func outFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}

// config resolves the configuration once, applying flag overrides.
func (a *app) config(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("data-file") {
		overrides["data_file"] = a.dataFile
	}
	if cmd.Flags().Changed("integrity") {
		overrides["integrity"] = a.integrity
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfigDir: a.env.UserConfigDir,
		WorkDir:       a.env.WorkDir,
		ConfigFile:    a.configFile,
		Overrides:     overrides,
	})
	if err != nil {
		return nil, err
	}

	mode, err := style.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid output.color")
	}
	colorOutput = style.Configure(mode, outFile(cmd))

	a.cfg = cfg
	return cfg, nil
}

// files returns the FileStore for the configured data file.
func (a *app) files(cmd *cobra.Command) (*persistence.FileStore, *config.Config, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, nil, err
	}
	return persistence.New(a.env.FS, cfg.DataFile), cfg, nil
}

// withStore loads the data file, runs fn and saves the store when fn
// reports a change and autosave is on.
func (a *app) withStore(cmd *cobra.Command, fn func(store *datastore.DataStore) (*types.CommandResult, error)) error {
	files, cfg, err := a.files(cmd)
	if err != nil {
		return err
	}
	logger := logging.GetLogger("cmd." + cmd.Name())
	done := logging.LogOperationStart(logger, cmd.CommandPath())
	defer done()

	store, _, err := files.Load(cfg.IntegrityPolicy())
	if err != nil {
		return err
	}

	result, err := fn(store)
	if err != nil {
		return err
	}

	if result.Changed {
		if !cfg.Autosave {
			cmd.PrintErrln(style.RenderWarning(MsgAutosaveSkipped))
		} else if err := files.Save(store); err != nil {
			return err
		}
	}
	if result.Message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	}
	return nil
}
