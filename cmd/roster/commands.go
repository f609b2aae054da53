package roster

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/roster/internal/version"
	"github.com/arthur-debert/roster/pkg/commands"
	"github.com/arthur-debert/roster/pkg/config"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/export"
	"github.com/arthur-debert/roster/pkg/menu"
	"github.com/arthur-debert/roster/pkg/style"
	"github.com/arthur-debert/roster/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newMenuCmd() *cobra.Command {
	var load bool
	cmd := &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		Long:    MsgMenuLong,
		GroupID: "records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd, load)
		},
	}
	cmd.Flags().BoolVar(&load, "load", false, MsgFlagLoad)
	return cmd
}

func (a *app) runMenu(cmd *cobra.Command, load bool) error {
	files, cfg, err := a.files(cmd)
	if err != nil {
		return err
	}

	store := datastore.New()
	if load {
		if store, _, err = files.Load(cfg.IntegrityPolicy()); err != nil {
			return err
		}
	}

	session := menu.New(menu.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Store:     store,
		Files:     files,
		Integrity: cfg.IntegrityPolicy(),
		Banner:    colorOutput,
	})
	return session.Run(cmd.Context())
}

func (a *app) newStudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Short:   MsgStudentShort,
		GroupID: "records",
	}

	var opts commands.AddStudentOptions
	add := &cobra.Command{
		Use:     "add",
		Short:   MsgStudentAddShort,
		Example: MsgStudentAddExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.AddStudent(store, opts)
			})
		},
	}
	add.Flags().StringVar(&opts.StudentID, "id", "", MsgFlagID)
	add.Flags().StringVar(&opts.Name, "name", "", MsgFlagName)
	add.Flags().StringVar(&opts.Age, "age", "", MsgFlagAge)
	add.Flags().StringVar(&opts.Address, "address", "", MsgFlagAddress)
	for _, f := range []string{"id", "name", "age", "address"} {
		_ = add.MarkFlagRequired(f)
	}

	show := &cobra.Command{
		Use:   "show <student-id>",
		Short: MsgStudentShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showCard(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.ShowStudent(store, commands.ShowStudentOptions{StudentID: args[0]})
			})
		},
	}

	cmd.AddCommand(add, show)
	return cmd
}

func (a *app) newCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Short:   MsgCourseShort,
		GroupID: "records",
	}

	var opts commands.AddCourseOptions
	add := &cobra.Command{
		Use:     "add",
		Short:   MsgCourseAddShort,
		Example: MsgCourseAddExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.AddCourse(store, opts)
			})
		},
	}
	add.Flags().StringVar(&opts.CourseCode, "code", "", MsgFlagCode)
	add.Flags().StringVar(&opts.CourseName, "name", "", MsgFlagCourseName)
	add.Flags().StringVar(&opts.Instructor, "instructor", "", MsgFlagInstructor)
	for _, f := range []string{"code", "name", "instructor"} {
		_ = add.MarkFlagRequired(f)
	}

	show := &cobra.Command{
		Use:   "show <course-code>",
		Short: MsgCourseShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showCard(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.ShowCourse(store, commands.ShowCourseOptions{CourseCode: args[0]})
			})
		},
	}

	cmd.AddCommand(add, show)
	return cmd
}

// showCard runs a read-only command and prints its card.
func (a *app) showCard(cmd *cobra.Command, fn func(store *datastore.DataStore) (*types.CommandResult, error)) error {
	return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
		result, err := fn(store)
		if err != nil {
			return nil, err
		}
		fmt.Fprint(cmd.OutOrStdout(), style.RenderCard(result.Message))
		return &types.CommandResult{Command: result.Command}, nil
	})
}

func (a *app) newEnrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enroll <student-id> <course-code>",
		Short:   MsgEnrollShort,
		Example: MsgGradeExample,
		GroupID: "records",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.Enroll(store, commands.EnrollOptions{StudentID: args[0], CourseCode: args[1]})
			})
		},
	}
}

func (a *app) newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "grade <student-id> <course-code> <grade>",
		Short:   MsgGradeShort,
		Example: MsgGradeExample,
		GroupID: "records",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.AddGrade(store, commands.AddGradeOptions{
					StudentID: args[0], CourseCode: args[1], Grade: args[2],
				})
			})
		},
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				return commands.Export(store, commands.ExportOptions{
					Format:     format,
					OutputFile: output,
					FileSystem: a.env.FS,
					Stdout:     cmd.OutOrStdout(),
				})
			})
		},
	}

	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = f.String()
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", MsgFlagFormat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "import <workbook.xlsx>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"xlsx"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *datastore.DataStore) (*types.CommandResult, error) {
				result, err := commands.Import(store, commands.ImportOptions{Workbook: args[0], FileSystem: a.env.FS})
				if err != nil {
					return nil, err
				}
				for _, skipped := range result.Report.Skipped {
					cmd.PrintErrln(style.RenderWarning(skipped.String()))
				}
				return &result.CommandResult, nil
			})
		},
	}
}

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verify",
		Short:   MsgVerifyShort,
		Long:    MsgVerifyLong,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, _, err := a.files(cmd)
			if err != nil {
				return err
			}
			result, err := commands.Verify(commands.VerifyOptions{FileSystem: a.env.FS, DataFile: files.Path()})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !result.Found:
				fmt.Fprintf(out, MsgVerifyMissing, result.Path)
			case result.OK():
				fmt.Fprintf(out, MsgVerifyOK, result.Path, result.Students, result.Courses)
			default:
				for _, p := range result.Problems {
					fmt.Fprintln(out, style.RenderWarning(p))
				}
				return errors.Newf(errors.ErrDeserialization, MsgVerifyProblems, len(result.Problems), result.Path).
					WithDetail("path", result.Path)
			}
			return nil
		},
	}
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.GenConfigOptions{Write: write, FileSystem: a.env.FS}
			if a.env.UserConfigDir != "" {
				opts.Path = filepath.Join(a.env.UserConfigDir, config.UserConfigFile)
			}
			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write {
				fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			if len(result.FilesWritten) == 0 {
				fmt.Fprintln(out, MsgConfigKept)
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(out, MsgConfigWritten, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch strings.ToLower(args[0]) {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
