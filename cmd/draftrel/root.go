package main

import (
	"fmt"
	"os"

	"github.com/wahlandcase/draftrel/internal/app"
	"github.com/wahlandcase/draftrel/internal/buildfile"
	"github.com/wahlandcase/draftrel/internal/config"
	"github.com/wahlandcase/draftrel/internal/git"
	"github.com/wahlandcase/draftrel/internal/github"
	"github.com/wahlandcase/draftrel/internal/logging"
	"github.com/wahlandcase/draftrel/internal/models"
	"github.com/wahlandcase/draftrel/internal/notes"
	"github.com/wahlandcase/draftrel/internal/release"
	"github.com/wahlandcase/draftrel/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// flags holds every command-line option; zero values mean "use the config"
type flags struct {
	configPath string
	dryRun     bool
	verbose    bool
	noColor    bool

	file           string
	format         string
	notesSource    string
	notesOnFailure string
	confirm        bool
	strict         bool
	prerelease     bool
}

// env is what every command needs once flags and config are resolved
type env struct {
	cfg     *config.Config
	log     *logrus.Logger
	printer ui.Printer
	cwd     string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "draftrel",
		Short:         "Create a draft GitHub release for the version declared in build.gradle",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default: <user config dir>/"+config.FileName+")")
	pf.BoolVar(&f.dryRun, "dry-run", false, "Print the release command instead of running it")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log each step")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")

	addBuildFlags(rootCmd, f)
	addNotesFlags(rootCmd, f)
	rootCmd.Flags().BoolVar(&f.confirm, "confirm", false, "Ask before creating the release")
	rootCmd.Flags().BoolVar(&f.strict, "strict", false, "Fail when the release tool exits non-zero")
	rootCmd.Flags().BoolVar(&f.prerelease, "prerelease", false, "Mark semver pre-release versions as pre-releases")

	rootCmd.AddCommand(
		newDetectCmd(f),
		newNotesCmd(f),
		newStatusCmd(f),
		newConfigCmd(f),
		newVersionCmd(),
	)
	return rootCmd
}

func addBuildFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Build file (default: build.gradle.kts, then build.gradle)")
	cmd.Flags().StringVar(&f.format, "format", "", "Version declaration syntax: auto, single, quoted-key or double")
}

func addNotesFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVar(&f.notesSource, "notes", "", "Release notes source: none, script or git")
	cmd.Flags().StringVar(&f.notesOnFailure, "notes-on-failure", "", "When notes can't be collected: abort or empty")
}

// setup loads the config and applies flag overrides on top of it
func setup(cmd *cobra.Command, f *flags) (*env, error) {
	ui.Configure(f.noColor)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags a subcommand doesn't define report Changed == false
	flagSet := cmd.Flags()
	if flagSet.Changed("file") {
		cfg.Build.File = f.file
	}
	if flagSet.Changed("format") {
		cfg.Build.Format = f.format
	}
	if flagSet.Changed("notes") {
		cfg.Notes.Source = f.notesSource
	}
	if flagSet.Changed("notes-on-failure") {
		cfg.Notes.OnFailure = f.notesOnFailure
	}
	if flagSet.Changed("strict") {
		cfg.Release.Strict = f.strict
	}
	if flagSet.Changed("prerelease") {
		cfg.Release.Prerelease = f.prerelease
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		log:     logging.New(cmd.ErrOrStderr(), f.verbose, f.noColor),
		printer: ui.Printer{Out: cmd.OutOrStdout()},
		cwd:     cwd,
	}, nil
}

// buildFile resolves the build file path and declaration format
func (e *env) buildFile() (string, models.BuildFormat, error) {
	path, err := buildfile.Locate(e.cwd, e.cfg.Build.File)
	if err != nil {
		return "", models.FormatAuto, err
	}
	format, err := e.cfg.BuildFormat()
	if err != nil {
		return "", models.FormatAuto, err
	}
	return path, format, nil
}

// collector builds the configured notes collector; nil means no notes
func (e *env) collector() (notes.Collector, error) {
	source, err := e.cfg.NotesSource()
	if err != nil {
		return nil, err
	}

	switch source {
	case models.NotesScript:
		return notes.ScriptCollector{
			Script: e.cfg.Notes.Script,
			Dir:    e.cfg.NotesDir(),
			Log:    e.log,
		}, nil
	case models.NotesGit:
		// Outside a repository the collector itself fails, so the notes failure policy applies
		root, err := git.FindRoot(e.cwd)
		if err != nil {
			root = e.cwd
		}
		return notes.GitCollector{RepoPath: root, Log: e.log}, nil
	default:
		return nil, nil
	}
}

func runRelease(cmd *cobra.Command, f *flags) error {
	e, err := setup(cmd, f)
	if err != nil {
		return err
	}

	path, format, err := e.buildFile()
	if err != nil {
		return err
	}
	policy, err := e.cfg.NotesFailurePolicy()
	if err != nil {
		return err
	}
	collector, err := e.collector()
	if err != nil {
		return err
	}

	var publisher release.Publisher = github.CLIPublisher{
		Bin:    e.cfg.Release.Tool,
		Dir:    e.cwd,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Strict: e.cfg.Release.Strict,
		Log:    e.log,
	}
	if f.dryRun {
		e.printer.Info("%s", ui.DryRunNotice())
		publisher = github.DryRunPublisher{Bin: e.cfg.Release.Tool, Out: cmd.OutOrStdout()}
	}

	opts := release.Options{
		BuildFile:      path,
		Format:         format,
		Notes:          collector,
		OnNotesFailure: policy,
		MarkPrerelease: e.cfg.Release.Prerelease,
		Publisher:      publisher,
		Printer:        e.printer,
		Log:            e.log,
	}
	if f.confirm {
		opts.Confirm = func(req models.ReleaseRequest, buildFile string) (bool, error) {
			return app.Confirm(req, buildFile, f.dryRun, cmd.InOrStdin(), cmd.OutOrStdout())
		}
	}

	_, err = release.Run(cmd.Context(), opts)
	return err
}
