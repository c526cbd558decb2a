package main

import (
	"fmt"

	"github.com/wahlandcase/draftrel/internal/buildfile"
	"github.com/wahlandcase/draftrel/internal/config"
	"github.com/wahlandcase/draftrel/internal/github"
	"github.com/wahlandcase/draftrel/internal/notes"
	"github.com/wahlandcase/draftrel/internal/ui"
	"github.com/wahlandcase/draftrel/internal/version"

	"github.com/spf13/cobra"
)

// statusReleaseLimit is how many recent releases status looks through
const statusReleaseLimit = 30

func newDetectCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the version declared in the build file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, f)
			if err != nil {
				return err
			}
			path, format, err := e.buildFile()
			if err != nil {
				return err
			}

			v, detected, err := buildfile.VersionFromFile(path, format)
			if err != nil {
				return err
			}
			e.log.WithField("file", path).WithField("format", detected).Debug("matched version declaration")
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addBuildFlags(cmd, f)
	return cmd
}

func newNotesCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print the release notes the next release would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, f)
			if err != nil {
				return err
			}
			collector, err := e.collector()
			if err != nil {
				return err
			}
			if collector == nil {
				e.printer.Skipped("Release notes are disabled")
				return nil
			}
			policy, err := e.cfg.NotesFailurePolicy()
			if err != nil {
				return err
			}

			text, err := notes.Gather(cmd.Context(), collector, policy, e.log)
			if err != nil {
				return err
			}
			if text == "" {
				e.printer.Skipped("No release notes")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	addNotesFlags(cmd, f)
	return cmd
}

func newStatusCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Compare the declared version with the repository's existing releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, f)
			if err != nil {
				return err
			}
			path, format, err := e.buildFile()
			if err != nil {
				return err
			}
			v, _, err := buildfile.VersionFromFile(path, format)
			if err != nil {
				return err
			}
			e.printer.Version(v)

			releases, err := github.ListReleases(cmd.Context(), e.cfg.Release.Tool, e.cwd, statusReleaseLimit)
			if err != nil {
				return err
			}

			if existing := github.FindRelease(releases, v); existing != nil {
				kind := "published"
				if existing.IsDraft {
					kind = "draft"
				}
				e.printer.Skipped("Release %s already exists (%s)", v, kind)
				return nil
			}

			if len(releases) == 0 {
				e.printer.Success("No releases yet; %s would be the first", v)
				return nil
			}

			latest := releases[0].TagName
			if version.Newer(v, latest) {
				e.printer.Success("%s is newer than latest release %s", v, latest)
			} else {
				e.printer.Skipped("%s is not newer than latest release %s", v, latest)
			}
			return nil
		},
	}
	addBuildFlags(cmd, f)
	return cmd
}

func newConfigCmd(f *flags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the draftrel config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Configure(f.noColor)
			path, err := config.DefaultConfig().Save(f.configPath)
			if err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			ui.Printer{Out: cmd.OutOrStdout()}.Success("Wrote %s", path)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the draftrel version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "draftrel "+version.Version)
		},
	}
}
