// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsq/logging"
	"github.com/katalvlaran/magicsq/provision"
)

func newProvisionCmd(o *rootOptions) *cobra.Command {
	var (
		manifestPath string
		groups       []string
		dryRun       bool
	)
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Install the external analysis tool chain",
		Long: `Install system and Python packages listed in a YAML manifest.

Groups marked requires_root are skipped unless running as root. Without
--manifest the built-in manifest is used.

Examples:
  # Show what would be installed
  magicsq provision --dry-run

  # Install only the Python group from a custom manifest
  magicsq provision --manifest tools.yaml --group python`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc := logging.NewDefaultConfig()
			o.applyLogging(lc)
			log, err := logging.New(lc)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			inst := provision.NewInstaller(provision.ExecRunner{},
				provision.WithLogger(log.Named("provision")),
				provision.WithDryRun(dryRun))
			sum, err := inst.Install(cmd.Context(), m, groups...)
			if err != nil {
				return err
			}

			return printProvisionSummary(cmd.OutOrStdout(), sum)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&manifestPath, "manifest", "m", "", "package manifest (default: built-in)")
	f.StringSliceVar(&groups, "group", nil, "install only these groups (repeatable)")
	f.BoolVar(&dryRun, "dry-run", false, "log the commands without running them")

	return cmd
}

func loadManifest(path string) (*provision.Manifest, error) {
	if path == "" {
		return provision.Default()
	}

	return provision.Load(path)
}
