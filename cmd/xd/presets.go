package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	var presetFile string

	cmd := &cobra.Command{
		Use:     "presets",
		Short:   "List generator presets",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preset-file") {
				presetFile = a.settings.PresetFile
			}

			presets, err := loadPresets(presetFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range slices.Sorted(maps.Keys(presets)) {
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(presets[name]), sample(presets[name]))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&presetFile, "preset-file", "", "YAML file with extra presets (env XD_PRESET_FILE)")

	return cmd
}

// sample renders the first few elements of a preset.
func sample(elements []string) string {
	const limit = 6
	if len(elements) <= limit {
		return strings.Join(elements, " ")
	}
	return strings.Join(elements[:limit], " ") + " ..."
}
