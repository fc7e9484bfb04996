package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/game"
)

var presetsJSON bool

// PresetInfo describes one difficulty preset.
type PresetInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mines  int    `json:"mines"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		var presets []PresetInfo
		for _, d := range game.Difficulties {
			c := d.Config()
			presets = append(presets, PresetInfo{
				Name:   d.String(),
				Width:  c.Width,
				Height: c.Height,
				Mines:  c.Mines,
			})
		}

		if presetsJSON {
			data, err := json.MarshalIndent(presets, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%-8s %-6s %s\n", "NAME", "SIZE", "MINES")
		for _, p := range presets {
			fmt.Printf("%-8s %-6s %d\n", p.Name, fmt.Sprintf("%dx%d", p.Width, p.Height), p.Mines)
		}
		return nil
	},
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(presetsCmd)
}
