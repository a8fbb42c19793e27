package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List every player seen in the data",
	RunE:  runRoster,
}

func runRoster(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	names := engine.AllPlayerNames()
	if len(names) == 0 {
		fmt.Println("No players found.")
		return nil
	}

	accolades := loadAccolades()
	for _, name := range names {
		if n := len(accolades[strings.ToLower(name)]); n > 0 {
			fmt.Printf("%s (%d accolades)\n", name, n)
		} else {
			fmt.Println(name)
		}
	}
	fmt.Printf("\n%d players.\n", len(names))
	return nil
}
