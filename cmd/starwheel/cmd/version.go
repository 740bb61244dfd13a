package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the starwheel CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("starwheel version %s\n", version)
		fmt.Println("An astrological computation engine and API")
		fmt.Println("https://github.com/rustyeddy/starwheel")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
