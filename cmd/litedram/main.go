// The litedram command runs cycle-level simulations of the DRAM controller
// refresh subsystem.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "litedram",
	Short: "litedram simulates the DRAM controller refresh subsystem.",
	Long: `litedram runs cycle-level simulations of the DRAM controller ` +
		`refresh subsystem: the refresh timer, the command sequencer, and ` +
		`the handshake with the command multiplexer.`,
}

func main() {
	// Flag defaults can come from a .env file. Missing files are fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
