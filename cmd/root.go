package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-melody/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sonido-melody",
	Short: "Monophonic melody extraction from recorded audio",
	Long:  `Extracts an ordered sequence of note names from a recorded audio file using time-domain autocorrelation pitch analysis.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
