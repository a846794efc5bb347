package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-melody/algorithms/temporal"
	"github.com/RyanBlaney/sonido-melody/melody"
	"github.com/RyanBlaney/sonido-melody/notation"
	"github.com/RyanBlaney/sonido-melody/transcode"
)

var (
	configPath   string
	sampleRate   int
	showStats    bool
	showProgress bool
)

func init() {
	extractCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with extraction parameters")
	extractCmd.Flags().IntVar(&sampleRate, "sample-rate", 44100, "sample rate to decode to")
	extractCmd.Flags().BoolVar(&showStats, "stats", false, "print signal statistics before the notes")
	extractCmd.Flags().BoolVar(&showProgress, "progress", false, "report analysis progress on stderr")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [audio file]",
	Short: "Extracts the melody from an audio file",
	Long:  `Decodes the audio file with FFmpeg and prints the detected note sequence in temporal order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := melody.DefaultConfig()
		if configPath != "" {
			var err error
			cfg, err = melody.LoadConfig(configPath)
			if err != nil {
				return err
			}
		}

		decoder := transcode.NewDecoder(&transcode.DecoderConfig{
			TargetSampleRate: sampleRate,
			FFmpegPath:       "ffmpeg",
		})

		buf, err := decoder.DecodeFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if showStats {
			printStats(buf, cfg)
		}

		extractor, err := melody.NewExtractorWithConfig(cfg, notation.Standard{})
		if err != nil {
			return err
		}

		if showProgress {
			extractor.OnProgress(func(fraction float64) {
				fmt.Fprintf(os.Stderr, "\ranalyzing... %3.0f%%", fraction*100)
			})
		}

		notes, err := extractor.Extract(cmd.Context(), buf)
		if showProgress {
			fmt.Fprintln(os.Stderr)
		}
		if err != nil {
			return err
		}

		if len(notes) == 0 {
			fmt.Println("no melody detected")
			return nil
		}

		fmt.Println(strings.Join(notes, " "))
		return nil
	},
}

func printStats(buf *melody.SampleBuffer, cfg melody.Config) {
	ratio := temporal.SilenceRatio(buf.PCM, cfg.WindowSize, cfg.StepSize, cfg.SilenceThreshold)
	fmt.Printf("duration: %.2fs  samples: %d  sample rate: %d  silence: %.0f%%\n",
		buf.Duration().Seconds(), len(buf.PCM), buf.SampleRate, ratio*100)
}
