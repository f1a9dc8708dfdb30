// Id3dump prints the ID3v2 frames of MP3 files.
//
// It walks the tag container (tag header, extended header, frame data)
// just far enough to hand each frame to the id3codec frame codec, then
// renders every decoded frame on its own line.
//
// Usage:
//
//	id3dump [flags] file.mp3 [file2.mp3 ...]
//
// See 'id3dump --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3codec/internal/logging"
	"github.com/simonhull/id3codec/internal/version"
)

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "id3dump [files...]",
	Short: "Dump ID3v2 frames from MP3 files",
	Long: `Id3dump reads the ID3v2 tag of each given file and prints every
frame it contains: text frames, comments, lyrics, pictures and
unrecognized frames alike.

Multiple files are processed concurrently; output order follows the
argument order.`,
	Version:      version.Version,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return err
		}
		defer logging.Sync()

		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		return dumpFiles(args, cfg)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML display config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log verbosity (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("id3dump %s (commit: %s)\n", version.Version, version.Commit)
	},
}
