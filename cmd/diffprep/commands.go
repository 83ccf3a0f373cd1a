package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Cyclone1070/diffprep/internal/logging"
	"github.com/Cyclone1070/diffprep/internal/tool/file"
)

var version = "dev"

type preloadResponse struct {
	Path *string `json:"path"`
}

type validateResponse struct {
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	Comparable bool   `json:"comparable"`
}

type platformResponse struct {
	Name        string `json:"name"`
	FileManager string `json:"file_manager"`
}

func newRootCmd(deps *Dependencies) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "diffprep [FILE]",
		Short: "Prepare files for a side-by-side diff viewer",
		Long: `Classifies, decodes and renders files so a diff viewer can show them,
lists directories for file picking, and saves edited text in its original charset.

With a FILE argument, prints it back when it names an existing regular file
so a viewer can preload it.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger, err := logging.New(deps.Config.Log.Level, true)
			if err != nil {
				return err
			}
			// Components hold the logger, so they are rebuilt around the new one.
			stdin, stdout := deps.Stdin, deps.Stdout
			*deps = *createDependencies(deps.Config, logger, deps.Platform, deps.FS)
			deps.Stdin, deps.Stdout = stdin, stdout
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp preloadResponse
			if len(args) == 1 {
				if path, ok := deps.Classifier.ArgToFilepath(args[0]); ok {
					resp.Path = &path
				}
			}
			return writeJSON(deps.Stdout, resp)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newContentCmd(deps),
		newListCmd(deps),
		newValidateCmd(deps),
		newSaveCmd(deps),
		newPlatformCmd(deps),
	)
	return rootCmd
}

func newContentCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "content OLD [NEW]",
		Short: "Print the displayable content of one or two files",
		Long: `Prints a JSON array with the old and new side of a comparison.
Each side carries the charset it was decoded with. Pass "" for a missing side.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPath := args[0]
			newPath := ""
			if len(args) == 2 {
				newPath = args[1]
			}

			result, err := deps.Resolver.FilepathsContent(oldPath, newPath)
			if err != nil {
				return err
			}
			return writeJSON(deps.Stdout, result)
		},
	}
}

func newListCmd(deps *Dependencies) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List a directory for file picking",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			resp, err := deps.Lister.ListDir(path)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return writeJSON(deps.Stdout, resp)
			case "text":
				_, err := fmt.Fprintln(deps.Stdout, renderListing(resp))
				return err
			default:
				return fmt.Errorf("unknown format %q (want json or text)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or text")
	return cmd
}

func newValidateCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Report whether a path exists and can be compared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, exists := deps.Classifier.ValidateFilepath(args[0])
			return writeJSON(deps.Stdout, validateResponse{
				Path:       args[0],
				Exists:     exists,
				Comparable: exists && ok,
			})
		},
	}
}

func newSaveCmd(deps *Dependencies) *cobra.Command {
	var charset string

	cmd := &cobra.Command{
		Use:   "save PATH",
		Short: "Save text read from stdin to PATH in a charset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := io.ReadAll(deps.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}

			resp, err := deps.Saver.Save(&file.SaveRequest{
				Path:    args[0],
				Content: string(body),
				Charset: charset,
			})
			if err != nil {
				return err
			}
			deps.Logger.Debug("Saved file",
				zap.String("path", resp.Path),
				zap.String("charset", resp.Charset),
				zap.Int("bytes", resp.BytesWritten),
			)
			return writeJSON(deps.Stdout, resp)
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "UTF-8", "charset label to encode the content with")
	return cmd
}

func newPlatformCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print the detected platform and file manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(deps.Stdout, platformResponse{
				Name:        deps.Platform.Name(),
				FileManager: deps.Platform.FileManagerCommand(),
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
