package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"Mainu/models"
	"Mainu/services"

	"github.com/spf13/cobra"
)

var (
	processFile    string
	processImages  []string
	processLangIn  string
	processLangOut string
	processJSON    bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert one menu from recognized text or page images",
	Long: `Sends the text of a menu to the configured backend and prints the result.

The text is read from --file, from page images given with --image (one flag
per page, recognized with the configured OCR command), or from stdin.

Example:
  mainu process --file menu.txt --lang-out en
  mainu process --image page1.jpg --image page2.jpg --json`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "Read recognized menu text from this file")
	processCmd.Flags().StringArrayVarP(&processImages, "image", "i", nil, "Menu page image to recognize (repeatable)")
	processCmd.Flags().StringVar(&processLangIn, "lang-in", "", "Language of the menu (default from config)")
	processCmd.Flags().StringVar(&processLangOut, "lang-out", "", "Language to translate into (default from config)")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "Print the full result as JSON")
	processCmd.MarkFlagsMutuallyExclusive("file", "image")
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, pageCount, err := readMenuText(cmd)
	if err != nil {
		return err
	}

	scan, err := newScanService(cfg, nil, services.NoopAnalyticsTracker{}, logger)
	if err != nil {
		return err
	}
	result, err := scan.Process(ctx, models.NewProcessingRequest(pageCount, text, processLangIn, processLangOut))
	if err != nil {
		return fmt.Errorf("menu processing failed (%s): %w", services.ErrorCode(err), err)
	}

	out := cmd.OutOrStdout()
	if processJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printTemplate(out, result.Template)
	return nil
}

func readMenuText(cmd *cobra.Command) (string, int, error) {
	switch {
	case processFile != "":
		data, err := os.ReadFile(processFile)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read %s: %w", processFile, err)
		}
		return string(data), 1, nil
	case len(processImages) > 0:
		return recognizeImages(cmd, processImages)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", 0, fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), 1, nil
	}
}

// recognizeImages runs each page through the capture pipeline so the
// command line sees the same validation and concatenation as the API.
func recognizeImages(cmd *cobra.Command, paths []string) (string, int, error) {
	if cfg.Capture.RecognizerCommand == "" {
		return "", 0, fmt.Errorf("no recognizer command configured")
	}
	storage := services.NewCaptureStorage(cfg.Capture.Directory)
	captures := services.NewCaptureService(storage, services.CommandTextRecognizer{Command: cfg.Capture.RecognizerCommand}, logger)

	const session = "cli"
	defer captures.Close()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if _, err := captures.Append(cmd.Context(), session, data); err != nil {
			return "", 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	return captures.ConcatenatedText(session), captures.PageCount(session), nil
}

func printTemplate(w io.Writer, template models.MenuTemplate) {
	fmt.Fprintf(w, "Menu %s (%d dishes)\n", template.ID, template.DishCount())
	for _, section := range template.Sections {
		fmt.Fprintf(w, "\n%s\n%s\n", section.Title, strings.Repeat("-", len([]rune(section.Title))))
		for _, dish := range section.Dishes {
			line := fmt.Sprintf("  %s / %s", dish.OriginalName, dish.LocalizedName)
			if dish.Price != nil {
				line += "  " + *dish.Price
			}
			fmt.Fprintln(w, line)
			if dish.Description != "" {
				fmt.Fprintf(w, "      %s\n", dish.Description)
			}
			if len(dish.Allergens) > 0 {
				fmt.Fprintf(w, "      allergens: %s\n", strings.Join(dish.Allergens, ", "))
			}
			if dish.SpiceLevel != nil && *dish.SpiceLevel != models.SpiceNone {
				fmt.Fprintf(w, "      %s\n", dish.SpiceLevel.LocalizedDescription())
			}
		}
	}
}
