package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/ocr"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/review"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/core/services"
	"github.com/benchtop-labs/partsbin-cli/internal/hooks"
)

var (
	addService string
	addResume  bool
	addYes     bool
	addWatch   bool
	addExts    []string
)

// newOCR builds the OCR provider. Replaced in tests.
var newOCR = ocr.New

var addCmd = &cobra.Command{
	Use:   "add [photo or directory]",
	Short: "Ingest component photos into the inventory",
	Long: `Runs one photo, or every photo in a directory, through OCR and field
extraction, then files the accepted components. Duplicate photos are
detected by fingerprinting the extracted text, so re-adding the same
label is a no-op.

Each candidate is shown for review before it is stored; use --yes to
accept everything, e.g. in scripts. With --watch the directory is
monitored and new photos are ingested as they appear.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addService, "service", "", "OCR service: mistral, openai, or ocrspace")
	addCmd.Flags().BoolVar(&addResume, "resume", false, "skip files that were already ingested")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "accept all candidates without review")
	addCmd.Flags().BoolVarP(&addWatch, "watch", "w", false, "keep watching the directory for new photos")
	addCmd.Flags().StringSliceVar(&addExts, "ext", nil, "photo extensions to consider (default: common image types)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if inventoryStore == nil {
		return errors.New("inventory store not configured")
	}

	ingest, err := buildIngestService(cmd)
	if err != nil {
		return err
	}

	opts := domain.IngestOptions{
		Resume:     addResume,
		Extensions: addExts,
	}

	if addWatch {
		watcher := services.NewWatcher(ingest, opts, func(r domain.IngestResult) {
			printResult(cmd, r)
		})
		return watcher.Watch(cmd.Context(), args[0])
	}

	report, err := ingest.IngestPath(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	for _, r := range report.Results {
		printResult(cmd, r)
	}

	added, skipped, rejected, failed := report.Counts()
	cmd.Printf("\n%d added, %d skipped, %d rejected, %d failed\n", added, skipped, rejected, failed)
	if failed > 0 {
		return fmt.Errorf("%d files failed", failed)
	}
	return nil
}

// buildIngestService assembles the pipeline from config and flags.
func buildIngestService(cmd *cobra.Command) (*services.IngestService, error) {
	serviceName := addService
	if serviceName == "" && configStore != nil {
		serviceName = configStore.GetString("ocr.service")
	}
	if serviceName == "" {
		serviceName = ocr.ServiceMistral
	}

	ocrOpts := ocr.Options{}
	if configStore != nil {
		if secs := configStore.GetInt("ocr.timeout_seconds"); secs > 0 {
			ocrOpts.Timeout = time.Duration(secs) * time.Second
		}
		ocrOpts.RequestsPerMinute = configStore.GetInt("ocr.requests_per_minute")
	}

	ocrService, err := newOCR(serviceName, ocrOpts)
	if err != nil {
		return nil, err
	}

	pre, post, err := buildHooks()
	if err != nil {
		return nil, err
	}

	svc := services.NewIngestService(inventoryStore, ocrService, chooseReviewer(cmd))
	svc.SetHooks(pre, post)
	if ocrOpts.Timeout > 0 {
		svc.SetOCRTimeout(ocrOpts.Timeout)
	}
	return svc, nil
}

// chooseReviewer picks interactive review when a human is attached,
// automatic acceptance otherwise.
func chooseReviewer(cmd *cobra.Command) driven.Reviewer {
	if addYes || addWatch || !term.IsTerminal(int(os.Stdin.Fd())) {
		return review.NewAuto()
	}
	return review.NewInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
}

// buildHooks builds the configured preprocessing and postprocessing
// chains. Defaults: trim_space before extraction, normalize_type after.
func buildHooks() ([]driven.TextHook, []driven.RecordHook, error) {
	registry := hooks.NewRegistry()
	hooks.RegisterDefaults(registry)

	preNames := []string{"trim_space"}
	postNames := []string{"normalize_type"}
	cfg := make(map[string]any)
	if configStore != nil {
		if names := configStore.GetStringSlice("ingest.preprocess"); len(names) > 0 {
			preNames = names
		}
		if names := configStore.GetStringSlice("ingest.postprocess"); len(names) > 0 {
			postNames = names
		}
		for _, key := range []string{
			"hooks.normalize_type.fallback",
			"hooks.tag.key",
			"hooks.tag.value",
		} {
			if val, ok := configStore.Get(key); ok {
				cfg[key] = val
			}
		}
	}

	pre, err := registry.BuildTextChain(preNames, cfg)
	if err != nil {
		return nil, nil, err
	}
	post, err := registry.BuildRecordChain(postNames, cfg)
	if err != nil {
		return nil, nil, err
	}
	return pre, post, nil
}

func printResult(cmd *cobra.Command, r domain.IngestResult) {
	switch r.Status {
	case domain.IngestAdded:
		cmd.Printf("  added    %s (%s)\n", r.SourceFile, r.ComponentID)
	case domain.IngestSkippedDuplicate:
		cmd.Printf("  skipped  %s (duplicate)\n", r.SourceFile)
	case domain.IngestRejected:
		cmd.Printf("  rejected %s\n", r.SourceFile)
	case domain.IngestFailed:
		cmd.Printf("  failed   %s: %v\n", r.SourceFile, r.Err)
	}
}
