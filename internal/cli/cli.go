package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"github.com/autocommit-tools/setupcheck/artifacts"
	"github.com/autocommit-tools/setupcheck/internal/formatters"
	"github.com/autocommit-tools/setupcheck/internal/log"
	"github.com/autocommit-tools/setupcheck/verification"
)

type CheckConfig struct {
	IncludeJUnitResults bool
}

// ResultWriter defines methods associated with writing check results.
type ResultWriter interface {
	OpenFile(name string) (io.WriteCloser, error)
	io.WriteCloser
}

// RunVerification executes checks, writes logs and results, and returns the
// collected results so callers can map the outcome to an exit code.
func RunVerification(
	ctx context.Context,
	runChecks func(context.Context) (verification.Results, error),
	cfg CheckConfig,
	formatter formatters.ResponseFormatter,
	rw ResultWriter,
) (verification.Results, error) {
	logger := logr.FromContextOrDiscard(ctx)

	// Fail early if we cannot write to the results path.
	artifactsWriter := artifacts.WriterFromContext(ctx)
	if artifactsWriter == nil {
		return verification.Results{}, errors.New("no artifact writer was configured")
	}
	resultsFilePath, err := artifactsWriter.WriteFile(ResultsFilenameWithExtension(formatter.FileExtension()), strings.NewReader(""))
	if err != nil {
		return verification.Results{}, err
	}

	resultsFile, err := rw.OpenFile(resultsFilePath)
	if err != nil {
		return verification.Results{}, err
	}

	defer resultsFile.Close()
	resultsOutputTarget := io.MultiWriter(os.Stdout, resultsFile)

	// Execute Checks.
	results, err := runChecks(ctx)
	if err != nil {
		return verification.Results{}, err
	}

	// Format and write the results.
	formattedResults, err := formatter.Format(ctx, results)
	if err != nil {
		return verification.Results{}, err
	}

	fmt.Fprintln(resultsOutputTarget, string(formattedResults))

	// Optionally write the JUnit results alongside the regular results.
	if cfg.IncludeJUnitResults {
		if err := writeJUnit(ctx, results); err != nil {
			return verification.Results{}, err
		}
	}

	logger.Info(fmt.Sprintf("Verification result: %s", convertPassedOverall(results.PassedOverall)))

	return results, nil
}

// writeJUnit will write JUnit results as an artifact using the ArtifactWriter
// configured in ctx.
func writeJUnit(ctx context.Context, results verification.Results) error {
	logger := logr.FromContextOrDiscard(ctx)

	junitformatter, err := formatters.NewByName("junitxml")
	if err != nil {
		return err
	}

	junitResults, err := junitformatter.Format(ctx, results)
	if err != nil {
		return err
	}

	if aw := artifacts.WriterFromContext(ctx); aw != nil {
		junitFilename, err := aw.WriteFile("results-junit.xml", bytes.NewReader(junitResults))
		if err != nil {
			return err
		}
		logger.V(log.TRC).Info("JUnitXML written", "filename", junitFilename)
	}

	return nil
}

func convertPassedOverall(passedOverall bool) string {
	if passedOverall {
		return "PASSED"
	}

	return "FAILED"
}

func ResultsFilenameWithExtension(ext string) string {
	return strings.Join([]string{"results", ext}, ".")
}
