package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tonal-sh/tonal/internal/token"
)

var (
	// Validate command flags
	validateJSON bool
)

// ErrInvalidDocument is returned when a document parses cleanly but fails
// validation. CLI-level problems (unreadable file, malformed JSON) are
// reported as distinct errors before validation ever runs.
var ErrInvalidDocument = errors.New("design-token document failed validation")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <document.json>",
	Short: "Validate a design-token document",
	Long: `Validate an externally authored design-token JSON document against the
tonal rule set.

Six categories are scored 1-4: colorSystem, typography, motionSystem,
geometry, uniqueness and technical. The document passes only when there are
no hard errors AND every category scores at least 3 — one weak category
fails the whole document.

Exit status is non-zero when the document is invalid. A file that cannot be
read or parsed is a command error, not a validation failure.

Examples:
  tonal validate tokens.json
  tonal validate tokens.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit the validation result as JSON")
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	path := args[0]

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	var doc token.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document %s: %w", path, err)
	}

	logger.Debug("validating document", "path", path, "bytes", len(data))
	result := token.Validate(&doc)

	if validateJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		cmd.Println(string(out))
	} else {
		cmd.Print(renderReport(path, result))
	}

	if !result.Valid {
		cmd.SilenceErrors = true
		return ErrInvalidDocument
	}
	return nil
}

// renderReport formats a validation result as a human-readable report.
func renderReport(path string, res token.Result) string {
	var b strings.Builder

	passText := color.New(color.FgGreen, color.Bold).SprintFunc()
	failText := color.New(color.FgRed, color.Bold).SprintFunc()
	warnText := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(&b, "Validation report for %s\n\n", path)

	categories := make([]string, 0, len(res.Scores))
	for c := range res.Scores {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	table := NewTable([]string{"Category", "Score", "Status"})
	for _, c := range categories {
		score := res.Scores[c]
		status := passText("ok")
		if score < 3 {
			status = failText("weak")
		}
		table.AddRow([]string{c, fmt.Sprintf("%d/4", score), status})
	}
	b.WriteString(table.Render())

	if len(res.Errors) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "  %s %s\n", failText("✗"), e)
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", warnText("!"), w)
		}
	}

	b.WriteString("\n")
	if res.Valid {
		fmt.Fprintf(&b, "Result: %s\n", passText("PASS"))
	} else {
		fmt.Fprintf(&b, "Result: %s\n", failText("FAIL"))
	}

	return b.String()
}
