package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	colors  bool
}

// NewDiagnosticReporter creates a reporter writing to stdout and stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stdout,
		errOut:  os.Stderr,
		colors:  true,
	}
}

// newCommandReporter writes to the command's streams
func newCommandReporter(cmd interface {
	OutOrStdout() io.Writer
	ErrOrStderr() io.Writer
}, verbose bool) *DiagnosticReporter {
	r := NewDiagnosticReporter(verbose)
	r.out = cmd.OutOrStdout()
	r.errOut = cmd.ErrOrStderr()
	return r
}

// NewDiagnosticReporterWithWriter creates a reporter writing everything to w
// without colors
func NewDiagnosticReporterWithWriter(verbose bool, w io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     w,
		errOut:  w,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	r.paint(color.FgYellow, color.Bold).Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	r.paint(color.FgRed, color.Bold).Fprintf(r.errOut, "\nERROR: Documentation Generation Failed\n")
	fmt.Fprintf(r.errOut, "======================================\n\n")

	if docErr, ok := errors.AsDocError(err); ok {
		r.reportDocError(docErr, err)
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportDocError reports a DocError with full context and suggestions
func (r *DiagnosticReporter) reportDocError(docErr errors.DocError, outer error) {
	r.printErrorHeader(docErr.ErrorCode())

	fmt.Fprintf(r.errOut, "Message: %s\n\n", outer.Error())

	if r.verbose && docErr.Unwrap() != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n\n", docErr.Unwrap().Error())
	}

	if loc := docErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n\n", loc.String())
	}

	if context := docErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if len(docErr.Suggestions()) > 0 {
		r.printSuggestions(docErr.Suggestions())
	}

	r.printAdditionalHelp(docErr.ErrorCode())

	if r.verbose {
		r.printVerboseDebuggingInfo(docErr)
	}
}

// reportBasicError reports a plain error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())

	errorMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errorMsg, "no such file"), strings.Contains(errorMsg, "permission"):
		fmt.Fprintf(r.errOut, "This appears to be a file system issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check that the input paths exist under --root\n")
		fmt.Fprintf(r.errOut, "  - Ensure the output directory is writable\n\n")
	case strings.Contains(errorMsg, "template"):
		fmt.Fprintf(r.errOut, "This appears to be a rendering issue.\n")
		fmt.Fprintf(r.errOut, "Run with --verbose and report the output.\n\n")
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.SyntaxErrorCode:
		errorTypeStr = "Declaration Syntax Error"
	case errors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	case errors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	case errors.TemplateErrorCode:
		errorTypeStr = "Template Error"
	case errors.GenerationErrorCode:
		errorTypeStr = "Generation Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(r.errOut, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.errOut, "Context:\n")

	importantKeys := []string{"path", "operation", "template", "config_type", "item"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	rest := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.errOut, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "path":
		return "Path"
	case "config_type":
		return "Configuration"
	case "item":
		return "Input"
	default:
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// printAdditionalHelp prints additional help based on error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.SyntaxErrorCode:
		fmt.Fprintf(r.errOut, "Declaration File Requirements:\n")
		fmt.Fprintf(r.errOut, "  - Inputs must be UTF-8 encoded .d.ts files\n")
		fmt.Fprintf(r.errOut, "  - Check the file compiles with tsc --noEmit\n\n")

	case errors.FileSystemErrorCode:
		fmt.Fprintf(r.errOut, "File System Checks:\n")
		fmt.Fprintf(r.errOut, "  - Input paths are resolved against --root\n")
		fmt.Fprintf(r.errOut, "  - The output directory must be writable\n\n")
	}

	fmt.Fprintf(r.errOut, "For more help:\n")
	fmt.Fprintf(r.errOut, "  - Run with --verbose for more detailed output\n")
	fmt.Fprintf(r.errOut, "  - Run dtsdoc --help for the list of options\n")
}

// printVerboseDebuggingInfo prints the error chain in verbose mode
func (r *DiagnosticReporter) printVerboseDebuggingInfo(docErr errors.DocError) {
	fmt.Fprintf(r.errOut, "\nVerbose Debug Information:\n")
	fmt.Fprintf(r.errOut, "  Error Code: %s (%d)\n", docErr.ErrorCode(), int(docErr.ErrorCode()))

	if cause := docErr.Unwrap(); cause != nil {
		fmt.Fprintf(r.errOut, "  Error Chain:\n")
		level := 1
		for err := cause; err != nil; level++ {
			fmt.Fprintf(r.errOut, "    %d. %s\n", level, err.Error())
			unwrapper, ok := err.(interface{ Unwrap() error })
			if !ok {
				break
			}
			err = unwrapper.Unwrap()
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// Debug prints debug information when verbose mode is enabled
func (r *DiagnosticReporter) Debug(format string, args ...interface{}) {
	if r.verbose {
		fmt.Fprintf(r.errOut, "[DEBUG] "+format+"\n", args...)
	}
}

// ReportSuccess reports a finished run
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	if summary.Removed {
		r.paint(color.FgGreen).Fprintf(r.out, "Removed %s\n", summary.OutputPath)
		return
	}

	switch summary.Status {
	case models.StatusWritten:
		r.paint(color.FgGreen, color.Bold).Fprintf(r.out, "\nAPI Documentation Generated\n")
		fmt.Fprintf(r.out, "===========================\n\n")
		fmt.Fprintf(r.out, "Scanned %d input locations\n", len(summary.Locations))
		fmt.Fprintf(r.out, "Documented %d interfaces\n", summary.Interfaces)
		fmt.Fprintf(r.out, "Documented %d type aliases\n", summary.TypeAliases)
	default:
		fmt.Fprintf(r.out, "Nothing written (%s)\n", summary.Status)
	}
}

func (r *DiagnosticReporter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !r.colors {
		c.DisableColor()
	}
	return c
}
