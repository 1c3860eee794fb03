package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ppiankov/triviaflag/internal/dataset"
	"github.com/ppiankov/triviaflag/internal/model"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.FgWhite, color.Bold)
)

const rule = "═══════════════════════════════════════════════════════════"

func okMark() string   { return green.Sprint("✓") }
func failMark() string { return red.Sprint("✗") }
func warnMark() string { return yellow.Sprint("!") }

func printBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  %s\n", bold.Sprint(title))
	fmt.Fprintf(w, "%s\n\n", rule)
}

// previewFlags are the flags previewed on the console, number sub-flags first
var previewFlags = []model.FlagName{
	model.FlagSpelledNumber,
	model.FlagRomanNumeral,
	model.FlagNumericalValue,
	model.FlagNonEnglishWord,
	model.FlagUnusualProperNoun,
}

var flagTitles = map[model.FlagName]string{
	model.FlagNumber:            "Questions with numbers",
	model.FlagSpelledNumber:     "Questions with spelled-out numbers",
	model.FlagRomanNumeral:      "Questions with roman numerals",
	model.FlagNumericalValue:    "Questions with digits",
	model.FlagNonEnglishWord:    "Questions with non-English words",
	model.FlagUnusualProperNoun: "Questions with unusual proper nouns",
}

// printPreview shows up to n sampled records per flag as
// "id - [category] question", followed by the tokens behind the flag
func printPreview(w io.Writer, evals []model.Evaluation, flags []model.FlagName, n int, seed uint64) {
	for _, flag := range flags {
		sample := dataset.Sample(evals, flag, n, seed)
		fmt.Fprintf(w, "%s (%d flagged)\n", cyan.Sprint(flagTitles[flag]), len(dataset.Flagged(evals, flag)))
		if len(sample) == 0 {
			fmt.Fprintf(w, "  (none)\n\n")
			continue
		}
		for _, e := range sample {
			fmt.Fprintf(w, "  %s - [%s] %s\n", e.Record.ID, e.Record.Field("category"), e.Record.Text)
			if detail := describe(e, flag); detail != "" {
				fmt.Fprintf(w, "        %s\n", detail)
			}
		}
		fmt.Fprintln(w)
	}
}

// describe renders the details behind one flag
func describe(e model.Evaluation, flag model.FlagName) string {
	f := e.Flags
	switch flag {
	case model.FlagNumber:
		var parts []string
		if f.HasNumericalValue {
			parts = append(parts, "digits")
		}
		if f.HasSpelledNumber {
			parts = append(parts, "spelled-out number")
		}
		if f.HasRomanNumeral {
			parts = append(parts, "roman numerals: "+strings.Join(f.RomanNumerals, ", "))
		}
		return strings.Join(parts, "; ")
	case model.FlagRomanNumeral:
		return "roman numerals: " + strings.Join(f.RomanNumerals, ", ")
	case model.FlagNonEnglishWord:
		return "non-English: " + strings.Join(f.NonEnglishWords, ", ")
	case model.FlagUnusualProperNoun:
		return "unusual: " + strings.Join(e.UnusualProperNouns, ", ") +
			" (proper nouns: " + strings.Join(f.ProperNouns, ", ") + ")"
	default:
		return ""
	}
}

// printSummary prints flag totals for a run
func printSummary(w io.Writer, s model.Summary) {
	fmt.Fprintf(w, "  Total:                   %d questions\n", s.Total)
	fmt.Fprintf(w, "  Malformed:               %d\n", s.Malformed)
	fmt.Fprintf(w, "  Warnings:                %d\n", s.Warnings)
	fmt.Fprintf(w, "  With numbers:            %d\n", s.Number)
	fmt.Fprintf(w, "    digits:                %d\n", s.NumericalValue)
	fmt.Fprintf(w, "    spelled out:           %d\n", s.SpelledNumber)
	fmt.Fprintf(w, "    roman numerals:        %d\n", s.RomanNumeral)
	fmt.Fprintf(w, "  With non-English words:  %d\n", s.NonEnglishWord)
	fmt.Fprintf(w, "  With unusual proper nouns: %d\n", s.UnusualProperNoun)
}
