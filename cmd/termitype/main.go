// Package main provides the CLI entrypoint for termitype.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termitype/termitype/internal/config"
	"github.com/termitype/termitype/internal/generator"
	"github.com/termitype/termitype/internal/language"
	"github.com/termitype/termitype/internal/model"
	"github.com/termitype/termitype/internal/render"
	"github.com/termitype/termitype/internal/session"
	"github.com/termitype/termitype/internal/terminal"
)

const (
	defaultWords = 25
	defaultWidth = render.DefaultWidth
)

var (
	testLanguage     string
	testWords        int
	testLanguagesDir string
	testWidth        int
	listLanguages    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termitype",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVarP(&testLanguage, "language", "l", "", "language name (default: english if available)")
	rootCmd.Flags().IntVarP(&testWords, "words", "w", defaultWords, "number of words in the test")
	rootCmd.Flags().StringVar(&testLanguagesDir, "languages-dir", "", "directory with language JSON files")
	rootCmd.Flags().IntVar(&testWidth, "width", defaultWidth, "wrap width in columns")
	rootCmd.Flags().BoolVar(&listLanguages, "list-languages", false, "list available languages and exit")

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "language", &testLanguage, fileCfg.Test.Language)
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	applyStringConfig(cmd, "languages-dir", &testLanguagesDir, fileCfg.Test.LanguagesDir)
	applyIntConfig(cmd, "width", &testWidth, fileCfg.Test.Width)

	if testLanguagesDir == "" {
		testLanguagesDir = config.DefaultLanguagesDir()
	}

	cfg := model.Config{
		Language:     testLanguage,
		Words:        testWords,
		LanguagesDir: testLanguagesDir,
		Width:        testWidth,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	catalog, err := language.Load(cfg.LanguagesDir)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("no languages found in %q; add language JSON files there", cfg.LanguagesDir)
	}

	if listLanguages {
		return printLanguages(cmd, catalog)
	}

	lang, err := pickLanguage(catalog, cfg.Language)
	if err != nil {
		return err
	}

	words, err := generator.New().Sample(lang.Words, cfg.Words)
	if err != nil {
		return fmt.Errorf("failed to build test text for %q: %w", lang.Name, err)
	}
	target := strings.Join(words, " ")

	source := terminal.NewReader(os.Stdin)
	renderer := render.NewTerminal(os.Stdout, cfg.Width, render.DefaultStyles())

	// Ctrl+C during a raw read arrives in-band as an interrupt event; an
	// external SIGINT must still restore the terminal before exiting.
	if raw, ok := source.(*terminal.RawReader); ok {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			raw.Restore()
			logErrln("\nTest interrupted by user")
			os.Exit(0)
		}()
	}

	sess := session.New(target, source, renderer)
	if err := sess.Run(); err != nil {
		if errors.Is(err, session.ErrInterrupted) {
			logErrln("\nTest interrupted by user")
			return nil
		}
		return err
	}
	return nil
}

func printLanguages(cmd *cobra.Command, catalog *language.Catalog) error {
	for _, name := range catalog.Names() {
		lang, _ := catalog.Get(name)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s - %d words\n", name, len(lang.Words)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func pickLanguage(catalog *language.Catalog, name string) (model.Language, error) {
	if name == "" {
		lang, ok := catalog.Default()
		if !ok {
			return model.Language{}, fmt.Errorf("no languages available")
		}
		return lang, nil
	}
	lang, ok := catalog.Get(name)
	if !ok {
		return model.Language{}, fmt.Errorf("language %q not found (available: %s)", name, strings.Join(catalog.Names(), ", "))
	}
	return lang, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
