// Package main is the appspec command line tool: offline validation,
// compilation, naming, and contract projection for AppSpec documents.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/carefoundry/appspec/compile"
	"github.com/carefoundry/appspec/contract"
	"github.com/carefoundry/appspec/internal/loader"
	"github.com/carefoundry/appspec/model"
	"github.com/carefoundry/appspec/naming"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:     "appspec",
		Short:   "Validate, compile, and inspect AppSpec documents",
		Long:    "appspec turns structured application specifications into build prompts and API contracts, rejecting anything outside the v1 capability surface.",
		Version: version,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")

	validateCmd := &cobra.Command{
		Use:   "validate <spec-file>",
		Short: "Check that a file is a structurally valid AppSpec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], newLogger(logLevel))
		},
	}

	var compileOut string
	compileCmd := &cobra.Command{
		Use:   "compile <spec-file>",
		Short: "Compile an AppSpec into a build prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], compileOut, newLogger(logLevel))
		},
	}
	compileCmd.Flags().StringVarP(&compileOut, "out", "o", "", "Write the prompt to a file instead of stdout")

	nameCmd := &cobra.Command{
		Use:   "name <intent...>",
		Short: "Derive an app name and slug from freeform intent text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := naming.FromIntent(strings.Join(args, " "))
			fmt.Printf("Name: %s\nSlug: %s\n", result.Name, result.Slug)
			return nil
		},
	}

	var contractOut string
	contractCmd := &cobra.Command{
		Use:   "contract <spec-file>",
		Short: "Project an AppSpec's API section into an OpenAPI 3 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContract(args[0], contractOut, newLogger(logLevel))
		},
	}
	contractCmd.Flags().StringVarP(&contractOut, "out", "o", "", "Write the contract to a file instead of stdout")

	root.AddCommand(validateCmd, compileCmd, nameCmd, contractCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// newLogger builds a JSON zap logger writing to stderr, with the same
// encoder shape the generation services use.
func newLogger(level string) *zap.Logger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(parsed),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runValidate(path string, logger *zap.Logger) error {
	defer logger.Sync()

	loaded, err := loader.FromFile(path)
	if err != nil {
		var invalid *loader.ErrInvalidSpec
		if errors.As(err, &invalid) {
			return codeError(1, "%s", invalid.Error())
		}
		return codeError(3, "loading spec: %s", err)
	}

	logger.Info("spec validated",
		zap.String("source", loaded.SourceFile),
		zap.String("checksum", loaded.Checksum),
		zap.String("app_id", loaded.Spec.ID))
	fmt.Printf("%s is a valid AppSpec (version %s)\n", path, loaded.Spec.Version)
	return nil
}

func runCompile(path, out string, logger *zap.Logger) error {
	defer logger.Sync()

	loaded, err := loader.FromFile(path)
	if err != nil {
		return codeError(3, "loading spec: %s", err)
	}

	prompt, err := compile.ToPrompt(loaded.Spec)
	if err != nil {
		var unsupported *model.UnsupportedFeatureError
		if errors.As(err, &unsupported) {
			logger.Warn("unsupported feature",
				zap.String("feature", unsupported.Feature),
				zap.String("source", loaded.SourceFile))
			msg := unsupported.Message
			if unsupported.Suggestion != "" {
				msg += " " + unsupported.Suggestion
			}
			return codeError(2, "%s", msg)
		}
		return codeError(3, "compiling spec: %s", err)
	}

	logger.Info("spec compiled",
		zap.String("source", loaded.SourceFile),
		zap.Int("prompt_bytes", len(prompt)))
	return writeOutput(out, []byte(prompt))
}

func runContract(path, out string, logger *zap.Logger) error {
	defer logger.Sync()

	loaded, err := loader.FromFile(path)
	if err != nil {
		return codeError(3, "loading spec: %s", err)
	}

	doc := contract.Build(loaded.Spec)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return codeError(3, "encoding contract: %s", err)
	}
	data = append(data, '\n')

	logger.Info("contract built",
		zap.String("source", loaded.SourceFile),
		zap.Int("endpoints", len(loaded.Spec.API.Endpoints)))
	return writeOutput(out, data)
}

func writeOutput(out string, data []byte) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return codeError(3, "writing %s: %s", out, err)
	}
	return nil
}
