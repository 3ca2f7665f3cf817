package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInput()
	c.normalizeRegistry()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.InputFile) == "" {
		if value, ok := os.LookupEnv("EGRULFILL_INPUT"); ok {
			c.Paths.InputFile = value
		}
	}

	var err error
	if c.Paths.InputFile, err = expandPath(strings.TrimSpace(c.Paths.InputFile)); err != nil {
		return fmt.Errorf("paths.input_file: %w", err)
	}
	if c.Paths.OutputFile, err = expandPath(strings.TrimSpace(c.Paths.OutputFile)); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	if c.Paths.OutputFile == "" && c.Paths.InputFile != "" {
		c.Paths.OutputFile = deriveOutputPath(c.Paths.InputFile)
	}

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockFile) == "" {
		c.Paths.LockFile = defaultLockFile
	}
	if c.Paths.LockFile, err = expandPath(c.Paths.LockFile); err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}
	return nil
}

// deriveOutputPath mirrors the historical naming convention: the enriched
// copy sits next to the input with a "_с_ФИО" suffix.
func deriveOutputPath(inputPath string) string {
	if rest, ok := strings.CutSuffix(inputPath, ".xlsx"); ok {
		return rest + outputFileSuffix + ".xlsx"
	}
	return inputPath + outputFileSuffix + ".xlsx"
}

func (c *Config) normalizeInput() {
	c.Input.NameColumn = strings.TrimSpace(c.Input.NameColumn)
	if c.Input.NameColumn == "" {
		c.Input.NameColumn = defaultNameColumn
	}
	c.Input.ResumeSheet = strings.TrimSpace(c.Input.ResumeSheet)

	trimmed := make([]string, 0, len(c.Input.AltColumnSheets))
	for _, name := range c.Input.AltColumnSheets {
		if name = strings.TrimSpace(name); name != "" {
			trimmed = append(trimmed, name)
		}
	}
	c.Input.AltColumnSheets = trimmed
}

func (c *Config) normalizeRegistry() {
	c.Registry.BaseURL = strings.TrimSpace(c.Registry.BaseURL)
	if c.Registry.BaseURL == "" {
		c.Registry.BaseURL = defaultRegistryBaseURL
	}
	c.Registry.UserAgent = strings.TrimSpace(c.Registry.UserAgent)
	if c.Registry.UserAgent == "" {
		c.Registry.UserAgent = defaultUserAgent
	}
	if c.Registry.RequestTimeout == 0 {
		c.Registry.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
