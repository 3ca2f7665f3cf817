package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateRegistry(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.InputFile == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/egrulfill/config.toml"
		}
		return fmt.Errorf("paths.input_file is required. Set EGRULFILL_INPUT or edit %s (create with 'egrulfill config init')", defaultPath)
	}
	if c.Paths.InputFile == c.Paths.OutputFile {
		return fmt.Errorf("paths.output_file must differ from paths.input_file (%s)", c.Paths.InputFile)
	}
	return nil
}

func (c *Config) validateInput() error {
	if c.Input.IdentifierColumn < 1 {
		return fmt.Errorf("input.identifier_column must be at least 1, got %d", c.Input.IdentifierColumn)
	}
	if c.Input.AltIdentifierColumn < 1 {
		return fmt.Errorf("input.alt_identifier_column must be at least 1, got %d", c.Input.AltIdentifierColumn)
	}
	if c.Input.HeaderRows < 0 {
		return fmt.Errorf("input.header_rows must not be negative, got %d", c.Input.HeaderRows)
	}
	if c.Input.ResumeRow < 0 {
		return fmt.Errorf("input.resume_row must not be negative, got %d", c.Input.ResumeRow)
	}
	if c.Input.ResumeRow > 0 && c.Input.ResumeSheet == "" {
		return fmt.Errorf("input.resume_row is set but input.resume_sheet is empty")
	}
	return nil
}

func (c *Config) validateRegistry() error {
	if c.Registry.RequestTimeout <= 0 {
		return fmt.Errorf("registry.request_timeout must be positive, got %d", c.Registry.RequestTimeout)
	}
	if c.Registry.TokenDelayMS < 0 {
		return fmt.Errorf("registry.token_delay_ms must not be negative, got %d", c.Registry.TokenDelayMS)
	}
	if c.Registry.RowDelayMS < 0 {
		return fmt.Errorf("registry.row_delay_ms must not be negative, got %d", c.Registry.RowDelayMS)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
