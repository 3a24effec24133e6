package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/d1nch8g/monad/llm"
)

// Config holds all configuration options for the monad CLI
type Config struct {
	// OpenAI Configuration
	APIKey string `short:"k" long:"api-key" env:"OPENAI_API_KEY" description:"OpenAI API key" required:"true"`

	// Request Configuration
	Question  string `short:"Q" long:"question" description:"Question to send to the model" required:"true"`
	Model     string `short:"m" long:"model" description:"Model identifier (defaults to gpt-3.5-turbo)"`
	MaxTokens int    `short:"n" long:"max-tokens" description:"Maximum tokens in the completion (defaults to 150)"`

	// Output Configuration
	ConfigFile string `short:"c" long:"config" env:"MONAD_CONFIG" description:"YAML file with default settings"`
	LogFile    string `short:"l" long:"log-file" description:"Log file path (optional)"`
	Verbose    bool   `short:"v" long:"verbose" description:"Enable verbose output"`
	Quiet      bool   `short:"q" long:"quiet" description:"Suppress non-essential output"`
}

// fileConfig is the YAML shape of the optional settings file. File values
// fill in only what flags and environment left unset.
type fileConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	LogFile   string `yaml:"log_file"`
}

// Parse parses command line arguments and environment variables
func Parse() (*Config, error) {
	return parseArgs(os.Args[1:])
}

func parseArgs(args []string) (*Config, error) {
	var config Config

	parser := flags.NewParser(&config, flags.Default)
	parser.Usage = "[OPTIONS]"

	// Set custom application name and description
	parser.Name = "monad"
	parser.ShortDescription = "OpenAI client facade"
	parser.LongDescription = `Monad sends a single question to the OpenAI API and prints the answer.

Examples:
  monad -k sk-... -Q "How does the stock market work?"
  monad --question="Explain goroutines" --model=gpt-4o --max-tokens=300
  monad -Q "What is a monad?" --log-file=monad.log --verbose

Environment Variables:
  OPENAI_API_KEY    OpenAI API key
  MONAD_CONFIG      Path to a YAML settings file`

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, err
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if config.ConfigFile != "" {
		if err := config.applyFile(config.ConfigFile); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	config.applyDefaults()

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyFile fills unset fields from a YAML settings file. Flags and
// environment variables always win over file values.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if c.Model == "" {
		c.Model = file.Model
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = file.MaxTokens
	}
	if c.LogFile == "" {
		c.LogFile = file.LogFile
	}

	return nil
}

// applyDefaults sets the built-in request defaults where nothing else did
func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = llm.DefaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = llm.DefaultMaxTokens
	}
}

// Validate performs additional validation on the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api-key is required")
	}

	if c.Question == "" {
		return fmt.Errorf("question is required")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max-tokens must be greater than 0")
	}

	if c.Verbose && c.Quiet {
		return fmt.Errorf("verbose and quiet options are mutually exclusive")
	}

	// Validate log file path if provided
	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("log file directory does not exist: %s", dir)
		}
	}

	return nil
}

// GetLogLevel returns the appropriate log level based on configuration
func (c *Config) GetLogLevel() string {
	if c.Quiet {
		return "error"
	}
	if c.Verbose {
		return "debug"
	}
	return "info"
}

// PrintConfig prints the current configuration (excluding sensitive data)
func (c *Config) PrintConfig() {
	fmt.Printf("Configuration:\n")
	fmt.Printf("  API Key: %s***\n", c.APIKey[:min(8, len(c.APIKey))])
	fmt.Printf("  Question: %s\n", c.Question)
	fmt.Printf("  Model: %s\n", c.Model)
	fmt.Printf("  Max Tokens: %d\n", c.MaxTokens)
	fmt.Printf("  Verbose: %v\n", c.Verbose)
	fmt.Printf("  Quiet: %v\n", c.Quiet)
	if c.ConfigFile != "" {
		fmt.Printf("  Config File: %s\n", c.ConfigFile)
	}
	if c.LogFile != "" {
		fmt.Printf("  Log File: %s\n", c.LogFile)
	}
	fmt.Println()
}
