package challenge

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/256dpi/challenge/program"
)

// The seed of the default program id.
const defaultProgramSeed = "challenge/program"

// RentConfig configures the minimum balance of accounts.
type RentConfig struct {
	// The bytes charged for every account in addition to its data.
	Overhead uint64 `yaml:"overhead"`

	// The lamports charged per byte.
	PerByte uint64 `yaml:"per_byte"`
}

// Config is the configuration of a challenge deployment.
type Config struct {
	// The database directory.
	Directory string `yaml:"directory"`

	// The hex encoded program id. It is fixed at deployment time.
	ProgramID string `yaml:"program_id"`

	// The account key prefix.
	Prefix string `yaml:"prefix"`

	// The dispatcher queue size.
	Queue int `yaml:"queue"`

	Rent RentConfig `yaml:"rent"`
	Log  LogConfig  `yaml:"log"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	rent := program.DefaultRent()
	return &Config{
		Directory: "data",
		ProgramID: program.Key(blake2b.Sum256([]byte(defaultProgramSeed))).String(),
		Prefix:    "challenge",
		Queue:     64,
		Rent: RentConfig{
			Overhead: rent.Overhead,
			PerByte:  rent.PerByte,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig will read the YAML file at the specified path over the defaults.
// The defaults are returned if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	// prepare config
	cfg := DefaultConfig()

	// read file
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// parse file
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// validate
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save will write the configuration as YAML to the specified path.
func (c *Config) Save(path string) error {
	// ensure directory
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// encode config
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// write file
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate will check the configuration.
func (c *Config) Validate() error {
	// check program id
	id, err := program.ParseKey(c.ProgramID)
	if err != nil {
		return fmt.Errorf("invalid program id: %w", err)
	} else if id.IsZero() {
		return fmt.Errorf("invalid program id: zero key")
	}

	// check directory and prefix
	if c.Directory == "" {
		return fmt.Errorf("missing directory")
	} else if c.Prefix == "" {
		return fmt.Errorf("missing prefix")
	}

	// check rent
	err = c.rent().Validate()
	if err != nil {
		return fmt.Errorf("invalid rent: %w", err)
	}

	return nil
}

// Program will create the program described by the configuration.
func (c *Config) Program(logger *zap.Logger) (*program.Program, error) {
	// validate
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	// parse id
	id, err := program.ParseKey(c.ProgramID)
	if err != nil {
		return nil, err
	}

	return program.New(program.Config{
		ProgramID: id,
		Rent:      c.rent(),
	}, logger), nil
}

func (c *Config) rent() program.Rent {
	return program.Rent{
		Overhead: c.Rent.Overhead,
		PerByte:  c.Rent.PerByte,
	}
}
