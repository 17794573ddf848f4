package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/256dpi/challenge"
	"github.com/256dpi/challenge/program"
)

var (
	configPath string
	directory  string
	verbose    bool
	signers    []string

	logger *zap.Logger
	db     *challenge.DB
	bank   *challenge.Bank
	config *challenge.Config
)

var rootCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Operate a local challenge bank",
	Long: `challenge manages quiz challenges stored in a local database.

A challenge stores the fingerprints of its solutions. Participants buy
admissions to receive tries and redeem guesses against the stored
fingerprints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// load config
		var err error
		config, err = challenge.LoadConfig(configPath)
		if err != nil {
			return err
		}

		// apply flags
		if directory != "" {
			config.Directory = directory
		}
		if verbose {
			config.Log.Level = "debug"
		}

		// build logger
		logger, err = challenge.NewLogger(config.Log)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeBank()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "challenge.yaml", "the config file")
	rootCmd.PersistentFlags().StringVar(&directory, "dir", "", "the database directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(keygenCmd, addressCmd, mintCmd, balanceCmd, showCmd)
	for _, cmd := range []*cobra.Command{createCmd, addCmd, admitCmd, redeemCmd} {
		cmd.Flags().StringSliceVar(&signers, "signer", nil, "override the signing keys")
		rootCmd.AddCommand(cmd)
	}

	createCmd.Flags().Uint64Var(&admitCost, "cost", 0, "the admission cost")
	createCmd.Flags().Uint8Var(&triesPerAdmit, "tries", 1, "the tries per admission")
	createCmd.Flags().StringVar(&redeemTarget, "redeem", "", "the redeem account (defaults to the authority)")
}

func openBank() (*challenge.Bank, error) {
	// check bank
	if bank != nil {
		return bank, nil
	}

	// create program
	prg, err := config.Program(logger)
	if err != nil {
		return nil, err
	}

	// open db
	db, err = challenge.OpenDB(config.Directory)
	if err != nil {
		return nil, err
	}

	// create bank
	bank, err = challenge.CreateBank(db, challenge.BankConfig{
		Prefix:  config.Prefix,
		Program: prg,
	})
	if err != nil {
		return nil, err
	}

	return bank, nil
}

func closeBank() {
	// close db
	if db != nil {
		_ = db.Close()
		db = nil
		bank = nil
	}

	// flush logger
	if logger != nil {
		_ = logger.Sync()
	}
}

func parseKeys(list []string) ([]program.Key, error) {
	keys := make([]program.Key, 0, len(list))
	for _, item := range list {
		key, err := program.ParseKey(item)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// dispatch executes the instruction through a dispatcher and waits for the
// result.
func dispatch(ins program.Instruction) error {
	// get bank
	bank, err := openBank()
	if err != nil {
		return err
	}

	// get signers
	signed := ins.Signers()
	if len(signers) > 0 {
		signed, err = parseKeys(signers)
		if err != nil {
			return err
		}
	}

	// create dispatcher
	dispatcher := challenge.NewDispatcher(bank, challenge.DispatcherConfig{
		Queue:  config.Queue,
		Logger: logger,
	})
	defer dispatcher.Close()

	// submit request
	result := make(chan error, 1)
	ok := dispatcher.Submit(challenge.Request{
		Instruction: ins,
		Signers:     signed,
	}, func(_ challenge.Request, err error) {
		result <- err
	})
	if !ok {
		return fmt.Errorf("dispatcher closed")
	}

	return <-result
}

func main() {
	err := rootCmd.Execute()
	closeBank()
	if err != nil {
		os.Exit(1)
	}
}
