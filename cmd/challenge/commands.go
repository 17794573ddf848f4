package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/256dpi/challenge/program"
)

var (
	admitCost     uint64
	triesPerAdmit uint8
	redeemTarget  string
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// generate key
		key, private, err := program.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "public:  %s\n", key)
		fmt.Fprintf(cmd.OutOrStdout(), "private: %s\n", hex.EncodeToString(private.Seed()))

		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address [authority] [participant]",
	Short: "Derive the challenge and admission addresses",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse keys
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}

		// get program
		prg, err := config.Program(logger)
		if err != nil {
			return err
		}

		// derive challenge
		challenge, bump := prg.ChallengeAddress(keys[0])
		fmt.Fprintf(cmd.OutOrStdout(), "challenge: %s (bump %d)\n", challenge, bump)

		// derive admission
		if len(keys) > 1 {
			admission, bump := prg.AdmissionAddress(challenge, keys[1])
			fmt.Fprintf(cmd.OutOrStdout(), "admission: %s (bump %d)\n", admission, bump)
		}

		return nil
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint [key] [amount]",
	Short: "Credit lamports to an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse key and amount
		key, err := program.ParseKey(args[0])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// mint
		err = bank.Mint(key, amount)
		if err != nil {
			return err
		}

		return printBalance(cmd, key)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [key]",
	Short: "Print the balance of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse key
		key, err := program.ParseKey(args[0])
		if err != nil {
			return err
		}

		return printBalance(cmd, key)
	},
}

var createCmd = &cobra.Command{
	Use:   "create [payer] [authority] [solutions...]",
	Short: "Create a challenge",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse keys
		keys, err := parseKeys(args[:2])
		if err != nil {
			return err
		}

		// parse redeem
		redeem := keys[1]
		if redeemTarget != "" {
			redeem, err = program.ParseKey(redeemTarget)
			if err != nil {
				return err
			}
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// execute
		ins := bank.Program().NewCreateChallenge(keys[0], keys[1], admitCost, triesPerAdmit, redeem, args[2:])
		err = dispatch(ins)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "challenge: %s\n", ins.Challenge)

		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add [payer] [authority] [solutions...]",
	Short: "Add solutions to a challenge",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse keys
		keys, err := parseKeys(args[:2])
		if err != nil {
			return err
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// execute
		ins := bank.Program().NewAddSolutions(keys[0], keys[1], args[2:])
		err = dispatch(ins)
		if err != nil {
			return err
		}

		// get record
		record, err := bank.Challenge(keys[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "solutions: %d\n", len(record.Solutions))

		return nil
	},
}

var admitCmd = &cobra.Command{
	Use:   "admit [participant] [authority]",
	Short: "Buy an admission to a challenge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse keys
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// execute
		ins := bank.Program().NewAdmit(keys[0], keys[1])
		err = dispatch(ins)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "tries: %d\n", ins.Tries)

		return nil
	},
}

var redeemCmd = &cobra.Command{
	Use:   "redeem [participant] [authority] [redeem] [solution]",
	Short: "Submit a guess for a challenge",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse keys
		keys, err := parseKeys(args[:3])
		if err != nil {
			return err
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// execute
		ins := bank.Program().NewRedeem(keys[0], keys[1], keys[2], args[3])
		err = dispatch(ins)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "solved: %t\n", ins.Solved)
		fmt.Fprintf(cmd.OutOrStdout(), "reward: %d\n", ins.Reward)
		fmt.Fprintf(cmd.OutOrStdout(), "tries: %d\n", ins.Tries)

		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [authority]",
	Short: "Print the challenge of an authority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// parse key
		authority, err := program.ParseKey(args[0])
		if err != nil {
			return err
		}

		// get bank
		bank, err := openBank()
		if err != nil {
			return err
		}

		// get record
		record, err := bank.Challenge(authority)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(record))

		return nil
	},
}

func printBalance(cmd *cobra.Command, key program.Key) error {
	// get bank
	bank, err := openBank()
	if err != nil {
		return err
	}

	// get balance
	balance, err := bank.Balance(key)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "balance: %d\n", balance)

	return nil
}
