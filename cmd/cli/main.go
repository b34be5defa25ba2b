package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/parkpay/internal/adapter/repository/csvfile"
	"github.com/iho/parkpay/internal/domain"
)

var (
	entryLogPath string
	txLogPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parkpay-cli",
		Short: "ParkPay operator tool",
		Long:  `A command line interface for inspecting the parking ledgers.`,
	}

	rootCmd.PersistentFlags().StringVar(&entryLogPath, "entry-log", "plates_log.csv", "Path to the entry log")
	rootCmd.PersistentFlags().StringVar(&txLogPath, "transaction-log", "data/transactions.csv", "Path to the transaction log")

	// Entry log commands
	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "Entry log operations",
	}

	var unpaidOnly bool
	listEntriesCmd := &cobra.Command{
		Use:   "list",
		Short: "List entry records",
		Run: func(cmd *cobra.Command, args []string) {
			listEntries(unpaidOnly)
		},
	}
	listEntriesCmd.Flags().BoolVar(&unpaidOnly, "unpaid", false, "Show only unpaid entries")
	entriesCmd.AddCommand(listEntriesCmd)

	// Transaction log commands
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Transaction log operations",
	}

	listTransactionsCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}
	transactionsCmd.AddCommand(listTransactionsCmd)

	// Fee commands
	feeCmd := &cobra.Command{
		Use:   "fee",
		Short: "Fee operations",
	}

	var entryAt string
	var rate int64
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the fee for an entry time as of now",
		Run: func(cmd *cobra.Command, args []string) {
			quoteFee(entryAt, rate)
		},
	}
	quoteCmd.Flags().StringVar(&entryAt, "entry", "", "Entry timestamp (ISO-8601, local time)")
	quoteCmd.Flags().Int64Var(&rate, "rate", 200, "Rate per hour in currency units")
	quoteCmd.MarkFlagRequired("entry")
	feeCmd.AddCommand(quoteCmd)

	rootCmd.AddCommand(entriesCmd, transactionsCmd, feeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func listEntries(unpaidOnly bool) {
	repo := csvfile.NewEntryRepository(entryLogPath)

	entries, err := repo.List(context.Background())
	if err != nil {
		fmt.Printf("Error reading entry log: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATE\tSTATUS\tENTERED")
	for _, e := range entries {
		if unpaidOnly && !e.Open() {
			continue
		}
		status := "UNPAID"
		if e.Status == domain.StatusPaid {
			status = "PAID"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Plate, status, domain.FormatEntryTime(e.Timestamp))
	}
	w.Flush()
}

func listTransactions() {
	repo := csvfile.NewTransactionRepository(txLogPath)

	txs, err := repo.List(context.Background())
	if err != nil {
		fmt.Printf("Error reading transaction log: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATE\tENTERED\tEXITED\tHOURS\tAMOUNT")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			tx.Plate,
			domain.FormatEntryTime(tx.EntryTime),
			domain.FormatEntryTime(tx.ExitTime),
			tx.DurationHours.StringFixed(2),
			tx.Amount,
		)
	}
	w.Flush()
}

func quoteFee(entryAt string, rate int64) {
	entryTime, err := domain.ParseEntryTime(entryAt)
	if err != nil {
		fmt.Printf("Invalid entry timestamp: %v\n", err)
		os.Exit(1)
	}

	fee, err := domain.ComputeFee(entryTime, time.Now(), decimal.NewFromInt(rate))
	if err != nil {
		fmt.Printf("Cannot compute fee: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Duration: %s hours\n", fee.DurationHours)
	fmt.Printf("Amount due: %d\n", fee.Amount)
}
