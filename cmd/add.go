package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/kas/internal/constants"
	"github.com/hance08/kas/internal/model"
	"github.com/hance08/kas/internal/service"
	"github.com/hance08/kas/internal/ui/prompts"
	"github.com/hance08/kas/internal/ui/views"
	"github.com/hance08/kas/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type     string
	Amount   string
	Wallet   string
	Category string
	Note     string
	Date     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add an income or expense transaction. The wallet balance moves with it.

Examples:
	# Interactive mode
	kas add

	# Quick mode with flags
	kas add --type expense --amount 25000 --wallet Dompet --category Makan --note "Nasi goreng"

	# Income on a given date
	kas add -t income -a 8500000 -w BCA -c Gaji --date 2025-03-25`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&flags.Type, "type", "t", constants.ModeExpense, "Transaction type: income or expense")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 25000 or 25000.50)")
	cmd.Flags().StringVarP(&flags.Wallet, "wallet", "w", "", "Wallet the money moves in or out of")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Category name (optional)")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "Note (optional)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	var input service.TransactionInput
	var err error

	hasFlags := r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("wallet")

	if hasFlags {
		input, err = r.flagsMode()
	} else {
		input, err = r.interactiveMode(ctx)
	}
	if err != nil {
		return err
	}

	f := r.svc.Formatter()
	views.RenderTransactionSummary(input, f)

	if !hasFlags {
		confirm, err := prompts.PromptConfirm("Save this transaction?", true)
		if err != nil {
			return err
		}
		if !confirm {
			return fmt.Errorf("transaction cancelled")
		}
	}

	t, err := r.svc.Transaction.CreateTransaction(ctx, input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %s)\n", t.ID.String()[:8])

	if w, err := r.svc.Wallet.GetWalletByName(ctx, input.WalletName); err == nil {
		pterm.Info.Printf("%s balance: %s\n", w.Name, f.AmountString(w.Balance))
	}
	return nil
}

func (r *addRunner) flagsMode() (service.TransactionInput, error) {
	if r.flags.Amount == "" || r.flags.Wallet == "" {
		return service.TransactionInput{}, fmt.Errorf("when using flags, --amount and --wallet are both required")
	}

	kind, err := validation.ParseKind(r.flags.Type)
	if err != nil {
		return service.TransactionInput{}, err
	}

	date, err := validation.ParseDate(r.flags.Date, r.svc.Config.Location())
	if err != nil {
		return service.TransactionInput{}, err
	}

	return service.TransactionInput{
		WalletName:   r.flags.Wallet,
		CategoryName: r.flags.Category,
		Kind:         kind,
		Amount:       strings.TrimSpace(r.flags.Amount),
		Note:         r.flags.Note,
		OccurredAt:   date,
	}, nil
}

func (r *addRunner) interactiveMode(ctx context.Context) (service.TransactionInput, error) {
	wallets, err := r.svc.Wallet.ListWallets(ctx)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("failed to load wallets: %w", err)
	}

	// Step 1: Select transaction type
	kind, err := prompts.PromptTransactionKind()
	if err != nil {
		return service.TransactionInput{}, err
	}

	// Step 2: Get amount
	amount, err := prompts.PromptAmount(
		"Amount:",
		"Enter the amount without a currency symbol (e.g. 25000 or 25,000.50)",
	)
	if err != nil {
		return service.TransactionInput{}, err
	}

	// Step 3: Wallet and category
	walletMsg := "Pay from:"
	if kind == model.KindIncome {
		walletMsg = "Deposit to:"
	}
	walletName, err := prompts.PromptWalletSelection(wallets, walletMsg, r.svc.Formatter().AmountString)
	if err != nil {
		return service.TransactionInput{}, err
	}

	categories, err := r.svc.Category.ByKind(ctx, kind)
	if err != nil {
		return service.TransactionInput{}, err
	}
	categoryName, err := prompts.PromptCategorySelection(categories, "Category:")
	if err != nil {
		return service.TransactionInput{}, err
	}

	// Step 4: Note and date
	note, err := prompts.PromptNote("Note:", 200)
	if err != nil {
		return service.TransactionInput{}, err
	}

	loc := r.svc.Config.Location()
	dateStr, err := prompts.PromptTransactionDate(loc)
	if err != nil {
		return service.TransactionInput{}, err
	}
	date, err := validation.ParseDate(dateStr, loc)
	if err != nil {
		return service.TransactionInput{}, err
	}

	return service.TransactionInput{
		WalletName:   walletName,
		CategoryName: categoryName,
		Kind:         kind,
		Amount:       strings.TrimSpace(amount),
		Note:         note,
		OccurredAt:   date,
	}, nil
}
