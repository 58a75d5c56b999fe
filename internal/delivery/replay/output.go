package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
)

// node is one element of the output array. Keys marshal in
// alphabetical order, which keeps the output byte-stable across runs.
type node = map[string]any

func commandNode(command string, timestamp int, output any) node {
	return node{
		"command":   command,
		"timestamp": timestamp,
		"output":    output,
	}
}

// errNode is the shape used by commands that report failures under an
// "error" key, descNode by the ones that use "description".
func errNode(command string, timestamp int, message string) node {
	return commandNode(command, timestamp, node{
		"error":     message,
		"timestamp": timestamp,
	})
}

func descNode(command string, timestamp int, message string) node {
	return commandNode(command, timestamp, node{
		"description": message,
		"timestamp":   timestamp,
	})
}

// WriteOutput renders the replay result as an indented JSON array, the
// format the inputs pair with.
func WriteOutput(path string, nodes []node) error {
	if nodes == nil {
		nodes = []node{}
	}
	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode replay output: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write replay output: %w", err)
	}
	return nil
}

func (r *Runner) userNode(user *domain.User) node {
	accounts := make([]node, 0)
	for _, account := range r.accounts.GetAccountsByOwner(user.Email) {
		accounts = append(accounts, r.accountNode(account))
	}
	return node{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"accounts":  accounts,
	}
}

func (r *Runner) accountNode(account *domain.Account) node {
	cards := make([]node, 0)
	for _, card := range r.cards.GetCardsByIBAN(account.IBAN) {
		cards = append(cards, node{
			"cardNumber": card.Number,
			"status":     string(card.Status),
		})
	}
	return node{
		"IBAN":     account.IBAN,
		"balance":  account.Balance,
		"currency": account.Currency,
		"type":     string(account.Type),
		"cards":    cards,
	}
}

// transactionNode shapes one ledger entry for history output. The base
// fields are shared; each type adds its own.
func (r *Runner) transactionNode(tx *domain.Transaction) node {
	out := node{
		"timestamp":   tx.Timestamp,
		"description": tx.Description,
	}

	switch tx.Type {
	case domain.TxCardPayment:
		out["amount"] = tx.Amount
		out["commerciant"] = tx.Merchant

	case domain.TxTransfer:
		out["senderIBAN"] = tx.From
		out["receiverIBAN"] = tx.To
		out["amount"] = strconv.FormatFloat(tx.Amount, 'f', -1, 64) + " " + tx.Currency
		out["transferType"] = r.transferSide(tx)

	case domain.TxCardCreated:
		out["account"] = tx.To
		out["card"] = tx.CardNumber
		out["cardHolder"] = tx.Email

	case domain.TxCardDeleted:
		out["account"] = tx.From
		out["card"] = tx.CardNumber
		out["cardHolder"] = tx.Email

	case domain.TxSplit:
		out["currency"] = tx.Currency
		out["splitPaymentType"] = tx.SplitKind
		out["involvedAccounts"] = tx.InvolvedAccounts
		if tx.SplitKind == string(domain.SplitCustom) {
			out["amountForUsers"] = tx.ShareAmounts
		} else {
			out["amount"] = tx.Amount
		}
		if tx.Error != "" {
			out["error"] = tx.Error
		}

	case domain.TxCashWithdrawal:
		out["amount"] = tx.Amount

	case domain.TxPlanUpgrade:
		out["accountIBAN"] = tx.To
		out["newPlanType"] = strings.TrimPrefix(tx.Description, "Upgrade plan to ")

	case domain.TxInterest:
		out["amount"] = tx.Amount
		out["currency"] = tx.Currency
	}

	return out
}

// transferSide labels a transfer entry from the viewpoint of the user
// whose history it sits in.
func (r *Runner) transferSide(tx *domain.Transaction) string {
	sender, err := r.accounts.GetAccountByIBAN(tx.From)
	if err == nil && sender.OwnerEmail == tx.Email {
		return "sent"
	}
	return "received"
}

func (r *Runner) printUsers(cmd CommandInput) node {
	users := make([]node, 0)
	for _, user := range r.users.AllUsers() {
		users = append(users, r.userNode(user))
	}
	return commandNode("printUsers", cmd.Timestamp, users)
}

func (r *Runner) printTransactions(cmd CommandInput) node {
	entries := r.ledger.ByEmail(cmd.Email)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})

	transactions := make([]node, 0)
	for _, tx := range entries {
		// A split request still collecting votes has no outcome to
		// show yet.
		if tx.Status == domain.TxPending {
			continue
		}
		transactions = append(transactions, r.transactionNode(tx))
	}
	return commandNode("printTransactions", cmd.Timestamp, transactions)
}

func (r *Runner) report(cmd CommandInput) node {
	account, err := r.accounts.GetAccountByIBAN(cmd.Account)
	if err != nil {
		return descNode("report", cmd.Timestamp, "Account not found")
	}

	transactions := make([]node, 0)
	for _, tx := range r.ledger.ByEmail(account.OwnerEmail) {
		if tx.Timestamp < cmd.StartTimestamp || tx.Timestamp > cmd.EndTimestamp {
			continue
		}
		if tx.Status == domain.TxPending {
			continue
		}
		if !touchesAccount(tx, account.IBAN) {
			continue
		}
		transactions = append(transactions, r.transactionNode(tx))
	}

	return commandNode("report", cmd.Timestamp, node{
		"IBAN":         account.IBAN,
		"balance":      account.Balance,
		"currency":     account.Currency,
		"transactions": transactions,
	})
}

func (r *Runner) spendingsReport(cmd CommandInput) node {
	account, err := r.accounts.GetAccountByIBAN(cmd.Account)
	if err != nil {
		return descNode("spendingsReport", cmd.Timestamp, "Account not found")
	}
	if account.Type == domain.AccountSavings {
		return commandNode("spendingsReport", cmd.Timestamp, node{
			"error": "This kind of report is not supported for a saving account",
		})
	}

	transactions := make([]node, 0)
	totals := make(map[string]float64)
	for _, tx := range r.ledger.ByEmail(account.OwnerEmail) {
		if tx.Type != domain.TxCardPayment || tx.From != account.IBAN {
			continue
		}
		if tx.Timestamp < cmd.StartTimestamp || tx.Timestamp > cmd.EndTimestamp {
			continue
		}
		totals[tx.Merchant] += tx.Amount
		transactions = append(transactions, node{
			"amount":      tx.Amount,
			"commerciant": tx.Merchant,
			"description": tx.Description,
			"timestamp":   tx.Timestamp,
		})
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	merchants := make([]node, 0, len(names))
	for _, name := range names {
		merchants = append(merchants, node{
			"commerciant": name,
			"total":       totals[name],
		})
	}

	return commandNode("spendingsReport", cmd.Timestamp, node{
		"IBAN":         account.IBAN,
		"balance":      account.Balance,
		"currency":     account.Currency,
		"commerciants": merchants,
		"transactions": transactions,
	})
}

// touchesAccount keeps an account report scoped: entries naming a
// different account of the same owner stay out.
func touchesAccount(tx *domain.Transaction, iban string) bool {
	if tx.From == "" && tx.To == "" {
		return true
	}
	if tx.From == iban || tx.To == iban {
		return true
	}
	for _, involved := range tx.InvolvedAccounts {
		if involved == iban {
			return true
		}
	}
	return false
}
