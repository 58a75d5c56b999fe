package replay

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	publisher "github.com/LavaJover/shvark-banking-sim/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-banking-sim/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/account"
	paymentdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/payment"
	splitdto "github.com/LavaJover/shvark-banking-sim/internal/usecase/dto/split"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/payment"
	"github.com/LavaJover/shvark-banking-sim/internal/usecase/split"
)

// EventSink receives the ledger event stream after a run. Both the
// kafka publisher and the no-op publisher satisfy it.
type EventSink interface {
	BatchPublishLedgerEvents(topic string, events []publisher.LedgerEvent) error
}

// Runner replays one command stream against a freshly seeded world.
// Commands run strictly in input order on a single goroutine; a failed
// command contributes an error node to the output and the run goes on.
type Runner struct {
	users     domain.UserRepository
	accounts  domain.AccountRepository
	cards     domain.CardRepository
	merchants domain.MerchantDirectory
	ledger    domain.LedgerRepository
	splits    domain.SplitRepository
	graph     *rates.Graph

	accountUC   account.Usecase
	paymentUC   payment.Usecase
	coordinator split.Coordinator

	events EventSink
	topic  string

	// Optional; nil disables instrumentation.
	metrics *metrics.ReplayMetrics

	logger *slog.Logger
}

func NewRunner(
	users domain.UserRepository,
	accounts domain.AccountRepository,
	cards domain.CardRepository,
	merchants domain.MerchantDirectory,
	ledger domain.LedgerRepository,
	splits domain.SplitRepository,
	graph *rates.Graph,
	accountUC account.Usecase,
	paymentUC payment.Usecase,
	coordinator split.Coordinator,
	events EventSink,
	topic string,
	replayMetrics *metrics.ReplayMetrics,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		users:       users,
		accounts:    accounts,
		cards:       cards,
		merchants:   merchants,
		ledger:      ledger,
		splits:      splits,
		graph:       graph,
		accountUC:   accountUC,
		paymentUC:   paymentUC,
		coordinator: coordinator,
		events:      events,
		topic:       topic,
		metrics:     replayMetrics,
		logger:      logger,
	}
}

// Run seeds the world from the input, replays every command and
// returns the output nodes in command order.
func (r *Runner) Run(input *ObjectInput) []node {
	r.seed(input)
	r.logger.Info("replay started",
		"users", len(input.Users),
		"merchants", len(input.Merchants),
		"commands", len(input.Commands),
	)

	output := make([]node, 0)
	for _, cmd := range input.Commands {
		out, err := r.dispatch(cmd)
		if err != nil {
			r.logger.Warn("command failed", "command", cmd.Command, "timestamp", cmd.Timestamp, "error", err)
			out = r.failure(cmd, err)
			r.countCommand(cmd.Command, "error")
			if errors.Is(err, domain.ErrNoConversionPath) && r.metrics != nil {
				r.metrics.ConversionMissTotal.Inc()
			}
		} else {
			r.countCommand(cmd.Command, "ok")
		}
		if out != nil {
			output = append(output, out)
		}
		if r.metrics != nil {
			r.metrics.SplitsLiveCount.Set(float64(len(r.splits.Live())))
		}
	}

	r.flushEvents()
	r.logger.Info("replay finished", "ledger_entries", len(r.ledger.All()), "output_nodes", len(output))
	return output
}

func (r *Runner) seed(input *ObjectInput) {
	for _, u := range input.Users {
		plan := domain.PlanStandard
		if u.Occupation == "student" {
			plan = domain.PlanStudent
		}
		r.users.AddUser(&domain.User{
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Email:      u.Email,
			Birthdate:  u.Birthdate,
			Occupation: u.Occupation,
			Plan:       plan,
		})
	}
	for _, m := range input.Merchants {
		r.merchants.AddMerchant(&domain.Merchant{
			ID:       m.ID,
			Name:     m.Name,
			Account:  m.Account,
			Category: m.Category,
			Policy:   domain.CashbackPolicy(m.Policy),
		})
	}
	for _, rate := range input.ExchangeRates {
		r.graph.AddRate(rate.From, rate.To, rate.Rate)
	}
}

// dispatch executes one command. A nil node with a nil error means the
// command succeeded silently; report commands always produce a node.
func (r *Runner) dispatch(cmd CommandInput) (node, error) {
	switch cmd.Command {
	case "addAccount":
		_, err := r.accountUC.CreateAccount(cmd.Email, cmd.Currency,
			domain.AccountType(cmd.AccountType), cmd.InterestRate, cmd.Timestamp)
		return nil, err

	case "addFunds":
		return nil, r.paymentUC.AddFunds(cmd.Account, cmd.Amount)

	case "createCard":
		_, err := r.accountUC.CreateCard(cmd.Email, cmd.Account, false, cmd.Timestamp)
		return nil, err

	case "createOneTimeCard":
		_, err := r.accountUC.CreateCard(cmd.Email, cmd.Account, true, cmd.Timestamp)
		return nil, err

	case "deleteCard":
		return nil, r.accountUC.DeleteCard(cmd.CardNumber, cmd.Timestamp)

	case "deleteAccount":
		if err := r.accountUC.DeleteAccount(cmd.Email, cmd.Account, cmd.Timestamp); err != nil {
			return nil, err
		}
		return commandNode("deleteAccount", cmd.Timestamp, node{
			"success":   "Account deleted",
			"timestamp": cmd.Timestamp,
		}), nil

	case "setMinimumBalance":
		return nil, r.accountUC.SetMinimumBalance(cmd.Account, cmd.Amount)

	case "setAlias":
		return nil, r.accountUC.SetAlias(cmd.Email, cmd.Account, cmd.Alias)

	case "checkCardStatus":
		return nil, r.accountUC.CheckCardStatus(cmd.CardNumber, cmd.Timestamp)

	case "payOnline":
		return nil, r.paymentUC.PayOnline(&paymentdto.PayOnlineInput{
			Email:      cmd.Email,
			CardNumber: cmd.CardNumber,
			Amount:     cmd.Amount,
			Currency:   cmd.Currency,
			Merchant:   cmd.Merchant,
			Timestamp:  cmd.Timestamp,
		})

	case "cashWithdrawal":
		return nil, r.paymentUC.CashWithdrawal(&paymentdto.CashWithdrawalInput{
			Email:      cmd.Email,
			CardNumber: cmd.CardNumber,
			Amount:     cmd.Amount,
			Timestamp:  cmd.Timestamp,
		})

	case "withdrawSavings":
		return nil, r.accountUC.WithdrawSavings(cmd.Account, cmd.Amount, cmd.Currency, cmd.Timestamp)

	case "sendMoney":
		return nil, r.paymentUC.SendMoney(&paymentdto.SendMoneyInput{
			FromIBAN:    cmd.Account,
			ToIBAN:      cmd.Receiver,
			Amount:      cmd.Amount,
			Description: cmd.Description,
			Timestamp:   cmd.Timestamp,
		})

	case "splitPayment":
		_, err := r.coordinator.Create(&splitdto.CreateSplitInput{
			ParticipantIBANs: cmd.Accounts,
			TotalAmount:      cmd.Amount,
			Currency:         cmd.Currency,
			Mode:             domain.SplitMode(cmd.SplitPaymentType),
			Shares:           cmd.AmountForUsers,
			Timestamp:        cmd.Timestamp,
		})
		if err == nil && r.metrics != nil {
			r.metrics.SplitsCreatedTotal.WithLabelValues(cmd.SplitPaymentType).Inc()
		}
		return nil, err

	case "acceptSplitPayment":
		return nil, r.vote(cmd.Email, true)

	case "rejectSplitPayment":
		return nil, r.vote(cmd.Email, false)

	case "upgradePlan":
		return nil, r.paymentUC.UpgradePlan(&paymentdto.UpgradePlanInput{
			IBAN:      cmd.Account,
			NewPlan:   cmd.NewPlanType,
			Timestamp: cmd.Timestamp,
		})

	case "addInterest":
		return nil, r.accountUC.AddInterest(cmd.Account, cmd.Timestamp)

	case "changeInterestRate":
		return nil, r.accountUC.ChangeInterestRate(cmd.Account, cmd.InterestRate, cmd.Timestamp)

	case "printUsers":
		return r.printUsers(cmd), nil

	case "printTransactions":
		return r.printTransactions(cmd), nil

	case "report":
		return r.report(cmd), nil

	case "spendingsReport":
		return r.spendingsReport(cmd), nil

	default:
		return nil, fmt.Errorf("unknown command: %s", cmd.Command)
	}
}

func (r *Runner) vote(email string, accepted bool) error {
	result, err := r.coordinator.Vote(email, accepted)
	if err != nil {
		return err
	}
	if r.metrics == nil {
		return nil
	}
	switch result {
	case split.VoteSettled:
		r.metrics.SplitsSettledTotal.Inc()
	case split.VoteCancelled:
		r.metrics.SplitsCancelledTotal.Inc()
	}
	return nil
}

// failure maps a command error to the output node the command family
// uses for it.
func (r *Runner) failure(cmd CommandInput, err error) node {
	switch {
	case errors.Is(err, domain.ErrBalanceNotZero):
		return errNode(cmd.Command, cmd.Timestamp,
			"Account couldn't be deleted - there are funds remaining")
	case errors.Is(err, domain.ErrNotSavingsAccount):
		// The withdrawal command phrases this differently from the
		// interest commands.
		if cmd.Command == "withdrawSavings" {
			return descNode(cmd.Command, cmd.Timestamp, "Account is not a savings account")
		}
		return errNode(cmd.Command, cmd.Timestamp, "This is not a savings account")
	case errors.Is(err, domain.ErrInsufficientSavings):
		return descNode(cmd.Command, cmd.Timestamp, "Insufficient savings balance")
	case errors.Is(err, domain.ErrCardFrozen):
		return descNode(cmd.Command, cmd.Timestamp, "The card is frozen")
	case errors.Is(err, domain.ErrCardNotFound):
		return descNode(cmd.Command, cmd.Timestamp, "Card not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		return descNode(cmd.Command, cmd.Timestamp, "Account not found")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		return descNode(cmd.Command, cmd.Timestamp, "User not found")
	}
	return node{
		"command": cmd.Command,
		"error":   err.Error(),
	}
}

func (r *Runner) countCommand(command, result string) {
	if r.metrics == nil {
		return
	}
	r.metrics.CommandsTotal.WithLabelValues(command, result).Inc()
}

// flushEvents streams the final ledger in one batch. Publishing is
// observability only: a broker failure is logged, never surfaced.
func (r *Runner) flushEvents() {
	entries := r.ledger.All()
	events := make([]publisher.LedgerEvent, 0, len(entries))
	for _, tx := range entries {
		if r.metrics != nil {
			r.metrics.LedgerEntriesTotal.WithLabelValues(string(tx.Type)).Inc()
		}
		iban := tx.From
		if iban == "" {
			iban = tx.To
		}
		events = append(events, publisher.LedgerEvent{
			TransactionID: tx.ID,
			SplitID:       tx.SplitID,
			Email:         tx.Email,
			IBAN:          iban,
			Type:          string(tx.Type),
			Status:        string(tx.Status),
			Amount:        tx.Amount,
			Currency:      tx.Currency,
			Timestamp:     tx.Timestamp,
			Description:   tx.Description,
		})
	}
	if err := r.events.BatchPublishLedgerEvents(r.topic, events); err != nil {
		r.logger.Warn("ledger event publish failed", "error", err)
	}
}
