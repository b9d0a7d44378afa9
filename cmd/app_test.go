package cmd

import (
	"os"
	"testing"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/google/subcommands"
)

func TestRecordTransaction(t *testing.T) {
	*dataDir = t.TempDir()

	if got := recordTransaction(banktracker.Income, 2500, "August salary", "salary"); got != subcommands.ExitSuccess {
		t.Fatalf("recordTransaction returned %v", got)
	}

	ledger, err := loadLedger(openStore())
	if err != nil {
		t.Fatalf("loadLedger: %v", err)
	}
	if len(ledger.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(ledger.Transactions))
	}
	tx := ledger.Transactions[0]
	if tx.Type != banktracker.Income || tx.Category != "salary" {
		t.Errorf("unexpected transaction: %+v", tx)
	}
}

func TestRecordTransactionRejectsBadInput(t *testing.T) {
	*dataDir = t.TempDir()

	if got := recordTransaction(banktracker.Expense, 0, "nothing", "other"); got != subcommands.ExitUsageError {
		t.Fatalf("a zero amount returned %v, want usage error", got)
	}

	ledger, err := loadLedger(openStore())
	if err != nil {
		t.Fatalf("loadLedger: %v", err)
	}
	if len(ledger.Transactions) != 0 {
		t.Error("a rejected transaction must not be persisted")
	}
}

func TestCmcApiKeyEnvFallback(t *testing.T) {
	*cmcApiFlag = ""
	os.Setenv(cmcApiKeyEnv, "from-env")
	defer os.Unsetenv(cmcApiKeyEnv)

	if got := cmcApiKey(); got != "from-env" {
		t.Errorf("cmcApiKey() = %q, want the environment value", got)
	}
}
