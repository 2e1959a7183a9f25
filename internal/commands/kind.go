package commands

import (
	"fmt"
	"os"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/billset"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/config"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/store"
)

func kindFromArg(arg string) (model.BillKind, error) {
	switch arg {
	case "scrap":
		return model.KindScrap, nil
	case "ingot":
		return model.KindIngot, nil
	}
	return "", fmt.Errorf("unknown bill kind %q (want scrap or ingot)", arg)
}

// loadConfig reads billgen.yaml, falling back to defaults when the file is
// missing so every command works in an uninitialized directory.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default("", ".billgen")
	}
	return cfg
}

// openSet restores a kind's bill set from its persisted namespace and
// applies the configured defaults. The configured capacity seeds fresh
// sessions only; a persisted snapshot keeps its own capacity.
func openSet(cfg *config.Config, kind model.BillKind) (*billset.Service, *store.KV, error) {
	kv, err := store.Open(cfg.State.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening state dir: %w", err)
	}

	adapter := store.NewAdapter(kv, kind)
	svc := billset.NewService(kind, billset.PolicyFor(kind), adapter)
	bills, capacity, source := adapter.Load()
	svc.Restore(bills, capacity)
	if source == store.SourceDefault && cfg.Defaults.BillsPerPage != capacity {
		if err := svc.SetCapacity(cfg.Defaults.BillsPerPage); err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring configured bills_per_page: %v\n", err)
		}
	}
	svc.SetSettings(model.GlobalSettings{
		IncludeDhara:       cfg.Defaults.IncludeDhara,
		IncludeBankCharges: cfg.Defaults.IncludeBankCharges,
	})
	return svc, kv, nil
}
