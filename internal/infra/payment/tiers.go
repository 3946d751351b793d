package payment

import (
	"os"
	"regexp"

	"shopbot/internal/domain/money"
	domain "shopbot/internal/domain/payment"
	"shopbot/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// tiersFile is the on-disk layout:
//
//	defaults:
//	  - key: mercadopago_pix
//	    label: Pix
//	    tiers: ["10.00", "25.00", "50.00"]
//	owners:
//	  3f0c...:
//	    - key: mercadopago_checkout
//	      label: Cartão
//	      tiers: ["20", "50"]
type tiersFile struct {
	Defaults []providerEntry            `yaml:"defaults"`
	Owners   map[string][]providerEntry `yaml:"owners"`
}

type providerEntry struct {
	Key   string   `yaml:"key"`
	Label string   `yaml:"label"`
	Tiers []string `yaml:"tiers"`
}

type providerTiers struct {
	provider domain.Provider
	tiers    []money.Cents
}

var providerKey = regexp.MustCompile(`^[a-z0-9_]+$`)

// Tiers answers which providers and amounts an owner offers. Owners without
// their own entry fall back to the defaults.
type Tiers struct {
	defaults []providerTiers
	owners   map[uuid.UUID][]providerTiers
}

func LoadTiers(path string) (*Tiers, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read payment tiers %s", path)
	}
	return ParseTiers(raw)
}

func ParseTiers(raw []byte) (*Tiers, error) {
	var f tiersFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errs.Wrap(err, "failed to parse payment tiers")
	}

	t := &Tiers{owners: make(map[uuid.UUID][]providerTiers, len(f.Owners))}
	defaults, err := convertEntries(f.Defaults)
	if err != nil {
		return nil, errs.Wrap(err, "defaults")
	}
	t.defaults = defaults

	for key, entries := range f.Owners {
		ownerID, err := uuid.Parse(key)
		if err != nil {
			return nil, errs.Wrapf(err, "owner key %q", key)
		}
		converted, err := convertEntries(entries)
		if err != nil {
			return nil, errs.Wrapf(err, "owner %s", key)
		}
		t.owners[ownerID] = converted
	}
	return t, nil
}

func convertEntries(entries []providerEntry) ([]providerTiers, error) {
	out := make([]providerTiers, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !providerKey.MatchString(e.Key) {
			return nil, errs.Newf("invalid provider key %q", e.Key)
		}
		if seen[e.Key] {
			return nil, errs.Newf("duplicate provider %q", e.Key)
		}
		seen[e.Key] = true

		pt := providerTiers{provider: domain.Provider{Key: e.Key, Label: e.Label}}
		if pt.provider.Label == "" {
			pt.provider.Label = e.Key
		}
		for _, s := range e.Tiers {
			c, err := money.Parse(s)
			if err != nil {
				return nil, errs.Wrapf(err, "provider %s tier %q", e.Key, s)
			}
			if !c.IsPositive() {
				return nil, errs.Newf("provider %s tier %q must be positive", e.Key, s)
			}
			pt.tiers = append(pt.tiers, c)
		}
		out = append(out, pt)
	}
	return out, nil
}

func (t *Tiers) forOwner(ownerID uuid.UUID) []providerTiers {
	if own, ok := t.owners[ownerID]; ok {
		return own
	}
	return t.defaults
}

func (t *Tiers) Providers(ownerID uuid.UUID) []domain.Provider {
	entries := t.forOwner(ownerID)
	out := make([]domain.Provider, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.provider)
	}
	return out
}

// Tiers returns a copy so callers cannot change the configuration.
func (t *Tiers) Tiers(ownerID uuid.UUID, provider string) []money.Cents {
	for _, e := range t.forOwner(ownerID) {
		if e.provider.Key == provider {
			return append([]money.Cents(nil), e.tiers...)
		}
	}
	return nil
}
