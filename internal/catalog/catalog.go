// Package catalog holds the declarative data behind the order intake flow:
// countries and their currencies, shipping tariffs, categories with weight
// classes, the goods fee and the commission tiers.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

//go:embed default.json
var defaultCatalog []byte

type Country struct {
	Key  string `json:"key" validate:"required,alphanum"`
	Name string `json:"name" validate:"required"`

	// Currency is the canonical currency. Empty for multi-currency regions,
	// which list the choices in Currencies instead.
	Currency   string   `json:"currency" validate:"omitempty,len=3,uppercase"`
	Currencies []string `json:"currencies" validate:"omitempty,dive,len=3,uppercase"`

	ShippingPerKgUSD decimal.Decimal `json:"shipping_per_kg_usd"`
}

// FixedCurrency reports whether goods prices are always in Currency.
func (c Country) FixedCurrency() bool {
	return c.Currency != ""
}

// Offers reports whether prices may be given in currency for this country.
func (c Country) Offers(currency string) bool {
	if c.FixedCurrency() {
		return currency == c.Currency
	}
	for _, cur := range c.Currencies {
		if cur == currency {
			return true
		}
	}
	return false
}

type Subcategory struct {
	Key      string          `json:"key" validate:"required,alphanum"`
	Name     string          `json:"name" validate:"required"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

type Category struct {
	Key           string        `json:"key" validate:"required,alphanum"`
	Name          string        `json:"name" validate:"required"`
	Subcategories []Subcategory `json:"subcategories" validate:"required,min=1,dive"`
}

// CommissionTier charges Fee for subtotals up to and including UpTo.
// A nil UpTo is unbounded.
type CommissionTier struct {
	UpTo *decimal.Decimal `json:"up_to"`
	Fee  decimal.Decimal  `json:"fee"`
}

type Catalog struct {
	BaseCurrency    string           `json:"base_currency" validate:"required,len=3,uppercase"`
	GoodsFeeRate    decimal.Decimal  `json:"goods_fee_rate"`
	Countries       []Country        `json:"countries" validate:"required,min=1,dive"`
	Categories      []Category       `json:"categories" validate:"required,min=1,dive"`
	CommissionTiers []CommissionTier `json:"commission_tiers" validate:"required,min=1"`

	countries  map[string]Country
	categories map[string]Category
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("invalid embedded catalog: " + err.Error())
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) index() error {
	if c.GoodsFeeRate.IsNegative() {
		return errors.New("goods fee rate is negative")
	}

	c.countries = make(map[string]Country, len(c.Countries))
	for _, country := range c.Countries {
		if _, ok := c.countries[country.Key]; ok {
			return fmt.Errorf("duplicate country %q", country.Key)
		}
		if country.FixedCurrency() == (len(country.Currencies) > 0) {
			return fmt.Errorf("country %q must have either a currency or a currency list", country.Key)
		}
		if country.ShippingPerKgUSD.IsNegative() {
			return fmt.Errorf("country %q has a negative shipping tariff", country.Key)
		}
		c.countries[country.Key] = country
	}

	c.categories = make(map[string]Category, len(c.Categories))
	for _, category := range c.Categories {
		if _, ok := c.categories[category.Key]; ok {
			return fmt.Errorf("duplicate category %q", category.Key)
		}
		seen := make(map[string]struct{}, len(category.Subcategories))
		for _, sub := range category.Subcategories {
			if _, ok := seen[sub.Key]; ok {
				return fmt.Errorf("duplicate subcategory %q in %q", sub.Key, category.Key)
			}
			if !sub.WeightKg.IsPositive() {
				return fmt.Errorf("subcategory %q has no weight class", sub.Key)
			}
			seen[sub.Key] = struct{}{}
		}
		c.categories[category.Key] = category
	}

	return validateTiers(c.CommissionTiers)
}

// Tiers must be ascending by bound with non-decreasing fees; only the last
// one may be unbounded.
func validateTiers(tiers []CommissionTier) error {
	for i, tier := range tiers {
		if tier.Fee.IsNegative() {
			return fmt.Errorf("commission tier %d has a negative fee", i)
		}
		if tier.UpTo == nil && i != len(tiers)-1 {
			return fmt.Errorf("commission tier %d is unbounded but not last", i)
		}
		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if tier.UpTo != nil && !tier.UpTo.GreaterThan(*prev.UpTo) {
			return fmt.Errorf("commission tier %d bound is not ascending", i)
		}
		if tier.Fee.LessThan(prev.Fee) {
			return fmt.Errorf("commission tier %d fee decreases", i)
		}
	}
	return nil
}

func (c *Catalog) Country(key string) (Country, bool) {
	country, ok := c.countries[key]
	return country, ok
}

func (c *Catalog) Category(key string) (Category, bool) {
	category, ok := c.categories[key]
	return category, ok
}

func (c *Catalog) Subcategory(categoryKey, key string) (Subcategory, bool) {
	category, ok := c.categories[categoryKey]
	if !ok {
		return Subcategory{}, false
	}
	for _, sub := range category.Subcategories {
		if sub.Key == key {
			return sub, true
		}
	}
	return Subcategory{}, false
}

// Commission returns the fee of the first tier whose bound the subtotal
// does not exceed, or of the last tier.
func (c *Catalog) Commission(subtotal decimal.Decimal) decimal.Decimal {
	for _, tier := range c.CommissionTiers {
		if tier.UpTo == nil || subtotal.LessThanOrEqual(*tier.UpTo) {
			return tier.Fee
		}
	}
	return c.CommissionTiers[len(c.CommissionTiers)-1].Fee
}

// RatePair is a (base, target) conversion the pricing engine may request.
type RatePair struct {
	Base   string
	Target string
}

// RatePairs lists every conversion pricing an order in this catalog can
// need, in catalog order and without duplicates.
func (c *Catalog) RatePairs() []RatePair {
	var pairs []RatePair
	seen := make(map[RatePair]struct{})
	add := func(p RatePair) {
		if p.Base == p.Target {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	add(RatePair{Base: entities.CurrencyUSD, Target: c.BaseCurrency})
	for _, country := range c.Countries {
		if country.Currency == entities.CurrencyCNY {
			add(RatePair{Base: entities.CurrencyCNY, Target: c.BaseCurrency})
			continue
		}
		currencies := country.Currencies
		if country.FixedCurrency() {
			currencies = []string{country.Currency}
		}
		for _, cur := range currencies {
			add(RatePair{Base: cur, Target: entities.CurrencyUSD})
		}
	}
	return pairs
}
