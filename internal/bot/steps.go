package bot

import (
	"fmt"

	"github.com/SergeyBogomolovv/kory-delivery/internal/catalog"
	"github.com/SergeyBogomolovv/kory-delivery/internal/entities"
	"github.com/shopspring/decimal"
)

// Option tokens. Stage tokens are a prefix followed by a catalog key.
const (
	TokenCountryPrefix     = "country_"
	TokenCategoryPrefix    = "cat_"
	TokenSubcategoryPrefix = "sub_"
	TokenCurrencyPrefix    = "cur_"

	TokenConfirm  = "confirm"
	TokenCancel   = "cancel"
	TokenBack     = "back"
	TokenNewOrder = "new_order"
)

// step describes one stage of the flow: which tokens it accepts, what it
// offers and how it is undone.
type step struct {
	prefix  string
	options func(c *catalog.Catalog, s entities.Session) []entities.Option
	// apply stores the chosen key and moves s to the next stage.
	apply func(c *catalog.Catalog, s *entities.Session, key string) error
	// back undoes the choice made to reach this stage.
	back func(c *catalog.Catalog, s *entities.Session)
}

var steps = map[entities.Stage]step{
	entities.StageChoosingCountry: {
		prefix:  TokenCountryPrefix,
		options: countryOptions,
		apply:   applyCountry,
	},
	entities.StageCountrySelected: {
		prefix:  TokenCategoryPrefix,
		options: categoryOptions,
		apply:   applyCategory,
		back: func(_ *catalog.Catalog, s *entities.Session) {
			s.Country = ""
			s.Stage = entities.StageChoosingCountry
		},
	},
	entities.StageCategorySelected: {
		prefix:  TokenSubcategoryPrefix,
		options: subcategoryOptions,
		apply:   applySubcategory,
		back: func(_ *catalog.Catalog, s *entities.Session) {
			s.Category = ""
			s.Stage = entities.StageCountrySelected
		},
	},
	entities.StageSubcategorySelected: {
		prefix:  TokenCurrencyPrefix,
		options: currencyOptions,
		apply:   applyCurrency,
		back:    clearSubcategory,
	},
	entities.StageAwaitingPrice: {
		back: func(c *catalog.Catalog, s *entities.Session) {
			country, _ := c.Country(s.Country)
			if country.FixedCurrency() {
				clearSubcategory(c, s)
				return
			}
			s.Currency = ""
			s.Stage = entities.StageSubcategorySelected
		},
	},
	entities.StageQuoted: {
		back: func(_ *catalog.Catalog, s *entities.Session) {
			s.PriceInput = decimal.Decimal{}
			s.Quote = nil
			s.Stage = entities.StageAwaitingPrice
		},
	},
}

func countryOptions(c *catalog.Catalog, _ entities.Session) []entities.Option {
	options := make([]entities.Option, 0, len(c.Countries))
	for _, country := range c.Countries {
		options = append(options, entities.Option{Label: country.Name, Token: TokenCountryPrefix + country.Key})
	}
	return options
}

func applyCountry(c *catalog.Catalog, s *entities.Session, key string) error {
	if _, ok := c.Country(key); !ok {
		return fmt.Errorf("%w: unknown country %q", entities.ErrValidation, key)
	}
	s.Country = key
	s.Stage = entities.StageCountrySelected
	return nil
}

func categoryOptions(c *catalog.Catalog, _ entities.Session) []entities.Option {
	options := make([]entities.Option, 0, len(c.Categories))
	for _, category := range c.Categories {
		options = append(options, entities.Option{Label: category.Name, Token: TokenCategoryPrefix + category.Key})
	}
	return options
}

func applyCategory(c *catalog.Catalog, s *entities.Session, key string) error {
	if _, ok := c.Category(key); !ok {
		return fmt.Errorf("%w: unknown category %q", entities.ErrValidation, key)
	}
	s.Category = key
	s.Stage = entities.StageCategorySelected
	return nil
}

func subcategoryOptions(c *catalog.Catalog, s entities.Session) []entities.Option {
	category, _ := c.Category(s.Category)
	options := make([]entities.Option, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		options = append(options, entities.Option{Label: sub.Name, Token: TokenSubcategoryPrefix + sub.Key})
	}
	return options
}

// applySubcategory skips the currency stage for countries with a fixed
// currency.
func applySubcategory(c *catalog.Catalog, s *entities.Session, key string) error {
	sub, ok := c.Subcategory(s.Category, key)
	if !ok {
		return fmt.Errorf("%w: unknown subcategory %q", entities.ErrValidation, key)
	}
	country, ok := c.Country(s.Country)
	if !ok {
		return fmt.Errorf("%w: unknown country %q", entities.ErrValidation, s.Country)
	}

	s.Subcategory = sub.Key
	s.WeightClass = sub.WeightKg
	if country.FixedCurrency() {
		s.Currency = country.Currency
		s.Stage = entities.StageAwaitingPrice
		return nil
	}
	s.Stage = entities.StageSubcategorySelected
	return nil
}

func currencyOptions(c *catalog.Catalog, s entities.Session) []entities.Option {
	country, _ := c.Country(s.Country)
	options := make([]entities.Option, 0, len(country.Currencies))
	for _, cur := range country.Currencies {
		options = append(options, entities.Option{Label: cur, Token: TokenCurrencyPrefix + cur})
	}
	return options
}

func applyCurrency(c *catalog.Catalog, s *entities.Session, key string) error {
	country, ok := c.Country(s.Country)
	if !ok || !country.Offers(key) {
		return fmt.Errorf("%w: currency %q is not offered for %q", entities.ErrValidation, key, s.Country)
	}
	s.Currency = key
	s.Stage = entities.StageAwaitingPrice
	return nil
}

func clearSubcategory(_ *catalog.Catalog, s *entities.Session) {
	s.Subcategory = ""
	s.WeightClass = decimal.Decimal{}
	s.Currency = ""
	s.Stage = entities.StageCategorySelected
}
