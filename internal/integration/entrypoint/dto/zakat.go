package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ZakatAssetsRequest represents zakatable assets in a request body.
// Amounts are accepted as JSON numbers or numeric strings.
type ZakatAssetsRequest struct {
	Cash           decimal.Decimal `json:"cash"`
	Savings        decimal.Decimal `json:"savings"`
	GoldGrams      decimal.Decimal `json:"gold_grams"`
	SilverGrams    decimal.Decimal `json:"silver_grams"`
	Investments    decimal.Decimal `json:"investments"`
	Business       decimal.Decimal `json:"business"`
	DebtsOwedToYou decimal.Decimal `json:"debts_owed_to_you"`
	DebtsYouOwe    decimal.Decimal `json:"debts_you_owe"`
}

// ToEntity converts the request to domain assets.
func (r ZakatAssetsRequest) ToEntity() entity.ZakatAssets {
	return entity.ZakatAssets{
		Cash:           r.Cash,
		Savings:        r.Savings,
		GoldGrams:      r.GoldGrams,
		SilverGrams:    r.SilverGrams,
		Investments:    r.Investments,
		Business:       r.Business,
		DebtsOwedToYou: r.DebtsOwedToYou,
		DebtsYouOwe:    r.DebtsYouOwe,
	}
}

// ZakatPricesRequest represents market prices in a request body.
type ZakatPricesRequest struct {
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram"`
	Nisab              decimal.Decimal `json:"nisab"`
}

// ToEntity converts the request to domain prices.
func (r ZakatPricesRequest) ToEntity() entity.ZakatPrices {
	return entity.ZakatPrices{
		GoldPricePerGram:   r.GoldPricePerGram,
		SilverPricePerGram: r.SilverPricePerGram,
		Nisab:              r.Nisab,
	}
}

// CalculateZakatRequest represents an ad-hoc calculation. Omitted parts fall back to stored values.
type CalculateZakatRequest struct {
	Assets *ZakatAssetsRequest `json:"assets"`
	Prices *ZakatPricesRequest `json:"prices"`
}

// AddZakatEntryRequest represents the request body for recording a calculation.
type AddZakatEntryRequest struct {
	Date   string              `json:"date"`
	Assets *ZakatAssetsRequest `json:"assets"`
	Prices *ZakatPricesRequest `json:"prices"`
}

// AssetsEntity returns the requested assets, or nil when omitted.
func AssetsEntity(r *ZakatAssetsRequest) *entity.ZakatAssets {
	if r == nil {
		return nil
	}
	assets := r.ToEntity()
	return &assets
}

// PricesEntity returns the requested prices, or nil when omitted.
func PricesEntity(r *ZakatPricesRequest) *entity.ZakatPrices {
	if r == nil {
		return nil
	}
	prices := r.ToEntity()
	return &prices
}
