package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NisabGoldGrams is the gold weight the nisab defaults to when no explicit threshold is set.
const NisabGoldGrams = 85

// ZakatRate is the levy applied to zakatable wealth at or above nisab.
var ZakatRate = decimal.NewFromFloat(0.025)

// ZakatAssets is the live snapshot of a user's zakatable assets and debts.
type ZakatAssets struct {
	Cash           decimal.Decimal `json:"cash"`
	Savings        decimal.Decimal `json:"savings"`
	GoldGrams      decimal.Decimal `json:"gold_grams"`
	SilverGrams    decimal.Decimal `json:"silver_grams"`
	Investments    decimal.Decimal `json:"investments"`
	Business       decimal.Decimal `json:"business"`
	DebtsOwedToYou decimal.Decimal `json:"debts_owed_to_you"`
	DebtsYouOwe    decimal.Decimal `json:"debts_you_owe"`
}

// HasNegative reports whether any field holds a negative amount.
func (a ZakatAssets) HasNegative() bool {
	for _, v := range a.values() {
		if v.IsNegative() {
			return true
		}
	}
	return false
}

func (a ZakatAssets) values() []decimal.Decimal {
	return []decimal.Decimal{
		a.Cash, a.Savings, a.GoldGrams, a.SilverGrams,
		a.Investments, a.Business, a.DebtsOwedToYou, a.DebtsYouOwe,
	}
}

// ZakatPrices holds the market prices and threshold used for a calculation.
type ZakatPrices struct {
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram"`
	Nisab              decimal.Decimal `json:"nisab"`
}

// HasNegative reports whether any price is negative.
func (p ZakatPrices) HasNegative() bool {
	return p.GoldPricePerGram.IsNegative() || p.SilverPricePerGram.IsNegative() || p.Nisab.IsNegative()
}

// EffectiveNisab returns the explicit nisab when set, else the gold-weight threshold.
func (p ZakatPrices) EffectiveNisab() decimal.Decimal {
	if p.Nisab.IsPositive() {
		return p.Nisab
	}
	return p.GoldPricePerGram.Mul(decimal.NewFromInt(NisabGoldGrams))
}

// ZakatCalculation is the outcome of applying the zakat formula.
type ZakatCalculation struct {
	TotalAssets decimal.Decimal `json:"total_assets"`
	Nisab       decimal.Decimal `json:"nisab"`
	MeetsNisab  bool            `json:"meets_nisab"`
	ZakatAmount decimal.Decimal `json:"zakat_amount"`
}

// CalculateZakat applies the zakat formula:
// total = cash + savings + gold*goldPrice + silver*silverPrice + investments + business + owedToYou - youOwe,
// zakat = 2.5% of total (rounded to cents) when total >= nisab, else zero.
func CalculateZakat(assets ZakatAssets, prices ZakatPrices) ZakatCalculation {
	total := assets.Cash.
		Add(assets.Savings).
		Add(assets.GoldGrams.Mul(prices.GoldPricePerGram)).
		Add(assets.SilverGrams.Mul(prices.SilverPricePerGram)).
		Add(assets.Investments).
		Add(assets.Business).
		Add(assets.DebtsOwedToYou).
		Sub(assets.DebtsYouOwe)

	nisab := prices.EffectiveNisab()
	calc := ZakatCalculation{
		TotalAssets: total,
		Nisab:       nisab,
		ZakatAmount: decimal.Zero,
	}
	if total.IsPositive() && total.GreaterThanOrEqual(nisab) {
		calc.MeetsNisab = true
		calc.ZakatAmount = total.Mul(ZakatRate).Round(2)
	}
	return calc
}

// ZakatEntry is an append-only history record. Only Paid may change, and only from false to true.
type ZakatEntry struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	ZakatAmount decimal.Decimal `json:"zakat_amount"`
	NisabUsed   decimal.Decimal `json:"nisab_used"`
	MeetsNisab  bool            `json:"meets_nisab"`
	Assets      ZakatAssets     `json:"assets"`
	Paid        bool            `json:"paid"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewZakatEntry records a calculation as a new history entry.
func NewZakatEntry(date string, assets ZakatAssets, calc ZakatCalculation, now time.Time) *ZakatEntry {
	return &ZakatEntry{
		ID:          uuid.New(),
		Date:        date,
		TotalAssets: calc.TotalAssets,
		ZakatAmount: calc.ZakatAmount,
		NisabUsed:   calc.Nisab,
		MeetsNisab:  calc.MeetsNisab,
		Assets:      assets,
		CreatedAt:   now.UTC(),
	}
}

// MarkPaid flips the paid flag. It returns false when the entry was already paid.
func (e *ZakatEntry) MarkPaid(now time.Time) bool {
	if e.Paid {
		return false
	}
	paidAt := now.UTC()
	e.Paid = true
	e.PaidAt = &paidAt
	return true
}
