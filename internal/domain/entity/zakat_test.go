package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateZakat(t *testing.T) {
	prices := ZakatPrices{GoldPricePerGram: dec("60"), SilverPricePerGram: dec("0.8")}

	t.Run("below nisab yields nothing", func(t *testing.T) {
		calc := CalculateZakat(ZakatAssets{Cash: dec("4000")}, prices)

		if !calc.Nisab.Equal(dec("5100")) {
			t.Errorf("expected nisab 5100, got %s", calc.Nisab)
		}
		if calc.MeetsNisab {
			t.Error("expected meets_nisab false")
		}
		if !calc.ZakatAmount.IsZero() {
			t.Errorf("expected zero zakat, got %s", calc.ZakatAmount)
		}
	})

	t.Run("exactly at nisab is due", func(t *testing.T) {
		calc := CalculateZakat(ZakatAssets{Cash: dec("5100")}, prices)

		if !calc.MeetsNisab {
			t.Fatal("expected meets_nisab true at threshold")
		}
		if !calc.ZakatAmount.Equal(dec("127.5")) {
			t.Errorf("expected 127.5, got %s", calc.ZakatAmount)
		}
	})

	t.Run("full formula with debts", func(t *testing.T) {
		assets := ZakatAssets{
			Cash:           dec("1000"),
			Savings:        dec("2000"),
			GoldGrams:      dec("50"),
			SilverGrams:    dec("100"),
			Investments:    dec("3000"),
			Business:       dec("500"),
			DebtsOwedToYou: dec("250"),
			DebtsYouOwe:    dec("1000"),
		}
		calc := CalculateZakat(assets, prices)

		// 1000+2000+3000+80+3000+500+250-1000
		if !calc.TotalAssets.Equal(dec("8830")) {
			t.Errorf("expected total 8830, got %s", calc.TotalAssets)
		}
		if !calc.ZakatAmount.Equal(dec("220.75")) {
			t.Errorf("expected 220.75, got %s", calc.ZakatAmount)
		}
	})

	t.Run("explicit nisab overrides gold price", func(t *testing.T) {
		p := prices
		p.Nisab = dec("10000")
		calc := CalculateZakat(ZakatAssets{Cash: dec("9000")}, p)

		if calc.MeetsNisab {
			t.Error("expected explicit nisab to apply")
		}
	})

	t.Run("rounds to cents", func(t *testing.T) {
		calc := CalculateZakat(ZakatAssets{Cash: dec("6000.33")}, prices)

		if !calc.ZakatAmount.Equal(dec("150.01")) {
			t.Errorf("expected 150.01, got %s", calc.ZakatAmount)
		}
	})
}

func TestZakatAssets_HasNegative(t *testing.T) {
	if (ZakatAssets{Cash: dec("10")}).HasNegative() {
		t.Error("expected positive assets to pass")
	}
	if !(ZakatAssets{DebtsYouOwe: dec("-1")}).HasNegative() {
		t.Error("expected negative debt to be flagged")
	}
}

func TestZakatEntry_MarkPaid(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	entry := NewZakatEntry("2024-04-01", ZakatAssets{}, ZakatCalculation{}, now)

	if !entry.MarkPaid(now) {
		t.Fatal("expected first MarkPaid to change the entry")
	}
	if !entry.Paid || entry.PaidAt == nil {
		t.Fatal("expected entry to be paid with a timestamp")
	}
	if entry.MarkPaid(now.Add(time.Hour)) {
		t.Error("expected second MarkPaid to be a no-op")
	}
	if !entry.PaidAt.Equal(now) {
		t.Errorf("expected paid_at to stay %v, got %v", now, entry.PaidAt)
	}
}
