package money_test

import (
	"encoding/json"
	"fmt"

	"github.com/purposeinplay/go-money/money"
	"github.com/shopspring/decimal"
)

func ExampleFromAmount() {
	m, err := money.FromAmount("12.5", "TRY")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Amount(), m.Currency(), m.Symbol())
	fmt.Println(m.ToDisplay())

	// Output:
	// 12.5 TRY ₺
	// 12,5 ₺
}

func ExampleMoney_Add() {
	price := money.FromInt(15, money.TRY)

	total, err := price.Add(money.Record{Amount: "13", Currency: money.TRY})
	if err != nil {
		fmt.Println(err)
		return
	}

	b, _ := json.Marshal(total)

	fmt.Println(string(b))

	_, err = price.Add(money.FromInt(10, money.USD))
	fmt.Println(err)

	// Output:
	// {"amount":"28","currency":"TRY"}
	// currency mismatch: cannot add TRY and USD
}

func ExampleMoney_ApplyDiscount() {
	price := money.FromInt(100, money.TRY)

	fmt.Println(price.ApplyDiscount(decimal.NewFromInt(25)))
	fmt.Println(price.ApplyRise(decimal.NewFromInt(25)))

	// Output:
	// 75 ₺
	// 125 ₺
}

func ExampleMoney_PercentageOf() {
	part := money.FromInt(25, money.TRY)

	p, err := part.PercentageOf(money.FromInt(100, money.TRY))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p)

	// Output:
	// 25
}
