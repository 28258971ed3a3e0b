package fx

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// defaultEndpoint serves daily reference rates keyed by base currency,
// no API key required. The response looks like:
//
//	{
//	    "result": "success",
//	    "base_code": "TWD",
//	    "rates": {
//	        "TWD": 1,
//	        "USD": 0.0313,
//	        "JPY": 4.65
//	    }
//	}
const defaultEndpoint = "https://open.er-api.com/v6/latest/"

// FetchRates returns the conversion rate of each quoted currency into
// the base currency (units of base per unit of quoted currency). A nil
// client defaults to the daily-cached one.
func FetchRates(client *http.Client, base string) (map[string]decimal.Decimal, error) {
	if client == nil {
		client = NewDailyClient()
	}
	var jobj any
	if err := jwget(client, defaultEndpoint+base, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch rates for %s: %w", base, err)
	}
	return parseRates(jobj, base)
}

// parseRates extracts and inverts the quote table: the feed quotes
// base→currency, the rate table wants currency→base.
func parseRates(jobj any, base string) (map[string]decimal.Decimal, error) {
	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, fmt.Errorf("no rates in response: %w", err)
	}
	quotes, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected rates payload %T", jval)
	}

	rates := make(map[string]decimal.Decimal, len(quotes))
	for currency, jrate := range quotes {
		rate, ok := jrate.(float64)
		if !ok || rate == 0 || currency == base {
			continue
		}
		rates[currency] = decimal.NewFromFloat(1).Div(decimal.NewFromFloat(rate))
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("empty rate table for %s", base)
	}
	return rates, nil
}
