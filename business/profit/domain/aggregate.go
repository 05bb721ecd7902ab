package domain

import "github.com/shopspring/decimal"

// Costs is the aggregated acquisition cost band of a recipe option: what the
// full reagent set would cost at the most and least favorable observed
// prices, and at quantity-weighted averages.
type Costs struct {
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Average decimal.Decimal `json:"average"`
}

// AggregateOption sums the acquisition cost of every reagent of one recipe
// option. Depth-first: a craftable reagent's cost is derived from its own
// options, fully resolved, before this level combines. No memoization -
// identical reagents in different branches are recomputed independently so
// a price difference between branches (impossible with one shared snapshot,
// but the rule predates that guarantee) would surface rather than be masked.
func AggregateOption(opt RecipeOption) Costs {
	var c Costs
	for _, reagent := range opt.Reagents {
		rc := aggregateNode(reagent)
		c.High = c.High.Add(rc.High)
		c.Low = c.Low.Add(rc.Low)
		c.Average = c.Average.Add(rc.Average)
	}
	return c
}

// aggregateNode prices one reagent node. The combination rule depends on how
// the item can be acquired:
//
//   - vendor-priced: the fixed price contributes identically to high, low
//     and average.
//   - market-only: the observed bands, each scaled to the required quantity;
//     zero volume contributes zero rather than an undefined average.
//   - craftable: every option is aggregated independently, then combined as
//     the cheapest option's low, the dearest option's high, and the plain
//     mean of the option averages. The mean ignores how attractive each
//     option actually is; it is kept as-is because changing it changes
//     user-visible prices.
//
// Required quantities are absolute (multiplied through at analysis time), so
// no further scaling happens when combining a craftable reagent's options.
func aggregateNode(n *Node) Costs {
	qty := decimal.NewFromInt(n.Required)

	if n.Vendor != nil {
		v := n.Vendor.Mul(qty)
		return Costs{High: v, Low: v, Average: v}
	}

	if !n.Craftable || len(n.Options) == 0 {
		if n.Market == nil || n.Market.Volume == 0 {
			return Costs{}
		}
		return Costs{
			High:    n.Market.High.Mul(qty),
			Low:     n.Market.Low.Mul(qty),
			Average: n.Market.Average.Mul(qty),
		}
	}

	var combined Costs
	var avgSum decimal.Decimal
	for i, opt := range n.Options {
		oc := AggregateOption(opt)
		if i == 0 {
			combined.High = oc.High
			combined.Low = oc.Low
		} else {
			if oc.High.GreaterThan(combined.High) {
				combined.High = oc.High
			}
			if oc.Low.LessThan(combined.Low) {
				combined.Low = oc.Low
			}
		}
		avgSum = avgSum.Add(oc.Average)
	}
	combined.Average = avgSum.Div(decimal.NewFromInt(int64(len(n.Options))))
	return combined
}
