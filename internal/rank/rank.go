// Package rank scores and orders competing proposals for one order.
// Rank is a pure function of its input: identical proposal sets produce
// identical output, an invariant the buyer view refresh relies on.
package rank

import (
	"math"
	"sort"

	"github.com/printhub/printhub/internal/model"
)

type Badge string

const (
	BadgeRecommended    Badge = "recommended"
	BadgeClosest        Badge = "closest"
	BadgeBestValue      Badge = "best_value"
	BadgeFastest        Badge = "fastest"
	BadgeTopRated       Badge = "top_rated"
	BadgeCouponEligible Badge = "coupon_eligible"
)

type MarketStatus string

const (
	BelowMarket MarketStatus = "below_market"
	AtMarket    MarketStatus = "at_market"
	AboveMarket MarketStatus = "above_market"

	// UnknownMarket marks proposals that carry no price in the
	// baseline's unit and therefore cannot be compared.
	UnknownMarket MarketStatus = "unknown"
)

// Composite score weights. Price dominates, response time matters least.
const (
	weightPrice        = 0.4
	weightDistance     = 0.3
	weightRating       = 0.2
	weightResponseTime = 0.1
)

// marketTolerance is the ±5% band around the regional baseline that still
// counts as at-market.
const marketTolerance = 0.05

type RankedProposal struct {
	model.Proposal

	Position     int
	Score        float64
	MarketStatus MarketStatus
	Badges       []Badge
}

// Rank normalizes each criterion over the proposal set, computes the
// weighted composite score, sorts best-first with ties resolved by input
// order, then derives market status and badges. Malformed proposals are
// skipped and reported, never fatal.
func Rank(proposals []model.Proposal) ([]RankedProposal, []error) {
	var skipped []error

	valid := make([]model.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if reason := validate(p); reason != "" {
			skipped = append(skipped, &model.DegradedMatchError{
				PrinterID: p.PrinterID,
				Reason:    reason,
			})
			continue
		}
		valid = append(valid, p)
	}

	if len(valid) == 0 {
		return []RankedProposal{}, skipped
	}

	price := bounds(valid, func(p model.Proposal) float64 { return p.PriceTotal })
	distance := bounds(valid, func(p model.Proposal) float64 { return p.DistanceKm })
	rating := bounds(valid, func(p model.Proposal) float64 { return p.RatingAverage })
	response := bounds(valid, func(p model.Proposal) float64 { return p.ResponseTimeMinutes })

	ranked := make([]RankedProposal, len(valid))
	for i, p := range valid {
		score := weightPrice*price.normLowerBetter(p.PriceTotal) +
			weightDistance*distance.normLowerBetter(p.DistanceKm) +
			weightRating*rating.normHigherBetter(p.RatingAverage) +
			weightResponseTime*response.normLowerBetter(p.ResponseTimeMinutes)
		ranked[i] = RankedProposal{Proposal: p, Score: score}
	}

	// Stable sort keeps first-submitted proposals ahead on equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Position = i
	}

	ref := marketBaseline(valid)
	for i := range ranked {
		ranked[i].MarketStatus = classifyMarket(ranked[i].Proposal, ref)
	}

	applyBadges(ranked)

	return ranked, skipped
}

func validate(p model.Proposal) string {
	switch {
	case !finite(p.PriceTotal) || p.PriceTotal < 0:
		return "missing or invalid total price"
	case !finite(p.DistanceKm) || p.DistanceKm < 0:
		return "missing or invalid distance"
	case !finite(p.RatingAverage) || p.RatingAverage < 0:
		return "missing or invalid rating"
	case !finite(p.ResponseTimeMinutes) || p.ResponseTimeMinutes < 0:
		return "missing or invalid response time"
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type criterion struct {
	min, max float64
}

func bounds(proposals []model.Proposal, value func(model.Proposal) float64) criterion {
	c := criterion{min: value(proposals[0]), max: value(proposals[0])}
	for _, p := range proposals[1:] {
		v := value(p)
		c.min = math.Min(c.min, v)
		c.max = math.Max(c.max, v)
	}
	return c
}

// normHigherBetter maps v into [0,1]. A criterion every proposal ties on
// contributes 0 for all of them so it cannot bias the ranking.
func (c criterion) normHigherBetter(v float64) float64 {
	if c.max == c.min {
		return 0
	}
	return (v - c.min) / (c.max - c.min)
}

func (c criterion) normLowerBetter(v float64) float64 {
	if c.max == c.min {
		return 0
	}
	return 1 - (v-c.min)/(c.max-c.min)
}

// baseline is the market reference price together with the unit it is
// expressed in, so proposals are only ever compared like for like.
type baseline struct {
	value   float64
	perUnit bool
}

// marketBaseline picks the reference price: printer-supplied regional
// per-unit averages first, then the cross-proposal mean of per-unit prices,
// then the mean of totals as a last resort.
func marketBaseline(proposals []model.Proposal) baseline {
	var regionalSum, perUnitSum, totalSum float64
	var regionalN, perUnitN int
	for _, p := range proposals {
		if p.RegionalAvgPricePerUnitArea != nil {
			regionalSum += *p.RegionalAvgPricePerUnitArea
			regionalN++
		}
		if p.PricePerUnitArea != nil {
			perUnitSum += *p.PricePerUnitArea
			perUnitN++
		}
		totalSum += p.PriceTotal
	}
	switch {
	case regionalN > 0:
		return baseline{value: regionalSum / float64(regionalN), perUnit: true}
	case perUnitN > 0:
		return baseline{value: perUnitSum / float64(perUnitN), perUnit: true}
	default:
		return baseline{value: totalSum / float64(len(proposals))}
	}
}

func classifyMarket(p model.Proposal, b baseline) MarketStatus {
	if b.value == 0 {
		return AtMarket
	}
	v := p.PriceTotal
	if b.perUnit {
		if p.PricePerUnitArea == nil {
			return UnknownMarket
		}
		v = *p.PricePerUnitArea
	}
	deviation := (v - b.value) / b.value
	switch {
	case deviation <= -marketTolerance:
		return BelowMarket
	case deviation <= marketTolerance:
		return AtMarket
	default:
		return AboveMarket
	}
}

// applyBadges decorates the ranked list using un-normalized extremes over
// the full set. Recommended goes to the single top entry; the remaining
// badges go to every proposal tied on the relevant extreme.
func applyBadges(ranked []RankedProposal) {
	if len(ranked) == 0 {
		return
	}

	minDistance := ranked[0].DistanceKm
	minResponse := ranked[0].ResponseTimeMinutes
	maxRating := ranked[0].RatingAverage
	bestValue := math.Inf(1)
	for _, rp := range ranked {
		minDistance = math.Min(minDistance, rp.DistanceKm)
		minResponse = math.Min(minResponse, rp.ResponseTimeMinutes)
		maxRating = math.Max(maxRating, rp.RatingAverage)
		// Zero-rated proposals never compete for best value: the
		// price/rating ratio is undefined for them.
		if rp.RatingAverage > 0 {
			bestValue = math.Min(bestValue, rp.PriceTotal/rp.RatingAverage)
		}
	}

	for i := range ranked {
		rp := &ranked[i]
		if i == 0 {
			rp.Badges = append(rp.Badges, BadgeRecommended)
		}
		if rp.DistanceKm == minDistance {
			rp.Badges = append(rp.Badges, BadgeClosest)
		}
		if rp.RatingAverage > 0 && rp.PriceTotal/rp.RatingAverage == bestValue {
			rp.Badges = append(rp.Badges, BadgeBestValue)
		}
		if rp.ResponseTimeMinutes == minResponse {
			rp.Badges = append(rp.Badges, BadgeFastest)
		}
		if rp.RatingAverage == maxRating {
			rp.Badges = append(rp.Badges, BadgeTopRated)
		}
		if rp.AcceptsDiscountCoupon {
			rp.Badges = append(rp.Badges, BadgeCouponEligible)
		}
	}
}
