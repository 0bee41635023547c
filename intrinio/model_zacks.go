package intrinio

import "github.com/oapi-codegen/runtime/types"

// ZacksAnalystRating is the Zacks consensus of one day.
type ZacksAnalystRating struct {
	Date        types.Date `json:"date"`
	Mean        *float64   `json:"mean,omitempty"`
	StrongBuys  *int32     `json:"strong_buys,omitempty"`
	Buys        *int32     `json:"buys,omitempty"`
	Holds       *int32     `json:"holds,omitempty"`
	Sells       *int32     `json:"sells,omitempty"`
	StrongSells *int32     `json:"strong_sells,omitempty"`
	Total       *int32     `json:"total,omitempty"`
}

// ApiResponseSecurityZacksAnalystRatings is a page of Zacks analyst ratings.
type ApiResponseSecurityZacksAnalystRatings struct {
	AnalystRatings []ZacksAnalystRating `json:"analyst_ratings"`
	Security       *SecuritySummary     `json:"security,omitempty"`
	NextPage       *string              `json:"next_page,omitempty"`
}

// ZacksAnalystRatingSnapshot is the Zacks rating distribution of one day.
type ZacksAnalystRatingSnapshot struct {
	Date                     *types.Date `json:"date,omitempty"`
	MeanRecommendation       *float64    `json:"mean_recommendation,omitempty"`
	MeanRecommendationChange *float64    `json:"mean_recommendation_change,omitempty"`
	StrongBuys               *int32      `json:"strong_buys,omitempty"`
	Buys                     *int32      `json:"buys,omitempty"`
	Holds                    *int32      `json:"holds,omitempty"`
	Sells                    *int32      `json:"sells,omitempty"`
	StrongSells              *int32      `json:"strong_sells,omitempty"`
	Total                    *int32      `json:"total,omitempty"`
	Trend                    *string     `json:"trend,omitempty"`
	Percentile               *float64    `json:"percentile,omitempty"`
	IndustryRank             *int32      `json:"industry_rank,omitempty"`
}

// ApiResponseSecurityZacksAnalystRatingsSnapshot wraps a Zacks ratings snapshot.
type ApiResponseSecurityZacksAnalystRatingsSnapshot struct {
	AnalystRatingsSnapshot *ZacksAnalystRatingSnapshot `json:"analyst_ratings_snapshot,omitempty"`
	Security               *SecuritySummary            `json:"security,omitempty"`
}

// ZacksEPSSurprise compares estimated and actual EPS for one quarter.
type ZacksEPSSurprise struct {
	ID                 *string     `json:"id,omitempty"`
	ActualReportedDate *types.Date `json:"actual_reported_date,omitempty"`
	ActualReportedTime *string     `json:"actual_reported_time,omitempty"`
	ActualReportedCode *string     `json:"actual_reported_code,omitempty"`
	ActualReportedDesc *string     `json:"actual_reported_desc,omitempty"`
	FiscalYear         *int32      `json:"fiscal_year,omitempty"`
	FiscalQuarter      *string     `json:"fiscal_quarter,omitempty"`
	EPSActual          *float64    `json:"eps_actual,omitempty"`
	EPSMeanEstimate    *float64    `json:"eps_mean_estimate,omitempty"`
	EPSAmountDiff      *float64    `json:"eps_amount_diff,omitempty"`
	EPSPercentDiff     *float64    `json:"eps_percent_diff,omitempty"`
	EPSCountEstimate   *int32      `json:"eps_count_estimate,omitempty"`
}

// ApiResponseSecurityZacksEPSSurprises is a page of EPS surprises.
type ApiResponseSecurityZacksEPSSurprises struct {
	EPSSurprises []ZacksEPSSurprise `json:"eps_surprises"`
	Security     *SecuritySummary   `json:"security,omitempty"`
	NextPage     *string            `json:"next_page,omitempty"`
}
