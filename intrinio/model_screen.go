package intrinio

// Logical operators for SecurityScreenGroup.
const (
	ScreenAnd = "AND"
	ScreenOr  = "OR"
)

// SecurityScreenGroup is the filter tree posted to /securities/screen.
type SecurityScreenGroup struct {
	Operator string                 `json:"operator"`
	Clauses  []SecurityScreenClause `json:"clauses,omitempty"`
	Groups   []SecurityScreenGroup  `json:"groups,omitempty"`
}

// SecurityScreenClause compares one data tag against a value. Operator is one
// of eq, gt, gte, lt, lte, contains.
type SecurityScreenClause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// SecurityScreenResult is one security that passed a screen.
type SecurityScreenResult struct {
	Security *SecuritySummary    `json:"security,omitempty"`
	Data     []SecurityScreenTag `json:"data,omitempty"`
}

// SecurityScreenTag is a requested data tag value on a screen result.
type SecurityScreenTag struct {
	Tag         string   `json:"tag"`
	NumberValue *float64 `json:"number_value,omitempty"`
	TextValue   *string  `json:"text_value,omitempty"`
}
