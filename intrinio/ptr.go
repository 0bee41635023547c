package intrinio

// Ptr returns a pointer to v. It keeps optional parameters short:
// &SecurityStockPricesParams{PageSize: intrinio.Ptr(int32(100))}.
func Ptr[T any](v T) *T { return &v }
