// Package intrinio is a client for the Intrinio financial-data REST API.
//
// Every endpoint is exposed as a method on an Api type (see SecurityAPI). Each
// method comes in two synchronous shapes:
//
//	sec, err := api.GetSecurityByID(ctx, "AAPL")                 // typed result
//	resp, err := api.GetSecurityByIDWithHTTPInfo(ctx, "AAPL")    // result + status, headers, raw body
//
// and either shape can be run asynchronously with Async:
//
//	f := intrinio.Async(ctx, func(ctx context.Context) (*intrinio.Security, error) {
//		return api.GetSecurityByID(ctx, "AAPL")
//	})
//	sec, err := f.Await(ctx)
//
// Required arguments and hh:mm time parameters are checked before any network
// I/O; failures are reported as *InvalidArgumentError. Non-success responses
// are turned into errors by the Configuration's ExceptionFactory.
//
// The client adds no caching, retries or timeouts of its own. Those belong to
// the injected *http.Client and to the caller.
package intrinio
