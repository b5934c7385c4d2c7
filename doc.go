// Package recurly provides a Go client for the Recurly v2 subscription
// billing API.
//
// The client speaks XML over HTTPS, authenticates with the site's private
// API key and maps every HTTP status to a typed error.
//
// Basic usage:
//
//	client, err := recurly.New("your-subdomain", "your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	account, err := client.Accounts.Get(ctx, "customer-42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if account.IsNotFound() {
//	    fmt.Println("no such account")
//	}
//
// Creating an account:
//
//	account := recurly.NewAccount("customer-43")
//	account.Email = "jane@example.com"
//	account.TaxExempt = null.BoolFrom(false)
//
//	created, err := client.Accounts.Create(ctx, account)
//	var valErr *recurly.ValidationError
//	if errors.As(err, &valErr) {
//	    for _, e := range valErr.Errors.ValidationErrors {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// Requests are never retried. Use errors.Is with ErrValidation,
// ErrInvalidCredentials, ErrTemporarilyUnavailable, ErrServerError and
// ErrUnhandledStatus to branch on the outcome.
package recurly
