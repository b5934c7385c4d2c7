package recurly

import (
	"context"
	"errors"
	"fmt"

	"github.com/recurly/recurly-client-go/internal/api"
	"github.com/recurly/recurly-client-go/internal/apierrors"
)

// ErrMissingAccountCode is returned when an empty account code is looked up.
var ErrMissingAccountCode = errors.New("account code is required")

// Accounts is the facade over the accounts collection.
type Accounts struct {
	requests *api.Client
}

// Get fetches the account with the given code. A missing account is not an
// error: Get returns AccountNotFound instead.
func (s *Accounts) Get(ctx context.Context, accountCode string) (*Account, error) {
	if accountCode == "" {
		return nil, ErrMissingAccountCode
	}

	uri, err := s.requests.MakeRequestURI(accountsPath, api.EscapeDataString(accountCode))
	if err != nil {
		return nil, err
	}

	result, err := s.requests.Get(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	switch result.Outcome() {
	case apierrors.OutcomeNotFound:
		return AccountNotFound, nil
	case apierrors.OutcomeSuccess:
		return parseAccount(result, accountPath(accountCode))
	}
	return nil, resultError(result)
}

// Create validates account, sends it to the API and returns the account as
// stored by the server.
func (s *Accounts) Create(ctx context.Context, account *Account) (*Account, error) {
	if account == nil {
		return nil, fmt.Errorf("account cannot be nil")
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	body, err := account.marshal()
	if err != nil {
		return nil, fmt.Errorf("encode account: %w", err)
	}

	uri, err := s.requests.MakeRequestURI(accountsPath)
	if err != nil {
		return nil, err
	}

	result, err := s.requests.Post(ctx, uri, body)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	if result.Outcome() == apierrors.OutcomeSuccess {
		return parseAccount(result, account.path)
	}
	return nil, resultError(result)
}

func parseAccount(result *api.Result, fallback ResourcePath) (*Account, error) {
	account, err := readAccount(result.Reader, fallback)
	if err != nil {
		return nil, &ParseError{Entity: "account", Err: err}
	}
	return account, nil
}

// resultError returns the classified error of a result the caller did not
// expect, falling back to a generic one when classification produced none.
func resultError(result *api.Result) error {
	if result.Err != nil {
		return result.Err
	}
	return &UnhandledStatusError{StatusCode: result.StatusCode}
}
