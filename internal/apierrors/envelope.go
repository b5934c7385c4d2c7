package apierrors

import (
	"fmt"
	"strings"

	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

// Error is a single error reported by the API.
//
// Its shape depends on the document it was read from. Inside an <errors>
// list the field, code and symbol come from attributes and the element text
// is the message:
//
//	<error field="account.email" symbol="invalid_email">is invalid</error>
//
// A standalone <error> document carries child elements instead:
//
//	<error><symbol>unauthorized</symbol><description>...</description></error>
type Error struct {
	// Message is the human readable error text.
	Message string
	// Field is the field causing the error, if any.
	Field string
	// Code is set for certain transaction failures.
	Code string
	// Symbol is the machine readable error symbol.
	Symbol string
	// Details carries extra information on standalone errors.
	Details string
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Message != "":
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	case e.Message != "":
		return e.Message
	default:
		return e.Symbol
	}
}

func (e *Error) String() string {
	return fmt.Sprintf("%s | Field: %q Code: %q Symbol: %q Details: %q",
		e.Message, e.Field, e.Code, e.Symbol, e.Details)
}

// ReadError parses the <error> element under the cursor. fromList selects
// the list shape (attributes plus text) over the standalone shape (child
// elements). The cursor is left on </error>.
func ReadError(r *xmlutil.Reader, fromList bool) (*Error, error) {
	if err := r.Enter("error"); err != nil {
		return nil, err
	}

	e := &Error{}
	if fromList {
		e.Field, _ = r.Attr("field")
		e.Code, _ = r.Attr("code")
		e.Symbol, _ = r.Attr("symbol")

		msg, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		e.Message = msg
		return e, nil
	}

	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}
		if !ok || r.IsEnd("error") {
			return e, nil
		}
		if !r.IsElement() {
			continue
		}

		var dst *string
		switch r.Name() {
		case "symbol":
			dst = &e.Symbol
		case "description":
			dst = &e.Message
		case "details":
			dst = &e.Details
		default:
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		if *dst, err = r.ReadString(); err != nil {
			return nil, err
		}
	}
}

// TransactionError describes a failed financial transaction. It only ever
// comes out of an error response.
type TransactionError struct {
	// ErrorCode is the transaction error code.
	ErrorCode string
	// ErrorCategory is the category of error.
	ErrorCategory string
	// CustomerMessage is a localized message that can be shown to the customer.
	CustomerMessage string
	// MerchantAdvice is English advice for the merchant on resolving the error.
	MerchantAdvice string
	// GatewayErrorCode is the error code given by the payment gateway.
	GatewayErrorCode string
}

func (e *TransactionError) String() string {
	return fmt.Sprintf("Code: %q Category: %q CustomerMessage: %q MerchantAdvice: %q GatewayCode: %q",
		e.ErrorCode, e.ErrorCategory, e.CustomerMessage, e.MerchantAdvice, e.GatewayErrorCode)
}

// ReadTransactionError parses the <transaction_error> element under the cursor.
func ReadTransactionError(r *xmlutil.Reader) (*TransactionError, error) {
	if err := r.Enter("transaction_error"); err != nil {
		return nil, err
	}

	te := &TransactionError{}
	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}
		if !ok || r.IsEnd("transaction_error") {
			return te, nil
		}
		if !r.IsElement() {
			continue
		}

		var dst *string
		switch r.Name() {
		case "error_code":
			dst = &te.ErrorCode
		case "error_category":
			dst = &te.ErrorCategory
		case "customer_message":
			dst = &te.CustomerMessage
		case "merchant_advice":
			dst = &te.MerchantAdvice
		case "gateway_error_code":
			dst = &te.GatewayErrorCode
		default:
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		if *dst, err = r.ReadString(); err != nil {
			return nil, err
		}
	}
}

// Errors is the parsed body of a failed response.
type Errors struct {
	// ValidationErrors lists the individual errors, in document order.
	ValidationErrors []Error
	// TransactionError is set when a transaction was declined.
	TransactionError *TransactionError
}

// Messages returns a one-line description per error.
func (e *Errors) Messages() []string {
	if e == nil {
		return nil
	}
	msgs := make([]string, 0, len(e.ValidationErrors)+1)
	for i := range e.ValidationErrors {
		if s := e.ValidationErrors[i].Error(); s != "" {
			msgs = append(msgs, s)
		}
	}
	if e.TransactionError != nil && e.TransactionError.CustomerMessage != "" {
		msgs = append(msgs, e.TransactionError.CustomerMessage)
	}
	return msgs
}

// ReadErrors parses an error document rooted at either <errors> (list
// shape) or <error> (standalone shape). Elements it does not know, such as
// the <transaction> echoed back on declines, are skipped. An empty document
// yields an empty envelope.
//
// On a malformed document the errors read so far are returned together with
// the parse error.
func ReadErrors(r *xmlutil.Reader) (*Errors, error) {
	errs := &Errors{}
	root := ""
	fromList := false

	for {
		ok, err := r.Read()
		if err != nil {
			return errs, err
		}
		if !ok || (root != "" && r.IsEnd(root)) {
			return errs, nil
		}
		if !r.IsElement() {
			continue
		}

		name := r.Name()
		switch {
		case name == "errors" && root == "":
			root = name
			fromList = true
		case name == "error":
			if root == "" {
				root = name
			}
			e, err := ReadError(r, fromList)
			if err != nil {
				return errs, err
			}
			errs.ValidationErrors = append(errs.ValidationErrors, *e)
			if root == "error" {
				return errs, nil
			}
		case name == "transaction_error":
			te, err := ReadTransactionError(r)
			if err != nil {
				return errs, err
			}
			errs.TransactionError = te
		case root == "":
			root = name
		default:
			if err := r.Skip(); err != nil {
				return errs, err
			}
		}
	}
}

func describe(msg string, errs *Errors) string {
	details := errs.Messages()
	if len(details) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(details, "; ")
}
