package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	recurly "github.com/recurly/recurly-client-go"
)

// errAccountNotFound is returned by "accounts get" for a missing account.
var errAccountNotFound = errors.New("account not found")

type accountsCmd struct {
	app *app
}

func (c *accountsCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Look up and create accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(c.getCommand())
	cmd.AddCommand(c.createCommand())

	return cmd
}

func (c *accountsCmd) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <account-code>",
		Short: "Fetch an account by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.app.client()
			if err != nil {
				return err
			}

			account, err := client.Accounts.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get account: %w", err)
			}
			if account.IsNotFound() {
				return fmt.Errorf("%w: %s", errAccountNotFound, args[0])
			}
			return c.app.print(cmd.OutOrStdout(), newAccountOutput(account))
		},
	}
}

func (c *accountsCmd) createCommand() *cobra.Command {
	var (
		in           AccountInput
		taxExempt    bool
		generateCode bool
	)

	cmd := &cobra.Command{
		Use:   "create [account-code]",
		Short: "Create an account",
		Long: `Create an account from flags. The account code is taken from the
argument, or generated when --generate-code is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1 && generateCode:
				return errors.New("pass either an account code or --generate-code, not both")
			case len(args) == 1:
				in.AccountCode = args[0]
			case generateCode:
				in.AccountCode = uuid.NewString()
			default:
				return errors.New("an account code or --generate-code is required")
			}
			if cmd.Flags().Changed("tax-exempt") {
				in.TaxExempt = null.BoolFrom(taxExempt)
			}

			client, err := c.app.client()
			if err != nil {
				return err
			}

			created, err := client.Accounts.Create(cmd.Context(), in.Account())
			if err != nil {
				var valErr *recurly.ValidationError
				if errors.As(err, &valErr) && valErr.Errors != nil {
					for _, e := range valErr.Errors.ValidationErrors {
						c.app.logger.WithField("field", e.Field).Error(e.Message)
					}
				}
				return fmt.Errorf("create account: %w", err)
			}
			return c.app.print(cmd.OutOrStdout(), newAccountOutput(created))
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&generateCode, "generate-code", false, "Use a random UUID as the account code.")
	flags.StringVar(&in.Username, "username", "", "Username.")
	flags.StringVar(&in.Email, "email", "", "Email address.")
	flags.StringVar(&in.FirstName, "first-name", "", "First name.")
	flags.StringVar(&in.LastName, "last-name", "", "Last name.")
	flags.StringVar(&in.CompanyName, "company", "", "Company name.")
	flags.StringVar(&in.VATNumber, "vat-number", "", "VAT number.")
	flags.BoolVar(&taxExempt, "tax-exempt", false, "Mark the account tax exempt.")
	flags.StringVar(&in.AcceptLanguage, "accept-language", "", "Preferred language, e.g. en-US.")
	flags.StringVar(&in.CCEmails, "cc-emails", "", "Comma-separated addresses copied on emails.")
	flags.StringVar(&in.Country, "country", "", "Two letter country code of the billing address.")

	return cmd
}

// AccountInput collects the settable fields of a new account.
type AccountInput struct {
	AccountCode    string
	Username       string
	Email          string
	FirstName      string
	LastName       string
	CompanyName    string
	VATNumber      string
	TaxExempt      null.Bool
	AcceptLanguage string
	CCEmails       string
	Country        string
}

// Account converts the input into an account ready to be created.
func (in AccountInput) Account() *recurly.Account {
	a := recurly.NewAccount(in.AccountCode)
	a.Username = in.Username
	a.Email = in.Email
	a.FirstName = in.FirstName
	a.LastName = in.LastName
	a.CompanyName = in.CompanyName
	a.VATNumber = in.VATNumber
	a.TaxExempt = in.TaxExempt
	a.AcceptLanguage = in.AcceptLanguage
	a.CCEmails = in.CCEmails
	if in.Country != "" {
		a.Address = &recurly.Address{Country: in.Country}
	}
	return a
}

// AccountOutput is the printed form of an account.
type AccountOutput struct {
	AccountCode      string         `yaml:"account_code" json:"account_code"`
	State            string         `yaml:"state" json:"state"`
	Username         string         `yaml:"username,omitempty" json:"username,omitempty"`
	Email            string         `yaml:"email,omitempty" json:"email,omitempty"`
	FirstName        string         `yaml:"first_name,omitempty" json:"first_name,omitempty"`
	LastName         string         `yaml:"last_name,omitempty" json:"last_name,omitempty"`
	CompanyName      string         `yaml:"company_name,omitempty" json:"company_name,omitempty"`
	VATNumber        string         `yaml:"vat_number,omitempty" json:"vat_number,omitempty"`
	TaxExempt        *bool          `yaml:"tax_exempt,omitempty" json:"tax_exempt,omitempty"`
	CCEmails         string         `yaml:"cc_emails,omitempty" json:"cc_emails,omitempty"`
	Address          *AddressOutput `yaml:"address,omitempty" json:"address,omitempty"`
	HostedLoginToken string         `yaml:"hosted_login_token,omitempty" json:"hosted_login_token,omitempty"`
	CreatedAt        string         `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt        string         `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
	HasLive          bool           `yaml:"has_live_subscription" json:"has_live_subscription"`
	HasPastDue       bool           `yaml:"has_past_due_invoice" json:"has_past_due_invoice"`
}

// AddressOutput is the printed form of an address.
type AddressOutput struct {
	Address1 string `yaml:"address1,omitempty" json:"address1,omitempty"`
	Address2 string `yaml:"address2,omitempty" json:"address2,omitempty"`
	City     string `yaml:"city,omitempty" json:"city,omitempty"`
	State    string `yaml:"state,omitempty" json:"state,omitempty"`
	Zip      string `yaml:"zip,omitempty" json:"zip,omitempty"`
	Country  string `yaml:"country,omitempty" json:"country,omitempty"`
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
}

func newAccountOutput(a *recurly.Account) AccountOutput {
	out := AccountOutput{
		AccountCode:      a.AccountCode(),
		State:            a.State().String(),
		Username:         a.Username,
		Email:            a.Email,
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		CompanyName:      a.CompanyName,
		VATNumber:        a.VATNumber,
		TaxExempt:        a.TaxExempt.Ptr(),
		CCEmails:         a.CCEmails,
		HostedLoginToken: a.HostedLoginToken(),
		CreatedAt:        formatTime(a.CreatedAt()),
		UpdatedAt:        formatTime(a.UpdatedAt()),
		HasLive:          a.HasLiveSubscription(),
		HasPastDue:       a.HasPastDueInvoice(),
	}
	if a.Address != nil {
		out.Address = &AddressOutput{
			Address1: a.Address.Address1,
			Address2: a.Address.Address2,
			City:     a.Address.City,
			State:    a.Address.State,
			Zip:      a.Address.Zip,
			Country:  a.Address.Country,
			Phone:    a.Address.Phone,
		}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// print renders v in the configured output format.
func (a *app) print(w io.Writer, v any) error {
	switch format := a.v.GetString("output"); format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
