package recurly

import (
	"strings"

	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

// AccountState is a set of account state flags. The API documents that an
// account may be in several states at once, so the flags are not assumed to
// be exclusive.
type AccountState uint8

const (
	AccountStateClosed AccountState = 1 << iota
	AccountStateActive
	AccountStatePastDue
)

var accountStateNames = map[string]AccountState{
	"Closed":  AccountStateClosed,
	"Active":  AccountStateActive,
	"PastDue": AccountStatePastDue,
}

// accountStateOrder fixes the order flags are listed in by String.
var accountStateOrder = []struct {
	flag AccountState
	name string
}{
	{AccountStateClosed, "Closed"},
	{AccountStateActive, "Active"},
	{AccountStatePastDue, "PastDue"},
}

// Has reports whether every flag in flag is set in s.
func (s AccountState) Has(flag AccountState) bool {
	return flag != 0 && s&flag == flag
}

func (s AccountState) String() string {
	if s == 0 {
		return "None"
	}
	names := make([]string, 0, len(accountStateOrder))
	for _, f := range accountStateOrder {
		if s.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ", ")
}

// ParseAccountState parses a wire state such as "active" or "past_due".
// Several states may be given separated by commas.
func ParseAccountState(token string) (AccountState, error) {
	var state AccountState
	for _, part := range strings.Split(token, ",") {
		flag, err := xmlutil.ParseEnum(part, accountStateNames)
		if err != nil {
			return 0, err
		}
		state |= flag
	}
	return state, nil
}
