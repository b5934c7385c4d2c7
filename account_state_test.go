package recurly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountState(t *testing.T) {
	tests := []struct {
		token string
		want  AccountState
	}{
		{"active", AccountStateActive},
		{"closed", AccountStateClosed},
		{"past_due", AccountStatePastDue},
		{"Active", AccountStateActive},
		{" active ", AccountStateActive},
		{"active,past_due", AccountStateActive | AccountStatePastDue},
		{"closed, past_due", AccountStateClosed | AccountStatePastDue},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseAccountState(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAccountState_Unknown(t *testing.T) {
	for _, token := range []string{"", "dormant", "active,bogus"} {
		_, err := ParseAccountState(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestAccountState_String(t *testing.T) {
	assert.Equal(t, "None", AccountState(0).String())
	assert.Equal(t, "Active", AccountStateActive.String())
	assert.Equal(t, "Active, PastDue", (AccountStatePastDue | AccountStateActive).String())
	assert.Equal(t, "Closed, Active, PastDue", (AccountStateClosed | AccountStateActive | AccountStatePastDue).String())
}

func TestAccountState_Has(t *testing.T) {
	s := AccountStateActive | AccountStatePastDue

	assert.True(t, s.Has(AccountStateActive))
	assert.True(t, s.Has(AccountStatePastDue))
	assert.True(t, s.Has(AccountStateActive|AccountStatePastDue))
	assert.False(t, s.Has(AccountStateClosed))
	assert.False(t, s.Has(0))
}
