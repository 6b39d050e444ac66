package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Preference
		wantErr bool
	}{
		{in: "dark", want: Dark},
		{in: "light", want: Light},
		{in: "  Light\n", want: Light},
		{in: "DARK", want: Dark},
		{in: "", wantErr: true},
		{in: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPreference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidAndToggle(t *testing.T) {
	for _, p := range All() {
		assert.True(t, p.Valid())
		assert.NotEqual(t, p, p.Toggle())
		assert.Equal(t, p, p.Toggle().Toggle())
	}
	assert.False(t, Preference("blue").Valid())
	assert.True(t, Fallback.Valid())
}

func TestNewState_IsClean(t *testing.T) {
	s := NewState(Light)
	assert.Equal(t, State{Committed: Light, Draft: Light, IsDirty: false}, s)
}
