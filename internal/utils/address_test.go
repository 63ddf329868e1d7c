package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	pserrors "pstack.dev/pstack/internal/errors"
)

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  [2]string
	}{
		{
			name:  "name and angle-bracketed email",
			input: "Jane Doe <jane@example.com>",
			want:  [2]string{"Jane Doe", "jane@example.com"},
		},
		{
			name:  "email with parenthesised name",
			input: "jane@example.com (Jane Doe)",
			want:  [2]string{"Jane Doe", "jane@example.com"},
		},
		{
			name:  "trailing whitespace",
			input: "Jane Doe <jane@example.com>  ",
			want:  [2]string{"Jane Doe", "jane@example.com"},
		},
		{
			name:  "quotes are escaped",
			input: `Jane "JD" Doe <jane@example.com>`,
			want:  [2]string{`Jane \"JD\" Doe`, "jane@example.com"},
		},
		{
			name:  "backslashes are escaped",
			input: `Jane\Doe <jane@example.com>`,
			want:  [2]string{`Jane\\Doe`, "jane@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, email, err := ParseAddress(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, [2]string{name, email})
		})
	}
}

func TestParseAddress_Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := ParseAddress("just a name")
	require.ErrorIs(t, err, pserrors.ErrAddressFormat)

	var addrErr *pserrors.AddressFormatError
	require.ErrorAs(t, err, &addrErr)
	require.Equal(t, "just a name", addrErr.Address)
}

func TestParseAddressWithDate(t *testing.T) {
	t.Parallel()

	name, email, date, err := ParseAddressWithDate("Jane Doe <jane@example.com> 1700000000 +0100")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", name)
	require.Equal(t, "jane@example.com", email)
	require.Equal(t, "1700000000 +0100", date)

	name, email, date, err = ParseAddressWithDate("Jane Doe <jane@example.com>")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", name)
	require.Equal(t, "jane@example.com", email)
	require.Empty(t, date)
}

func TestParseAddressWithDate_Malformed(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParseAddressWithDate("jane@example.com (Jane Doe) 1700000000")
	require.ErrorIs(t, err, pserrors.ErrAddressFormat)
}
