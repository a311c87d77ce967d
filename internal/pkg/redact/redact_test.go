package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEmail_Table — табличные тесты на редактирование e-mail.
// Проверяем все ветки: валидный адрес, короткая локальная часть,
// невалидный формат, Unicode и граничные случаи с пустыми частями.
func TestEmail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ASCII_local_gt_2", in: "foobar@example.com", want: "fo***@example.com"},
		{name: "ASCII_local_len_1", in: "a@ex.com", want: "***@ex.com"},
		{name: "ASCII_local_len_2", in: "ab@ex.com", want: "***@ex.com"},
		{name: "invalid_no_at", in: "no-at-here", want: "***"},
		{name: "invalid_multiple_at", in: "a@b@c", want: "***"},
		{name: "preserve_domain_case_and_content", in: "abc.def+tag@EXAMPLE.org", want: "ab***@EXAMPLE.org"},
		{name: "empty_string", in: "", want: "***"},
		{name: "empty_domain_allowed_by_impl", in: "user@", want: "us***@"},
		{name: "unicode_local_gt_2_runes", in: "юзер@пример.рф", want: "юз***@пример.рф"},
		{name: "unicode_local_len_2_runes", in: "юз@домен", want: "***@домен"},
		{name: "empty_local_allowed_by_impl", in: "@domain", want: "***@domain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

// TestLiteral_Password — литерал для паролей неизменен.
func TestLiteral_Password(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
