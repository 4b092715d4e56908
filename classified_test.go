package crashreport

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		want string
	}{
		{name: "app fail", kind: KindAppFail, want: "AppFail"},
		{name: "other fail", kind: KindOtherFail, want: "OtherFail"},
		{name: "custom kind", kind: ErrorKind("DiskFail"), want: "DiskFail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("xxx")
	err := Wrap(KindAppFail, "oh my god app fail", cause)

	require.NotNil(t, err)
	require.Equal(t, KindAppFail, err.Kind())
	require.Equal(t, "oh my god app fail", err.Message())
	require.Equal(t, "AppFail", err.TypeName())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrap_ErrorIsMessageOnly(t *testing.T) {
	err := Wrap(KindOtherFail, "lookup failed", stderrors.New("connection refused"))

	require.Equal(t, "lookup failed", err.Error())
	require.NotContains(t, err.Error(), "connection refused")
}

func TestWrap_NilCause(t *testing.T) {
	err := Wrap(KindAppFail, "no cause", nil)

	require.NotNil(t, err)
	require.Nil(t, err.Unwrap())
	require.Len(t, Flatten(err), 1)
}

func TestWrap_StandardLibraryCompatibility(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(KindAppFail, "wrapped", fmt.Errorf("context: %w", sentinel))

	require.True(t, stderrors.Is(err, sentinel))

	var classified ClassifiedError
	require.True(t, stderrors.As(err, &classified))
	require.Equal(t, KindAppFail, classified.Kind())
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   ErrorKind
		wantOK bool
	}{
		{
			name:   "classified error",
			err:    Wrap(KindOtherFail, "msg", stderrors.New("x")),
			want:   KindOtherFail,
			wantOK: true,
		},
		{
			name:   "classified error deeper in chain",
			err:    fmt.Errorf("outer: %w", Wrap(KindAppFail, "msg", nil)),
			want:   KindAppFail,
			wantOK: true,
		},
		{
			name:   "outermost classification wins",
			err:    Wrap(KindOtherFail, "outer", Wrap(KindAppFail, "inner", nil)),
			want:   KindOtherFail,
			wantOK: true,
		},
		{
			name:   "plain error",
			err:    stderrors.New("plain"),
			wantOK: false,
		},
		{
			name:   "nil error",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetKind(tt.err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
