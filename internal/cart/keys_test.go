package cart

import (
	"testing"

	"github.com/BruksfildServices01/spa-booking/internal/identity"
)

// Cadeia de fallback da chave: mobile, senão email, senão uuid.
func TestKeyForFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		id   identity.Identity
		want string
	}{
		{
			name: "mobile wins",
			id: identity.Identity{
				Authenticated: true,
				Mobile:        "5511999990000",
				Email:         "bob@example.com",
				UserUUID:      "u-1",
			},
			want: "cart:user:5511999990000",
		},
		{
			name: "email when no mobile",
			id: identity.Identity{
				Authenticated: true,
				Email:         "bob@example.com",
				UserUUID:      "u-1",
			},
			want: "cart:user:bob@example.com",
		},
		{
			name: "uuid as last resort",
			id: identity.Identity{
				Authenticated: true,
				UserUUID:      "u-1",
			},
			want: "cart:user:u-1",
		},
		{
			name: "guest",
			id:   identity.Guest("g-42"),
			want: "cart:guest:g-42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyFor(tc.id); got != tc.want {
				t.Errorf("KeyFor = %q, want %q", got, tc.want)
			}
		})
	}
}
