package models

import (
	"database/sql"
	"testing"
)

func TestUser_Linked(t *testing.T) {
	enc := sql.NullString{String: "blob", Valid: true}

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "both present", user: User{RedditUsernameEnc: enc, RedditPasswordEnc: enc}, want: true},
		{name: "neither present", user: User{}, want: false},
		{name: "username only", user: User{RedditUsernameEnc: enc}, want: false},
		{name: "password only", user: User{RedditPasswordEnc: enc}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Linked(); got != tt.want {
				t.Fatalf("Linked() = %v, want %v", got, tt.want)
			}
		})
	}
}
