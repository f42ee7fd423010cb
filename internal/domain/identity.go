package domain

import (
	"encoding/json"
	"fmt"
)

// Identity is either Guest or Authenticated. The set is closed: consume it
// with a type switch over both cases.
type Identity interface {
	isIdentity()
	Kind() IdentityKind
}

type IdentityKind string

const (
	KindGuest         IdentityKind = "guest"
	KindAuthenticated IdentityKind = "authenticated"
)

// Guest has no token and shops with a local cart only.
type Guest struct{}

// Authenticated carries the bearer token for cart/order calls and the account
// email used for every order it places.
type Authenticated struct {
	Token string
	Email string
}

func (Guest) isIdentity()         {}
func (Authenticated) isIdentity() {}

func (Guest) Kind() IdentityKind         { return KindGuest }
func (Authenticated) Kind() IdentityKind { return KindAuthenticated }

// identityJSON is the on-disk shape of an Identity.
type identityJSON struct {
	Kind  IdentityKind `json:"kind"`
	Token string       `json:"token,omitempty"`
	Email string       `json:"email,omitempty"`
}

// MarshalIdentity encodes id with an explicit kind discriminator.
func MarshalIdentity(id Identity) ([]byte, error) {
	switch v := id.(type) {
	case Guest, nil:
		return json.Marshal(identityJSON{Kind: KindGuest})
	case Authenticated:
		return json.Marshal(identityJSON{Kind: KindAuthenticated, Token: v.Token, Email: v.Email})
	default:
		return nil, fmt.Errorf("unknown identity %T", id)
	}
}

// UnmarshalIdentity decodes the output of MarshalIdentity. An empty kind is
// treated as Guest.
func UnmarshalIdentity(data []byte) (Identity, error) {
	var raw identityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Kind {
	case KindGuest, "":
		return Guest{}, nil
	case KindAuthenticated:
		if raw.Token == "" {
			return nil, fmt.Errorf("authenticated identity without token")
		}
		return Authenticated{Token: raw.Token, Email: raw.Email}, nil
	default:
		return nil, fmt.Errorf("unknown identity kind %q", raw.Kind)
	}
}
