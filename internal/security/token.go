package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and parses the HS256 session tokens that stand in
// for the browser session. The subject claim carries the member id.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Session is the identity a parsed token yields.
type Session struct {
	MemberID int64
	Role     string
}

func (t *TokenIssuer) Issue(memberID int64, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":  t.issuer,
		"aud":  t.audience,
		"sub":  strconv.FormatInt(memberID, 10),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
		"role": role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// TTL is the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

var errInvalidToken = errors.New("invalid token")

func (t *TokenIssuer) Parse(raw string) (Session, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !token.Valid {
		return Session{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errInvalidToken
	}
	if claims["iss"] != t.issuer || claims["aud"] != t.audience {
		return Session{}, errInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return Session{}, errInvalidToken
	}
	role, _ := claims["role"].(string)
	return Session{MemberID: id, Role: role}, nil
}
